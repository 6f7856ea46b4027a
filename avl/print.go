// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// indentation added for each level of the tree
const indent = 2

// String - sideways rendering of the tree with node heights, the
// right sub-tree above and the left sub-tree below each node
func (tree *Tree[T]) String() string {
	return tree.Format(true)
}

// Format - sideways rendering of the tree, one node per line,
// optionally annotated with the height of each node
func (tree *Tree[T]) Format(withHeight bool) string {
	b := strings.Builder{}
	formatTree(&b, tree.root, 0, withHeight)
	return b.String()
}

// Print - display the rendering on stdout and return the tree height
func (tree *Tree[T]) Print(withHeight bool) int {
	fmt.Print(tree.Format(withHeight))
	return tree.Height()
}

func formatTree[T any](b *strings.Builder, p *Node[T], depth int, withHeight bool) {
	if nil == p {
		return
	}
	formatTree(b, p.right, depth+indent, withHeight)

	b.WriteString(strings.Repeat(" ", depth))
	b.WriteString(formatElement(p.element))
	if withHeight {
		fmt.Fprintf(b, "(h=%d)", p.height)
	}
	b.WriteByte('\n')

	formatTree(b, p.left, depth+indent, withHeight)
}

// the text form of an element: strings, including named string types
// without a String method, are quoted
func formatElement(element interface{}) string {
	switch e := element.(type) {
	case string:
		return strconv.Quote(e)
	case fmt.Stringer:
		return e.String()
	}
	if v := reflect.ValueOf(element); reflect.String == v.Kind() {
		return strconv.Quote(v.String())
	}
	return fmt.Sprint(element)
}
