// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"
)

// PreOrder - space separated elements, each node before its children
func (tree *Tree[T]) PreOrder() string {
	s := make([]string, 0, tree.count)
	preOrder(tree.root, func(p *Node[T]) {
		s = append(s, formatElement(p.element))
	})
	return strings.Join(s, " ")
}

// InOrder - space separated elements in ascending order
func (tree *Tree[T]) InOrder() string {
	s := make([]string, 0, tree.count)
	inOrder(tree.root, func(p *Node[T]) {
		s = append(s, formatElement(p.element))
	})
	return strings.Join(s, " ")
}

// PostOrder - space separated elements, children before each node
func (tree *Tree[T]) PostOrder() string {
	s := make([]string, 0, tree.count)
	postOrder(tree.root, func(p *Node[T]) {
		s = append(s, formatElement(p.element))
	})
	return strings.Join(s, " ")
}

// Elements - all elements in ascending order
func (tree *Tree[T]) Elements() []T {
	elements := make([]T, 0, tree.count)
	inOrder(tree.root, func(p *Node[T]) {
		elements = append(elements, p.element)
	})
	return elements
}

func preOrder[T any](p *Node[T], visit func(*Node[T])) {
	if nil == p {
		return
	}
	visit(p)
	preOrder(p.left, visit)
	preOrder(p.right, visit)
}

func inOrder[T any](p *Node[T], visit func(*Node[T])) {
	if nil == p {
		return
	}
	inOrder(p.left, visit)
	visit(p)
	inOrder(p.right, visit)
}

func postOrder[T any](p *Node[T], visit func(*Node[T])) {
	if nil == p {
		return
	}
	postOrder(p.left, visit)
	postOrder(p.right, visit)
	visit(p)
}
