// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if an element equal to the argument is in the tree
func (tree *Tree[T]) Contains(element T) bool {
	return nil != tree.search(element)
}

// Search - find the node holding a specific element, nil if absent
func (tree *Tree[T]) Search(element T) *Node[T] {
	return tree.search(element)
}

func (tree *Tree[T]) search(element T) *Node[T] {
	p := tree.root
	for nil != p {
		c := tree.compare(element, p.element)
		switch {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return p
		}
	}
	return nil
}
