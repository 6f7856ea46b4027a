// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Clone - create a deep copy of the tree sharing no nodes with the
// original
func (tree *Tree[T]) Clone() *Tree[T] {
	c := NewCompare[T](tree.compare)
	c.root = c.copyNodes(tree.root)
	c.count = tree.count
	return c
}

// Assign - replace the contents of the tree with a deep copy of src
//
// the copy is completed before anything in the tree is changed, the
// previous nodes are only released after the new ones are in place
func (tree *Tree[T]) Assign(src *Tree[T]) {
	if tree == src {
		return
	}

	// copy into the destination's pool so that the nodes of the
	// previous contents can be reused by later inserts
	root := tree.copyNodes(src.root)

	old := tree.root
	tree.root = root
	tree.count = src.count
	tree.compare = src.compare

	tree.postClear(old)
}

// internal: pre-order copy keeping the cached heights
func (tree *Tree[T]) copyNodes(p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	n := tree.newNode(p.element)
	n.height = p.height
	n.left = tree.copyNodes(p.left)
	n.right = tree.copyNodes(p.right)
	return n
}
