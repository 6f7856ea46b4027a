// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Node - a node in the tree
type Node[T any] struct {
	left    *Node[T] // left sub-tree
	right   *Node[T] // right sub-tree
	element T        // ordered data
	height  int      // 0 for a leaf
}

// allocate a new leaf node, reuses reclaimed nodes if any are available
func (tree *Tree[T]) newNode(element T) *Node[T] {
	if nil == tree.pool {
		if 0 != tree.freeNodes {
			panic("pool corrupt")
		}
		tree.totalNodes += 1
		return &Node[T]{
			element: element,
			height:  0,
		}
	}
	p := tree.pool
	tree.pool = p.right
	p.element = element
	p.height = 0
	p.left = nil
	p.right = nil // ensure freelist pointer is cleared
	tree.freeNodes -= 1
	return p
}

// reclaim a node and keep it in the pool
func (tree *Tree[T]) freeNode(node *Node[T]) {
	var zero T

	node.right = tree.pool // use as free list pointer

	node.left = nil
	node.element = zero
	node.height = 0
	tree.freeNodes += 1

	tree.pool = node
}

// release a complete sub-tree, children before parent
func (tree *Tree[T]) postClear(p *Node[T]) {
	if nil == p {
		return
	}
	tree.postClear(p.left)
	tree.postClear(p.right)
	tree.freeNode(p)
}

// Element - read the element from a node
func (p *Node[T]) Element() T {
	return p.element
}

// Height - cached height of the sub-tree rooted at this node
func (p *Node[T]) Height() int {
	return p.height
}

// Left - left child or nil
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - right child or nil
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// ChildrenByDepth - nodes at a specific depth below this node, from
// left to right
func (p *Node[T]) ChildrenByDepth(depth uint) []*Node[T] {
	if nil == p {
		return nil
	}
	if 0 == depth {
		return []*Node[T]{p}
	}
	return append(p.left.ChildrenByDepth(depth-1), p.right.ChildrenByDepth(depth-1)...)
}
