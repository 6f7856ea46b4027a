// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// First - return the node with the lowest element or nil if empty
func (tree *Tree[T]) First() *Node[T] {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node[T]) first() *Node[T] {
	if p == nil {
		return nil
	}
	for p.left != nil {
		p = p.left
	}
	return p
}

// Last - return the node with the highest element or nil if empty
func (tree *Tree[T]) Last() *Node[T] {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node[T]) last() *Node[T] {
	if p == nil {
		return nil
	}
	for p.right != nil {
		p = p.right
	}
	return p
}

// Min - the lowest element
func (tree *Tree[T]) Min() (T, error) {
	p := tree.First()
	if nil == p {
		var zero T
		return zero, fault.ErrEmptyTree
	}
	return p.element, nil
}

// Max - the highest element
func (tree *Tree[T]) Max() (T, error) {
	p := tree.Last()
	if nil == p {
		var zero T
		return zero, fault.ErrEmptyTree
	}
	return p.element, nil
}

// Successor - the lowest element strictly greater than the argument,
// which need not itself be in the tree
func (tree *Tree[T]) Successor(element T) (T, error) {
	p := tree.successor(element, tree.root)
	if nil == p {
		var zero T
		return zero, fault.ErrNoSuccessor
	}
	return p.element, nil
}

// internal: a node greater than the element is a candidate, but its
// left sub-tree may hold a closer one
func (tree *Tree[T]) successor(element T, p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}
	if tree.compare(p.element, element) > 0 {
		if s := tree.successor(element, p.left); nil != s {
			return s
		}
		return p
	}
	return tree.successor(element, p.right)
}
