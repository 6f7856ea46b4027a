// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
)

// Item - an element type that can order itself against another
// element of the same type
type Item[T any] interface {
	Compare(T) int // for left/right ordering of items
}

// Tree - type to hold the root node of a tree
type Tree[T any] struct {
	root    *Node[T]
	count   int
	compare func(a T, b T) int // -1 if a < b, 0 if a == b, +1 if a > b

	pool       *Node[T] // linked list of reclaimed nodes
	totalNodes int      // total nodes created
	freeNodes  int      // number of nodes in the pool
}

// New - create an initially empty tree of naturally ordered elements
func New[T cmp.Ordered]() *Tree[T] {
	return NewCompare[T](cmp.Compare[T])
}

// NewItem - create an initially empty tree of elements that provide
// their own Compare
func NewItem[T Item[T]]() *Tree[T] {
	return NewCompare[T](func(a T, b T) int {
		return a.Compare(b)
	})
}

// NewCompare - create an initially empty tree ordered by a compare
// function returning -1, 0 or +1
func NewCompare[T any](compare func(a T, b T) int) *Tree[T] {
	if nil == compare {
		panic("avl: nil compare function")
	}
	return &Tree[T]{
		root:    nil,
		count:   0,
		compare: compare,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Size - number of elements currently in the tree
func (tree *Tree[T]) Size() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree[T]) Height() int {
	return height(tree.root)
}

// Clear - release all nodes leaving an empty tree
func (tree *Tree[T]) Clear() {
	root := tree.root
	tree.root = nil
	tree.count = 0
	tree.postClear(root)
}
