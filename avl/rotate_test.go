// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// walk the sub-tree to compute heights without using the cache
func recomputedHeight[T any](p *Node[T]) int {
	if nil == p {
		return -1
	}
	hl := recomputedHeight(p.left)
	hr := recomputedHeight(p.right)
	if hl > hr {
		return hl + 1
	}
	return hr + 1
}

// every cached height must match the walked height
func heightsCorrect[T any](p *Node[T]) bool {
	if nil == p {
		return true
	}
	if p.height != recomputedHeight(p) {
		return false
	}
	return heightsCorrect(p.left) && heightsCorrect(p.right)
}

func buildTree(elements ...int) *Tree[int] {
	tree := New[int]()
	for _, e := range elements {
		tree.Insert(e)
	}
	return tree
}

func TestRotateLeftThenRight(t *testing.T) {
	tree := buildTree(40, 20, 60, 10, 30, 50, 70, 65, 80)
	before := tree.InOrder()
	shape := tree.PreOrder()

	root := rotateLeft(tree.root)
	assert.Equal(t, 60, root.element, "new root after left rotation")
	tree.root = root
	assert.Equal(t, before, tree.InOrder(), "in-order after left rotation")
	assert.True(t, heightsCorrect(tree.root), "heights after left rotation")

	tree.root = rotateRight(tree.root)
	assert.Equal(t, 40, tree.root.element, "root restored")
	assert.Equal(t, before, tree.InOrder(), "in-order after right rotation")
	assert.Equal(t, shape, tree.PreOrder(), "shape restored")
	assert.True(t, heightsCorrect(tree.root), "heights after right rotation")
	assert.NoError(t, tree.Check(), "check")
}

func TestRotateRightThenLeft(t *testing.T) {
	tree := buildTree(40, 20, 60, 10, 30, 50, 70, 5, 15)
	before := tree.InOrder()
	shape := tree.PreOrder()

	tree.root = rotateRight(tree.root)
	assert.Equal(t, 20, tree.root.element, "new root after right rotation")
	assert.Equal(t, before, tree.InOrder(), "in-order after right rotation")
	assert.True(t, heightsCorrect(tree.root), "heights after right rotation")

	tree.root = rotateLeft(tree.root)
	assert.Equal(t, before, tree.InOrder(), "in-order after left rotation")
	assert.Equal(t, shape, tree.PreOrder(), "shape restored")
	assert.NoError(t, tree.Check(), "check")
}

func TestRotateHeights(t *testing.T) {
	// a right leaning chain built by hand: 1 → 2 → 3
	c := &Node[int]{element: 3}
	b := &Node[int]{element: 2, right: c, height: 1}
	a := &Node[int]{element: 1, right: b, height: 2}

	root := rotateLeft(a)
	assert.Equal(t, b, root, "middle node lifted")
	assert.Equal(t, 1, root.height, "root height")
	assert.Equal(t, 0, a.height, "lowered node height")
	assert.Equal(t, 0, c.height, "leaf height")
	assert.Equal(t, 0, balanceFactor(root), "balance")
}

func TestBalanceFactor(t *testing.T) {
	assert.Equal(t, 0, balanceFactor[int](nil), "nil node")
	assert.Equal(t, -1, height[int](nil), "nil height")

	tree := buildTree(2, 1)
	assert.Equal(t, 1, balanceFactor(tree.root), "left heavy")

	tree = buildTree(1, 2)
	assert.Equal(t, -1, balanceFactor(tree.root), "right heavy")
}

func TestCheckDetectsCorruption(t *testing.T) {
	tree := buildTree(1, 2, 3, 4, 5, 6, 7)
	assert.NoError(t, tree.Check(), "valid tree")

	tree.root.left.height += 1
	assert.Error(t, tree.Check(), "corrupt height")
	tree.root.left.height -= 1

	tree.root.left.element, tree.root.right.element = tree.root.right.element, tree.root.left.element
	assert.Error(t, tree.Check(), "unordered")
	tree.root.left.element, tree.root.right.element = tree.root.right.element, tree.root.left.element

	tree.count += 1
	assert.Error(t, tree.Check(), "wrong size")
	tree.count -= 1

	// unbalanced but correctly ordered with correct heights
	tree = buildTree(2, 1, 3)
	tree.root.right.right = &Node[int]{element: 4}
	tree.root.right.right.right = &Node[int]{element: 5}
	tree.root.right.right.height = 1
	tree.root.right.height = 2
	tree.root.height = 3
	tree.count = 5
	assert.Error(t, tree.Check(), "unbalanced")
}

func TestClearReleasesNodes(t *testing.T) {
	tree := buildTree(8, 4, 12, 2, 6, 10, 14)
	assert.Equal(t, 7, tree.totalNodes, "nodes created")
	assert.Equal(t, 0, tree.freeNodes, "nodes in pool")

	tree.Clear()
	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 7, tree.freeNodes, "each node released once")

	for _, e := range []int{3, 1, 2} {
		tree.Insert(e)
	}
	assert.Equal(t, 7, tree.totalNodes, "pool nodes reused")
	assert.Equal(t, 4, tree.freeNodes, "nodes left in pool")
	assert.Equal(t, "1 2 3", tree.InOrder(), "in-order")
	assert.NoError(t, tree.Check(), "check")
}

func TestAssignReleasesAfterSwap(t *testing.T) {
	dst := buildTree(1, 2, 3)
	src := buildTree(10, 20, 30, 40)

	dst.Assign(src)
	assert.Equal(t, 3, dst.freeNodes, "previous nodes released")
	assert.Equal(t, "10 20 30 40", dst.InOrder(), "copied elements")
	assert.Equal(t, src.PreOrder(), dst.PreOrder(), "copied shape")
	assert.NoError(t, dst.Check(), "check")
}
