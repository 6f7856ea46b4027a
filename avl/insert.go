// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new element into the tree
// returns false if an equal element was already present, in which
// case neither the tree nor its size are changed
func (tree *Tree[T]) Insert(element T) bool {
	added := false
	tree.root, added = tree.insert(element, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the possibly rotated sub-tree
// root and whether a new node was created
func (tree *Tree[T]) insert(element T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return tree.newNode(element), true
	}

	added := false
	switch c := tree.compare(element, p.element); {
	case c < 0: // element < p.element
		p.left, added = tree.insert(element, p.left)
	case c > 0: // element > p.element
		p.right, added = tree.insert(element, p.right)
	default:
		return p, false
	}

	updateHeight(p)

	bf := balanceFactor(p)

	// left-left: new element is in the left sub-tree of the left child
	if bf > 1 && tree.compare(element, p.left.element) < 0 {
		return rotateRight(p), added
	}

	// right-right: new element is in the right sub-tree of the right child
	if bf < -1 && tree.compare(element, p.right.element) > 0 {
		return rotateLeft(p), added
	}

	// left-right
	if bf > 1 && tree.compare(element, p.left.element) > 0 {
		p.left = rotateLeft(p.left)
		return rotateRight(p), added
	}

	// right-left
	if bf < -1 && tree.compare(element, p.right.element) < 0 {
		p.right = rotateRight(p.right)
		return rotateLeft(p), added
	}

	return p, added
}
