// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// height of a sub-tree, an empty sub-tree is -1
func height[T any](p *Node[T]) int {
	if nil == p {
		return -1
	}
	return p.height
}

// recompute the cached height from the children's cached heights
func updateHeight[T any](p *Node[T]) {
	hl := height(p.left)
	hr := height(p.right)
	if hl > hr {
		p.height = hl + 1
	} else {
		p.height = hr + 1
	}
}

// positive when left heavy, negative when right heavy
func balanceFactor[T any](p *Node[T]) int {
	if nil == p {
		return 0
	}
	return height(p.left) - height(p.right)
}
