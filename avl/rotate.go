// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// rotateRight - lift the left child of p into its place
//
//	    p            l
//	   / \          / \
//	  l   c   =>   a   p
//	 / \              / \
//	a   b            b   c
//
// p is lowered so its height must be computed before that of l
func rotateRight[T any](p *Node[T]) *Node[T] {
	l := p.left
	p.left = l.right
	l.right = p

	updateHeight(p)
	updateHeight(l)

	return l
}

// rotateLeft - lift the right child of p into its place
//
//	  p                r
//	 / \              / \
//	a   r     =>     p   c
//	   / \          / \
//	  b   c        a   b
//
// p is lowered so its height must be computed before that of r
func rotateLeft[T any](p *Node[T]) *Node[T] {
	r := p.right
	p.right = r.left
	r.left = p

	updateHeight(p)
	updateHeight(r)

	return r
}
