// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify the ordering, balance, cached heights and size
// of the whole tree by walking every node
func (tree *Tree[T]) Check() error {
	_, n, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrSizeMismatch
	}
	return nil
}

// internal: consistency checker, all elements of the sub-tree must be
// strictly between low and high (when not nil)
// returns the recomputed height and the number of nodes
func (tree *Tree[T]) check(p *Node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return -1, 0, nil
	}
	if nil != low && tree.compare(p.element, *low) <= 0 {
		return 0, 0, fault.ErrNotOrdered
	}
	if nil != high && tree.compare(p.element, *high) >= 0 {
		return 0, 0, fault.ErrNotOrdered
	}

	hl, nl, err := tree.check(p.left, low, &p.element)
	if nil != err {
		return 0, 0, err
	}
	hr, nr, err := tree.check(p.right, &p.element, high)
	if nil != err {
		return 0, 0, err
	}

	h := hl + 1
	if hr > hl {
		h = hr + 1
	}
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if hl-hr > 1 || hr-hl > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return h, 1 + nl + nr, nil
}
