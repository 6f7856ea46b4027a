// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL height balanced binary search tree holding
// elements of any type with a strict total order
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree (a leaf is zero and an
// empty sub-tree is -1) and insertion restores the balance of every
// ancestor of the new node using single or double rotations.
//
// Elements are unique: inserting an element that compares equal to
// one already present leaves the tree unchanged and does not change
// its size.
package avl
