// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package verify - randomised verification of the avl tree
//
// Each round builds a tree from pseudo-random keys, checks every
// invariant after each insert and then compares the queries of the
// tree against a plain sorted reference.  Rounds are reproducible
// from the configured seed.
package verify
