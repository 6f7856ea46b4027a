// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/verify/mocks"
)

func makeTree(elements ...int) *avl.Tree[int] {
	tree := avl.New[int]()
	for _, e := range elements {
		tree.Insert(e)
	}
	return tree
}

func TestCheckElements(t *testing.T) {
	tree := makeTree(3, 1, 2)

	assert.Nil(t, checkElements(tree, []int{1, 2, 3}), "matching reference")
	assert.Equal(t, fault.ErrElementsMismatch, checkElements(tree, []int{1, 2, 4}), "wrong element")
	assert.Equal(t, fault.ErrElementsMismatch, checkElements(tree, []int{1, 2}), "short reference")
	assert.Equal(t, fault.ErrElementsMismatch, checkElements(tree, []int{1, 2, 3, 4}), "long reference")
}

func TestCheckMinMax(t *testing.T) {
	tree := makeTree(3, 1, 2)
	empty := makeTree()

	assert.Nil(t, checkMinMax(tree, []int{1, 2, 3}), "matching reference")
	assert.Nil(t, checkMinMax(empty, []int{}), "both empty")

	assert.Equal(t, fault.ErrMinMaxMismatch, checkMinMax(tree, []int{0, 2, 3}), "wrong minimum")
	assert.Equal(t, fault.ErrMinMaxMismatch, checkMinMax(tree, []int{1, 2, 4}), "wrong maximum")
	assert.Equal(t, fault.ErrMinMaxMismatch, checkMinMax(tree, []int{}), "empty reference")
	assert.Equal(t, fault.ErrMinMaxMismatch, checkMinMax(empty, []int{1}), "empty tree")
}

func TestCheckSuccessor(t *testing.T) {
	tree := makeTree(1, 3, 5)

	for q := -1; q <= 6; q += 1 {
		assert.Nil(t, checkSuccessor(tree, []int{1, 3, 5}, q), "matching reference: %d", q)
	}

	assert.Equal(t, fault.ErrSuccessorMismatch, checkSuccessor(tree, []int{1, 4, 5}, 3), "wrong successor")
	assert.Equal(t, fault.ErrSuccessorMismatch, checkSuccessor(tree, []int{1, 3}, 3), "reference has no successor")
	assert.Equal(t, fault.ErrSuccessorMismatch, checkSuccessor(tree, []int{1, 3, 5, 7}, 5), "tree has no successor")
}

func TestCheckClone(t *testing.T) {
	assert.Nil(t, checkClone(makeTree(1, 2, 3), 10), "clone")
	assert.Nil(t, checkClone(makeTree(), 10), "empty clone")
}

// rounds 1 and 3 fail, recognised by the first value drawn from the
// round's seed so the result does not depend on which worker ran it
func TestRunReportsFailures(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	config := Configuration{
		Rounds:  4,
		Count:   1,
		Range:   10,
		Workers: 3,
		Seed:    2020,
	}

	failing := make(map[int64]struct{})
	seeds := rand.New(rand.NewSource(config.Seed))
	for i := 0; i < config.Rounds; i += 1 {
		seed := seeds.Int63()
		if 1 == i%2 {
			failing[rand.New(rand.NewSource(seed)).Int63()] = struct{}{}
		}
	}

	check := func(r *rand.Rand, config Configuration, operations *counter.Counter) (int, int, error) {
		operations.Increment()
		if _, ok := failing[r.Int63()]; ok {
			return 0, 0, fault.ErrUnbalanced
		}
		return 10, 3, nil
	}

	r := mocks.NewMockReporter(ctl)
	r.EXPECT().Started(gomock.Any(), gomock.Any()).Times(config.Rounds)
	gomock.InOrder(
		r.EXPECT().Finished(0, 10, 3),
		r.EXPECT().Failed(1, fault.ErrUnbalanced),
		r.EXPECT().Finished(2, 10, 3),
		r.EXPECT().Failed(3, fault.ErrUnbalanced),
	)

	summary, err := run(config, r, check)
	assert.Equal(t, fault.ErrVerificationFailed, err, "run error")
	assert.True(t, fault.IsErrProcess(err), "error class")

	expected := Summary{
		Rounds:        4,
		Failures:      2,
		Elements:      20,
		MaximumHeight: 3,
		Operations:    4,
	}
	assert.Equal(t, expected, summary, "summary")
}
