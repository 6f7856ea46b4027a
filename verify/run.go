// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"math/rand"
	"sort"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/background"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// Run - execute all rounds, a failed round does not stop the run
// returns fault.ErrVerificationFailed if any round failed
//
// round seeds come from config.Seed so the rounds and the reporter
// calls are the same whatever the number of workers
func Run(config Configuration, reporter Reporter) (Summary, error) {
	return run(config, reporter, checkRound)
}

// checks a single round, returns the final tree size and height
type roundChecker func(r *rand.Rand, config Configuration, operations *counter.Counter) (int, int, error)

func run(config Configuration, reporter Reporter, check roundChecker) (Summary, error) {
	summary := Summary{}

	if err := config.Validate(); nil != err {
		return summary, err
	}

	seeds := rand.New(rand.NewSource(config.Seed))

	jobs := make(chan job, config.Rounds)
	for i := 0; i < config.Rounds; i += 1 {
		seed := seeds.Int63()
		reporter.Started(i, seed)
		jobs <- job{round: i, seed: seed}
	}
	close(jobs)

	workers := config.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > config.Rounds {
		workers = config.Rounds
	}

	var operations counter.Counter
	results := make(chan result, config.Rounds)

	processes := make(background.Processes, workers)
	for i := range processes {
		processes[i] = &worker{
			config:     config,
			check:      check,
			jobs:       jobs,
			results:    results,
			operations: &operations,
		}
	}
	b := background.Start(processes, nil)

	ordered := make([]result, config.Rounds)
	for i := 0; i < config.Rounds; i += 1 {
		r := <-results
		ordered[r.round] = r
	}
	b.Stop()

	for i, r := range ordered {
		summary.Rounds += 1
		if nil != r.err {
			summary.Failures += 1
			reporter.Failed(i, r.err)
			continue
		}

		summary.Elements += r.size
		if r.height > summary.MaximumHeight {
			summary.MaximumHeight = r.height
		}
		reporter.Finished(i, r.size, r.height)
	}
	summary.Operations = operations.Uint64()

	if 0 != summary.Failures {
		return summary, fault.ErrVerificationFailed
	}
	return summary, nil
}

type job struct {
	round int
	seed  int64
}

type result struct {
	round  int
	size   int
	height int
	err    error
}

// worker - background process checking rounds until the queue is empty
type worker struct {
	config     Configuration
	check      roundChecker
	jobs       <-chan job
	results    chan<- result
	operations *counter.Counter
}

func (w *worker) Run(args interface{}, shutdown <-chan struct{}) {
	for {
		select {
		case <-shutdown:
			return
		case j, ok := <-w.jobs:
			if !ok {
				return
			}
			size, height, err := w.check(rand.New(rand.NewSource(j.seed)), w.config, w.operations)
			w.results <- result{
				round:  j.round,
				size:   size,
				height: height,
				err:    err,
			}
		}
	}
}

// build one tree and compare it with a sorted reference
func checkRound(r *rand.Rand, config Configuration, operations *counter.Counter) (int, int, error) {

	tree := avl.New[int]()
	reference := make(map[int]struct{})

	for i := 0; i < config.Count; i += 1 {
		key := r.Intn(config.Range)
		_, exists := reference[key]
		reference[key] = struct{}{}

		if added := tree.Insert(key); added == exists {
			return 0, 0, fault.ErrSizeMismatch
		}
		if err := tree.Check(); nil != err {
			return 0, 0, err
		}
		operations.Add(2)
	}

	sorted := make([]int, 0, len(reference))
	for key := range reference {
		sorted = append(sorted, key)
	}
	sort.Ints(sorted)

	if err := checkElements(tree, sorted); nil != err {
		return 0, 0, err
	}
	if err := checkMinMax(tree, sorted); nil != err {
		return 0, 0, err
	}
	operations.Add(3)

	// probes run one below and one above the key range
	for i := 0; i < config.Queries; i += 1 {
		q := r.Intn(config.Range+2) - 1
		if err := checkSuccessor(tree, sorted, q); nil != err {
			return 0, 0, err
		}
		operations.Increment()
	}

	if err := checkClone(tree, config.Range); nil != err {
		return 0, 0, err
	}
	operations.Increment()

	return tree.Size(), tree.Height(), nil
}

func checkElements(tree *avl.Tree[int], sorted []int) error {
	elements := tree.Elements()
	if len(elements) != len(sorted) || tree.Size() != len(sorted) {
		return fault.ErrElementsMismatch
	}
	for i, e := range elements {
		if sorted[i] != e {
			return fault.ErrElementsMismatch
		}
	}
	return nil
}

func checkMinMax(tree *avl.Tree[int], sorted []int) error {
	lowest, errMin := tree.Min()
	highest, errMax := tree.Max()

	if 0 == len(sorted) {
		if !fault.IsErrEmpty(errMin) || !fault.IsErrEmpty(errMax) {
			return fault.ErrMinMaxMismatch
		}
		return nil
	}

	if nil != errMin || nil != errMax {
		return fault.ErrMinMaxMismatch
	}
	if sorted[0] != lowest || sorted[len(sorted)-1] != highest {
		return fault.ErrMinMaxMismatch
	}
	return nil
}

func checkSuccessor(tree *avl.Tree[int], sorted []int, q int) error {
	j := sort.SearchInts(sorted, q+1) // first element > q

	s, err := tree.Successor(q)
	if j == len(sorted) {
		if !fault.IsErrNotFound(err) {
			return fault.ErrSuccessorMismatch
		}
		return nil
	}
	if nil != err || sorted[j] != s {
		return fault.ErrSuccessorMismatch
	}
	return nil
}

// outside is a key that can never be in the tree
func checkClone(tree *avl.Tree[int], outside int) error {
	size := tree.Size()
	c := tree.Clone()

	c.Insert(outside)
	if tree.Contains(outside) || size != tree.Size() || size+1 != c.Size() {
		return fault.ErrCloneNotIndependent
	}
	return c.Check()
}
