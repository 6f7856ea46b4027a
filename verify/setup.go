// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package verify

import (
	"math"

	"github.com/bitmark-inc/avltree/fault"
)

// Configuration - parameters of a verification run
type Configuration struct {
	Rounds  int   `gluamapper:"rounds" json:"rounds"`   // number of independent trees
	Count   int   `gluamapper:"count" json:"count"`     // inserts per tree
	Range   int   `gluamapper:"range" json:"range"`     // keys are in [0, range)
	Queries int   `gluamapper:"queries" json:"queries"` // successor probes per tree
	Workers int   `gluamapper:"workers" json:"workers"` // concurrent rounds, 0 is the same as 1
	Seed    int64 `gluamapper:"seed" json:"seed"`
}

// Reporter - receives the progress of a run
//
//go:generate mockgen -destination=mocks/reporter.go -package=mocks github.com/bitmark-inc/avltree/verify Reporter
type Reporter interface {
	Started(round int, seed int64)
	Finished(round int, size int, height int)
	Failed(round int, err error)
}

// Summary - totals for a completed run
type Summary struct {
	Rounds        int    `json:"rounds"`
	Failures      int    `json:"failures"`
	Elements      int    `json:"elements"`
	MaximumHeight int    `json:"maximum_height"`
	Operations    uint64 `json:"operations"` // tree calls made by all rounds
}

// Validate - check the configuration values are usable
func (c Configuration) Validate() error {
	if c.Rounds < 1 {
		return fault.ErrInvalidRounds
	}
	if c.Count < 0 {
		return fault.ErrInvalidCount
	}
	// successor probes are drawn from [-1, range+1)
	if c.Range < 1 || c.Range > math.MaxInt-2 {
		return fault.ErrInvalidRange
	}
	if c.Queries < 0 {
		return fault.ErrInvalidQueries
	}
	if c.Workers < 0 {
		return fault.ErrInvalidWorkers
	}
	return nil
}
