// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background

import (
	"sync"
)

// Process - a task run on its own goroutine until the shutdown
// channel is closed or it has no more work
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start together
type Processes []Process

// T - handle for a set of started processes
type T struct {
	shutdown chan struct{}
	wg       sync.WaitGroup
	stopped  bool
}

// Start - run each process on a separate goroutine, all receive the
// same args
func Start(processes Processes, args interface{}) *T {
	t := &T{
		shutdown: make(chan struct{}),
	}

	for _, p := range processes {
		t.wg.Add(1)
		go func(p Process) {
			defer t.wg.Done()
			p.Run(args, t.shutdown)
		}(p)
	}
	return t
}

// Wait - block until every process has returned
func (t *T) Wait() {
	t.wg.Wait()
}

// Stop - signal shutdown and wait for every process to return
// calling Stop more than once is harmless
func (t *T) Stop() {
	if !t.stopped {
		t.stopped = true
		close(t.shutdown)
	}
	t.wg.Wait()
}
