// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/counter"
)

func TestCounter(t *testing.T) {
	var c counter.Counter

	assert.True(t, c.IsZero(), "counter is not zero at start: %d", c.Uint64())

	assert.Equal(t, uint64(1), c.Increment(), "first increment")
	assert.Equal(t, uint64(2), c.Increment(), "second increment")
	assert.Equal(t, uint64(12), c.Add(10), "add")
	assert.Equal(t, uint64(12), c.Uint64(), "value")
	assert.False(t, c.IsZero(), "counter is zero after increments")
}

func TestCounterConcurrent(t *testing.T) {
	var c counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8000), c.Uint64(), "total")
}
