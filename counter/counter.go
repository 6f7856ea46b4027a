// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter

import (
	"sync/atomic"
)

// Counter - a total that can be updated from several goroutines
type Counter struct {
	value atomic.Uint64
}

// Increment - add 1 to a counter, returns new value
func (c *Counter) Increment() uint64 {
	return c.value.Add(1)
}

// Add - add n to a counter, returns new value
func (c *Counter) Add(n uint64) uint64 {
	return c.value.Add(n)
}

// Uint64 - returns current value
func (c *Counter) Uint64() uint64 {
	return c.value.Load()
}

// IsZero - check if zero
func (c *Counter) IsZero() bool {
	return 0 == c.value.Load()
}
