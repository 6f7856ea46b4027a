// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/avltree/background"
)

type printer struct {
	lines []string
}

func (state *printer) Run(args interface{}, shutdown <-chan struct{}) {
	for _, s := range state.lines {
		fmt.Println(s)
	}
	<-shutdown
	fmt.Println("finalise")
}

func Example() {
	proc := &printer{
		lines: []string{"initialise", "working"},
	}

	p := background.Start(background.Processes{proc}, nil)
	p.Stop()
	// Output:
	// initialise
	// working
	// finalise
}
