// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTraverse(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "elements: %d\n", m.tree.size())
	}

	out := struct {
		PreOrder  string `json:"pre_order" yaml:"pre_order"`
		InOrder   string `json:"in_order" yaml:"in_order"`
		PostOrder string `json:"post_order" yaml:"post_order"`
	}{
		PreOrder:  m.tree.preOrder(),
		InOrder:   m.tree.inOrder(),
		PostOrder: m.tree.postOrder(),
	}
	return printResult(m, out)
}

// sideways rendering is written as plain text whatever the format
func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if m.verbose {
		fmt.Fprintf(m.e, "height: %d\n", m.tree.height())
	}

	fmt.Fprint(m.w, m.tree.format(!c.Bool("no-heights")))
	return nil
}
