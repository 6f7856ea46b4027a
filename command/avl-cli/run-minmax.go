// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runMin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := m.tree.min()
	if nil != err {
		return err
	}

	out := struct {
		Min interface{} `json:"min" yaml:"min"`
	}{
		Min: k,
	}
	return printResult(m, out)
}

func runMax(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	k, err := m.tree.max()
	if nil != err {
		return err
	}

	out := struct {
		Max interface{} `json:"max" yaml:"max"`
	}{
		Max: k,
	}
	return printResult(m, out)
}
