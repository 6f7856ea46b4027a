// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type insertResult struct {
	Key   string `json:"key" yaml:"key"`
	Added bool   `json:"added" yaml:"added"`
}

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	results := make([]insertResult, 0, len(c.Args()))
	for _, key := range c.Args() {
		added, err := m.tree.insert(key)
		if nil != err {
			return err
		}
		results = append(results, insertResult{
			Key:   key,
			Added: added,
		})
	}

	out := struct {
		Inserted []insertResult `json:"inserted" yaml:"inserted"`
		Size     int            `json:"size" yaml:"size"`
		Height   int            `json:"height" yaml:"height"`
	}{
		Inserted: results,
		Size:     m.tree.size(),
		Height:   m.tree.height(),
	}
	return printResult(m, out)
}
