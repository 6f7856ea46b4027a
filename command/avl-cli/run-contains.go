// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

type containsResult struct {
	Key   string `json:"key" yaml:"key"`
	Found bool   `json:"found" yaml:"found"`
}

func runContains(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keys, err := checkValues(c.Args())
	if nil != err {
		return err
	}

	results := make([]containsResult, 0, len(keys))
	for _, key := range keys {
		found, err := m.tree.contains(key)
		if nil != err {
			return err
		}
		results = append(results, containsResult{
			Key:   key,
			Found: found,
		})
	}
	return printResult(m, results)
}
