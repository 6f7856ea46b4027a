// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
)

type successorResult struct {
	Value     string      `json:"value" yaml:"value"`
	Successor interface{} `json:"successor,omitempty" yaml:"successor,omitempty"`
	Error     string      `json:"error,omitempty" yaml:"error,omitempty"`
}

func runSuccessor(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	values, err := checkValues(c.Args())
	if nil != err {
		return err
	}

	results := make([]successorResult, 0, len(values))
	for _, value := range values {
		s, err := m.tree.successor(value)
		switch {
		case nil == err:
			results = append(results, successorResult{
				Value:     value,
				Successor: s,
			})
		case fault.IsErrNotFound(err):
			// nothing larger is stored
			results = append(results, successorResult{
				Value: value,
				Error: err.Error(),
			})
		default:
			return err
		}
	}
	return printResult(m, results)
}
