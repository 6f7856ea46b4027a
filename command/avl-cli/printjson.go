// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

func printYaml(handle io.Writer, message interface{}) error {

	b, err := yaml.Marshal(message)
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s", b)
	return nil
}

// output a result in the selected format
func printResult(m *metadata, message interface{}) error {
	if "yaml" == m.format {
		return printYaml(m.w, message)
	}
	return printJson(m.w, message)
}
