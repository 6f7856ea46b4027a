// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// check the output format
func checkFormat(format string) (string, error) {
	switch format {
	case "json", "yaml":
		return format, nil
	case "yml":
		return "yaml", nil
	default:
		return "", fault.ErrInvalidOutputFormat
	}
}

// at least one value is required
func checkValues(values []string) ([]string, error) {
	if 0 == len(values) {
		return nil, fault.ErrMissingValue
	}
	return values, nil
}

// read keys one per line, blank lines and lines starting with '#'
// are ignored
func readKeys(fileName string) ([]string, error) {
	f, err := os.Open(fileName)
	if nil != err {
		return nil, err
	}
	defer f.Close()

	keys := make([]string, 0, 100)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		keys = append(keys, line)
	}
	if err := scanner.Err(); nil != err {
		return nil, err
	}
	return keys, nil
}

func insertKeys(tree keyTree, keys []string) error {
	for _, key := range keys {
		if _, err := tree.insert(key); nil != err {
			return err
		}
	}
	return nil
}
