// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	items := []struct {
		directory string
		path      string
		expected  string
	}{
		{"/var/avl", "log", "/var/avl/log"},
		{"/var/avl", "./log/../data", "/var/avl/data"},
		{"/var/avl", "/tmp/log", "/tmp/log"},
		{"/var/avl/", "/tmp//log/", "/tmp/log"},
	}

	for i, item := range items {
		actual := util.EnsureAbsolute(item.directory, item.path)
		assert.Equal(t, item.expected, actual, "%d: directory: %q  path: %q", i, item.directory, item.path)
	}
}

func TestFileAndDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "util")
	require.NoError(t, err, "temporary directory")
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "file.txt")
	require.NoError(t, ioutil.WriteFile(fileName, []byte("data"), 0600), "write file")

	assert.True(t, util.EnsureFileExists(fileName), "file exists")
	assert.True(t, util.EnsureFileExists(dir), "directory exists")
	assert.False(t, util.EnsureFileExists(filepath.Join(dir, "absent")), "absent file")

	assert.True(t, util.IsDirectory(dir), "directory")
	assert.False(t, util.IsDirectory(fileName), "file is not a directory")
	assert.False(t, util.IsDirectory(filepath.Join(dir, "absent")), "absent directory")
}
