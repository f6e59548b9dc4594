// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		directory string
		file      string
		expected  string
	}{
		{"/var/lib/linktreed", "data", "/var/lib/linktreed/data"},
		{"/var/lib/linktreed/", "./log/../log", "/var/lib/linktreed/log"},
		{"/var/lib/linktreed", "/etc/linktreed/rpc.crt", "/etc/linktreed/rpc.crt"},
		{"/var/lib/linktreed", "/etc//linktreed/./rpc.key", "/etc/linktreed/rpc.key"},
	}

	for i, test := range tests {
		actual := util.EnsureAbsolute(test.directory, test.file)
		assert.Equal(t, test.expected, actual, "%d: wrong path", i)
	}
}

func TestFileExists(t *testing.T) {
	assert.True(t, util.FileExists("paths_test.go"), "test source not found")
	assert.False(t, util.FileExists("no-such-file.go"), "missing file found")
}
