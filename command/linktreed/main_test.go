// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/linktreed/fixtures"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// write a configuration file into a fresh directory
func writeConfiguration(t *testing.T, name string, text string) string {
	dir, err := filepath.Abs(fixtures.TempDirectory(name))
	if nil != err {
		t.Fatalf("absolute path error: %s", err)
	}
	fileName := filepath.Join(dir, "linktreed.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}
