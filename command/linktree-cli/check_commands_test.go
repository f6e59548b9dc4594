// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/chain"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/fixtures"
	"github.com/bitmark-inc/linktreed/keypair"
)

func TestCheckNetwork(t *testing.T) {
	tests := []struct {
		in  string
		out string
		err error
	}{
		{"live", chain.Live, nil},
		{"Production", chain.Live, nil},
		{"test", chain.Testing, nil},
		{"local", chain.Local, nil},
		{"other", "", ErrUnsupportedChain},
	}
	for i, test := range tests {
		network, err := checkNetwork(test.in)
		assert.Equal(t, test.err, err, "%d: wrong error", i)
		assert.Equal(t, test.out, network, "%d: wrong network", i)
	}
}

func TestCheckOwner(t *testing.T) {
	owner, err := checkOwner("", true)
	assert.Nil(t, err, "blank owner")
	assert.Nil(t, owner, "blank owner is not nil")

	text := fixtures.Owner1.Account().String()
	owner, err = checkOwner(text, true)
	assert.Nil(t, err, "valid owner")
	assert.True(t, fixtures.Owner1.Account().Equal(owner), "wrong owner")

	_, err = checkOwner(text, false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "network not checked")

	_, err = checkOwner("zzz", true)
	assert.NotNil(t, err, "junk owner accepted")
}

func TestCheckLinks(t *testing.T) {
	urls, titles, err := checkLinks([]string{"https://a", "https://b"}, []string{"A"})
	assert.Nil(t, err, "padding titles")
	assert.Equal(t, []string{"https://a", "https://b"}, urls, "wrong urls")
	assert.Equal(t, []string{"A", ""}, titles, "wrong titles")

	_, _, err = checkLinks(nil, nil)
	assert.Equal(t, ErrRequiredUrl, err, "no urls")

	_, _, err = checkLinks([]string{"https://a"}, []string{"A", "B"})
	assert.Equal(t, fault.UrlTitleCountMismatch, err, "extra titles")
}

func TestCheckIds(t *testing.T) {
	ids, err := checkIds([]string{"0", " 7", "42"})
	assert.Nil(t, err, "valid ids")
	assert.Equal(t, []uint64{0, 7, 42}, ids, "wrong ids")

	_, err = checkIds(nil)
	assert.Equal(t, ErrRequiredIds, err, "no ids")

	_, err = checkIds([]string{"-1"})
	assert.Equal(t, ErrInvalidLinkId, err, "negative id")
}

func TestGenerateCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "linktree-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "identity.json")

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out

	err = app.Run([]string{"linktree-cli", "--network", "local", "--identity", fileName, "generate"})
	assert.Nil(t, err, "generate error")

	var result struct {
		File    string `json:"file"`
		Account string `json:"account"`
		Testnet bool   `json:"testnet"`
	}
	err = json.Unmarshal(out.Bytes(), &result)
	assert.Nil(t, err, "output is not JSON")
	assert.Equal(t, fileName, result.File, "wrong file")
	assert.True(t, result.Testnet, "not testnet")
	assert.NotContains(t, out.String(), "seed", "seed was printed")

	privateKey, err := keypair.Load(fileName)
	assert.Nil(t, err, "load error")
	assert.Equal(t, result.Account, privateKey.Account().String(), "wrong account")

	// never overwrite an identity
	err = app.Run([]string{"linktree-cli", "--network", "local", "--identity", fileName, "generate"})
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "identity overwritten")
}

func TestSignedCommandsNeedIdentity(t *testing.T) {
	app := newApp()
	app.Writer = ioutil.Discard
	app.ErrWriter = ioutil.Discard

	err := app.Run([]string{"linktree-cli", "--identity", "/nonexistent/identity.json", "create", "--handle", "x"})
	assert.Equal(t, fault.IdentityNotFound, err, "missing identity not reported")

	err = app.Run([]string{"linktree-cli", "create"})
	assert.Equal(t, ErrRequiredHandle, err, "missing handle not reported")
}
