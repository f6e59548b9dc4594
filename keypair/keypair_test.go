// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package keypair_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/keypair"
)

func TestGenerateAndFromSeed(t *testing.T) {
	identity, privateKey, err := keypair.Generate(true)
	if !assert.Nil(t, err, "generate error") {
		return
	}
	assert.True(t, privateKey.IsTesting(), "not a test key")
	assert.Equal(t, privateKey.Account().String(), identity.Account, "wrong account")

	again, againKey, err := keypair.FromSeed(identity.Seed)
	assert.Nil(t, err, "from seed error")
	assert.Equal(t, identity, again, "identity differs")
	assert.True(t, privateKey.Account().Equal(againKey.Account()), "account differs")

	live, liveKey, err := keypair.Generate(false)
	assert.Nil(t, err, "generate live error")
	assert.False(t, liveKey.IsTesting(), "live key is testing")
	assert.NotEqual(t, identity.Seed, live.Seed, "seeds repeat")

	_, _, err = keypair.FromSeed("not-a-seed")
	assert.NotNil(t, err, "bad seed accepted")
}

func TestSaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "keypair")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "identity.json")

	_, err = keypair.Load(fileName)
	assert.Equal(t, fault.IdentityNotFound, err, "missing file")

	identity, privateKey, err := keypair.Generate(true)
	if !assert.Nil(t, err, "generate error") {
		return
	}

	err = keypair.Save(fileName, identity)
	assert.Nil(t, err, "save error")

	err = keypair.Save(fileName, identity)
	assert.Equal(t, fault.KeyFileAlreadyExists, err, "overwrite allowed")

	loaded, err := keypair.Load(fileName)
	assert.Nil(t, err, "load error")
	assert.True(t, privateKey.Account().Equal(loaded.Account()), "wrong loaded account")

	// account that does not belong to the seed
	other, _, _ := keypair.Generate(true)
	identity.Account = other.Account
	mismatchName := filepath.Join(dir, "mismatch.json")
	err = keypair.Save(mismatchName, identity)
	assert.Nil(t, err, "save mismatch error")

	_, err = keypair.Load(mismatchName)
	assert.Equal(t, fault.IdentityMismatch, err, "mismatch not detected")
}
