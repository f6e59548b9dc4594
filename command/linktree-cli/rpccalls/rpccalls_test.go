// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/address"
	"github.com/bitmark-inc/linktreed/chain"
	"github.com/bitmark-inc/linktreed/command/linktree-cli/rpccalls"
	"github.com/bitmark-inc/linktreed/directory"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/fixtures"
	"github.com/bitmark-inc/linktreed/rpc"
	"github.com/bitmark-inc/linktreed/rpc/certificate"
	"github.com/bitmark-inc/linktreed/rpc/listeners"
	"github.com/bitmark-inc/linktreed/storage"
)

var listen string

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()

	rc := func() int {
		dir := fixtures.TempDirectory("rpccalls")
		certificateFile := path.Join(dir, "rpc.crt")
		keyFile := path.Join(dir, "rpc.key")
		err := certificate.Generate("test", certificateFile, keyFile, true, []string{"127.0.0.1"})
		if nil != err {
			fmt.Printf("generate certificate error: %s\n", err)
			return 1
		}

		db, err := storage.Open(path.Join(dir, "db"), storage.ReadWrite, 0)
		if nil != err {
			fmt.Printf("storage open error: %s\n", err)
			return 1
		}
		defer db.Close()

		listen = fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
		configuration := &listeners.RPCConfiguration{
			MaximumConnections: 5,
			Listen:             []string{listen},
			Certificate:        certificateFile,
			PrivateKey:         keyFile,
		}
		err = rpc.Initialise(configuration, directory.New(db), chain.Local, "test")
		if nil != err {
			fmt.Printf("rpc initialise error: %s\n", err)
			return 1
		}
		defer rpc.Finalise()

		return m.Run()
	}()

	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestLinkLifecycle(t *testing.T) {
	var verbose bytes.Buffer
	client, err := rpccalls.NewClient(listen, fixtures.Owner1, true, &verbose)
	if nil != err {
		t.Fatalf("new client error: %s", err)
	}
	defer client.Close()

	created, err := client.Create("lifecycle")
	if !assert.Nil(t, err, "create error") {
		return
	}
	assert.Equal(t, "lifecycle", created.Record.Handle, "wrong handle")
	assert.True(t, fixtures.Owner1.Account().Equal(created.Record.Owner), "wrong owner")
	assert.Contains(t, verbose.String(), "signed request:", "verbose output missing")

	added, err := client.AddLinks("lifecycle", nil, []string{"https://a.example", "https://b.example"}, []string{"A", "B"})
	assert.Nil(t, err, "add error")
	assert.Equal(t, 2, len(added.Entries), "wrong added count")

	deleted, err := client.DeleteLinks("lifecycle", nil, []uint64{0})
	assert.Nil(t, err, "delete links error")
	assert.Equal(t, 1, deleted.Deleted, "wrong deleted count")

	got, err := client.Get("lifecycle", nil)
	assert.Nil(t, err, "get error")
	if assert.Equal(t, 1, len(got.Record.Entries), "wrong entry count") {
		assert.Equal(t, uint64(1), got.Record.Entries[0].Id, "wrong remaining id")
	}
	assert.Equal(t, created.Address, got.Address, "wrong address")

	list, err := client.List(address.Address{}, 10)
	assert.Nil(t, err, "list error")
	assert.True(t, len(list.Records) >= 1, "list is empty")

	info, err := client.GetInfo()
	assert.Nil(t, err, "info error")
	assert.Equal(t, chain.Local, info.Chain, "wrong chain")

	reclaimed, err := client.DeleteRecord("lifecycle", nil)
	assert.Nil(t, err, "delete record error")
	assert.True(t, reclaimed.Reclaimed > 0, "nothing reclaimed")

	_, err = client.Get("lifecycle", nil)
	assert.NotNil(t, err, "deleted record still present")
	assert.Equal(t, fault.RecordNotFound.Error(), err.Error(), "wrong error text")
}

func TestOtherOwner(t *testing.T) {
	owner, err := rpccalls.NewClient(listen, fixtures.Owner1, false, nil)
	if nil != err {
		t.Fatalf("new client error: %s", err)
	}
	defer owner.Close()

	other, err := rpccalls.NewClient(listen, fixtures.Owner2, false, nil)
	if nil != err {
		t.Fatalf("new client error: %s", err)
	}
	defer other.Close()

	_, err = owner.Create("guarded")
	assert.Nil(t, err, "create error")

	_, err = other.AddLinks("guarded", fixtures.Owner1.Account(), []string{"https://x.example"}, []string{"X"})
	assert.NotNil(t, err, "other owner could add")
	assert.Equal(t, fault.NotOwner.Error(), err.Error(), "wrong error text")

	// readers may name any owner
	got, err := other.Get("guarded", fixtures.Owner1.Account())
	assert.Nil(t, err, "get error")
	assert.Equal(t, 0, len(got.Record.Entries), "record was changed")
}

func TestReadOnlyClient(t *testing.T) {
	client, err := rpccalls.NewClient(listen, nil, false, nil)
	if nil != err {
		t.Fatalf("new client error: %s", err)
	}
	defer client.Close()

	_, err = client.Create("anonymous")
	assert.Equal(t, rpccalls.ErrRequiredIdentity, err, "unsigned create")

	_, err = client.Get("anonymous", nil)
	assert.Equal(t, rpccalls.ErrRequiredIdentity, err, "get without owner")

	_, err = client.List(address.Address{}, 0)
	assert.NotNil(t, err, "zero count accepted")
}
