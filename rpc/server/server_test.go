// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"net"
	"net/rpc/jsonrpc"
	"os"
	"path"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/chain"
	"github.com/bitmark-inc/linktreed/counter"
	"github.com/bitmark-inc/linktreed/directory"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/fixtures"
	"github.com/bitmark-inc/linktreed/rpc/linktree"
	"github.com/bitmark-inc/linktreed/rpc/node"
	"github.com/bitmark-inc/linktreed/rpc/server"
	"github.com/bitmark-inc/linktreed/storage"
	"github.com/bitmark-inc/logger"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestCreate(t *testing.T) {
	db, err := storage.Open(path.Join(fixtures.TempDirectory("server"), "db"), storage.ReadWrite, 0)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	defer db.Close()

	var count counter.Counter
	s := server.Create(logger.New(fixtures.LogCategory), "v1.2.3", chain.Testing, directory.New(db), &count)

	serverConn, clientConn := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	client := jsonrpc.NewClient(clientConn)
	defer client.Close()

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "v1.2.3", info.Version, "wrong version")
	assert.Equal(t, chain.Testing, info.Chain, "wrong chain")

	// linktree service is registered and reached
	var reply linktree.RecordReply
	err = client.Call("Linktree.Get", &linktree.GetArguments{
		Handle: "missing",
		Owner:  fixtures.Owner1.Account(),
	}, &reply)
	assert.NotNil(t, err, "missing record found")
	assert.Equal(t, fault.RecordNotFound.Error(), err.Error(), "wrong error")

	// signed request check is active
	err = client.Call("Linktree.Create", &linktree.SignedArguments{Request: "00"}, &reply)
	assert.NotNil(t, err, "junk request accepted")
}
