// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc_test

import (
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"math/rand"
	"net/rpc/jsonrpc"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/chain"
	"github.com/bitmark-inc/linktreed/directory"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/fixtures"
	"github.com/bitmark-inc/linktreed/request"
	"github.com/bitmark-inc/linktreed/rpc"
	"github.com/bitmark-inc/linktreed/rpc/certificate"
	"github.com/bitmark-inc/linktreed/rpc/linktree"
	"github.com/bitmark-inc/linktreed/rpc/listeners"
	"github.com/bitmark-inc/linktreed/rpc/node"
	"github.com/bitmark-inc/linktreed/storage"
)

func TestInitialiseAndServe(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	dir := fixtures.TempDirectory("rpc")
	certificateFile := path.Join(dir, "rpc.crt")
	keyFile := path.Join(dir, "rpc.key")
	err := certificate.Generate("test", certificateFile, keyFile, false, []string{"127.0.0.1"})
	if nil != err {
		t.Fatalf("generate certificate error: %s", err)
	}

	db, err := storage.Open(path.Join(dir, "db"), storage.ReadWrite, 0)
	if nil != err {
		t.Fatalf("storage open error: %s", err)
	}
	defer db.Close()

	listen := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	configuration := &listeners.RPCConfiguration{
		MaximumConnections: 5,
		Listen:             []string{listen},
		Certificate:        certificateFile,
		PrivateKey:         keyFile,
	}

	err = rpc.Initialise(configuration, directory.New(db), chain.Local, "test")
	assert.Nil(t, err, "wrong Initialise")
	defer rpc.Finalise()

	err = rpc.Initialise(configuration, directory.New(db), chain.Local, "test")
	assert.Equal(t, fault.AlreadyInitialised, err, "second Initialise")

	conn, err := tls.Dial("tcp", listen, &tls.Config{InsecureSkipVerify: true})
	if nil != err {
		t.Fatalf("dial error: %s", err)
	}
	client := jsonrpc.NewClient(conn)
	defer client.Close()

	packed, err := request.Sign(&request.Create{Handle: "alice"}, fixtures.Owner1, uint64(time.Now().Unix()))
	assert.Nil(t, err, "sign")

	var created linktree.RecordReply
	err = client.Call("Linktree.Create", &linktree.SignedArguments{Request: hex.EncodeToString(packed)}, &created)
	assert.Nil(t, err, "wrong Linktree.Create")
	assert.Equal(t, "alice", created.Record.Handle, "wrong handle")

	// errors arrive as their message text
	err = client.Call("Linktree.Create", &linktree.SignedArguments{Request: hex.EncodeToString(packed)}, &created)
	assert.NotNil(t, err, "replay accepted")
	assert.Equal(t, fault.RequestReplayed.Error(), err.Error(), "wrong error text")

	var info node.InfoReply
	err = client.Call("Node.Info", &node.InfoArguments{}, &info)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, chain.Local, info.Chain, "wrong chain")
	assert.Equal(t, uint64(1), info.Storage.Records, "wrong record count")
	assert.Equal(t, uint64(1), info.RPCs, "wrong connection count")
	assert.Equal(t, uint64(1), rpc.ConnectionCount(), "wrong global connection count")
}
