// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/linktreed/chain"
	"github.com/bitmark-inc/linktreed/counter"
	"github.com/bitmark-inc/linktreed/directory"
	"github.com/bitmark-inc/linktreed/request"
	"github.com/bitmark-inc/linktreed/rpc/linktree"
	"github.com/bitmark-inc/linktreed/rpc/node"
	"github.com/bitmark-inc/logger"
)

// Create - an RPC server with all services registered
func Create(log *logger.L, version string, chainName string, dir *directory.Directory, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()
	checker := request.NewChecker(request.DefaultWindow)

	server := rpc.NewServer()

	_ = server.Register(linktree.New(log, dir, checker, chain.IsTesting(chainName)))
	_ = server.Register(node.New(log, dir.Store(), start, version, chainName, rpcCount))

	return server
}
