// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/linktreed/counter"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/rpc/ratelimit"
	"github.com/bitmark-inc/linktreed/storage"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Chain   string
	Store   storage.Store
	counter *counter.Counter
}

// New - create the Node RPC service
func New(log *logger.L, store storage.Store, start time.Time, version string, chain string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Chain:   chain,
		Store:   store,
		counter: counter,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain   string      `json:"chain"`
	RPCs    uint64      `json:"rpcs"`
	Storage StorageInfo `json:"storage"`
	Version string      `json:"version"`
	Uptime  string      `json:"uptime"`
}

// StorageInfo - record storage totals
type StorageInfo struct {
	Records   uint64 `json:"records"`
	Allocated uint64 `json:"allocated"`
	Limit     uint64 `json:"limit"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	if nil == node.Store {
		return fault.DatabaseIsNotSet
	}

	reply.Chain = node.Chain
	reply.RPCs = node.counter.Uint64()
	reply.Storage = StorageInfo{
		Records:   node.Store.Regions(),
		Allocated: node.Store.Allocated(),
		Limit:     node.Store.Limit(),
	}
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
