// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"runtime"
	"time"

	"github.com/bitmark-inc/linktreed/rpc"
	"github.com/bitmark-inc/linktreed/storage"
	"github.com/bitmark-inc/logger"
)

const (
	statsDelay = 60 * time.Second
	mega       = 1048576
)

// statistics - periodically log storage and memory usage
type statistics struct {
	log   *logger.L
	store storage.Store
	delay time.Duration
}

func newStatistics(store storage.Store, delay time.Duration) *statistics {
	return &statistics{
		log:   logger.New("stats"),
		store: store,
		delay: delay,
	}
}

// Run - background process
func (s *statistics) Run(args interface{}, shutdown <-chan struct{}) {

	memory := false
	if b, ok := args.(bool); ok {
		memory = b
	}

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(s.delay):
			s.report(memory)
		}
	}
}

func (s *statistics) report(memory bool) {

	log := s.log

	log.Infof("records: %d  allocated: %d  limit: %d  rpc connections: %d",
		s.store.Regions(), s.store.Allocated(), s.store.Limit(), rpc.ConnectionCount())

	if !memory {
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	a := m.Alloc / mega
	t := m.TotalAlloc / mega
	v := m.Sys / mega
	log.Warnf("allocated: %d M  cumulative: %d M  OS virtual: %d M", a, t, v)
}
