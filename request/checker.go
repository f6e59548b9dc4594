// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"encoding/hex"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/linktreed/fault"
)

// DefaultWindow - maximum clock difference accepted for a request
const DefaultWindow = 5 * time.Minute

// Checker - rejects stale and replayed requests
type Checker struct {
	window time.Duration
	seen   *cache.Cache
	now    func() time.Time
}

// NewChecker - create a checker for a timestamp window
//
// signatures are remembered for twice the window, long enough that a
// replay is either still cached or its timestamp has expired
func NewChecker(window time.Duration) *Checker {
	return &Checker{
		window: window,
		seen:   cache.New(2*window, window),
		now:    time.Now,
	}
}

// Check - accept a request at most once within the window
func (c *Checker) Check(r Request) error {
	envelope := r.Authority()

	now := c.now()
	timestamp := time.Unix(int64(envelope.Timestamp), 0)
	if timestamp.Before(now.Add(-c.window)) || timestamp.After(now.Add(c.window)) {
		return fault.RequestExpired
	}

	key := hex.EncodeToString(envelope.Signature)
	if err := c.seen.Add(key, struct{}{}, cache.DefaultExpiration); nil != err {
		return fault.RequestReplayed
	}
	return nil
}
