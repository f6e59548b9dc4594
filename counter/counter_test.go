// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/bitmark-inc/linktreed/counter"
)

// test acquiring and releasing connection slots
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	if 0 != c1.Uint64() {
		t.Errorf("counter is not zero at start: %d", c1.Uint64())
	}

	for i := 0; i < 3; i += 1 {
		if !c1.Acquire(3) {
			t.Errorf("acquire: %d failed", i)
		}
	}

	if c1.Acquire(3) {
		t.Errorf("acquired beyond maximum: %d", c1.Uint64())
	}
	if 3 != c1.Uint64() {
		t.Errorf("counter is not 3 after failed acquire: %d", c1.Uint64())
	}

	c1.Release()
	if !c1.Acquire(3) {
		t.Errorf("acquire after release failed: %d", c1.Uint64())
	}
}

// concurrent acquires never exceed the maximum
func TestCounterConcurrent(t *testing.T) {

	var c1 counter.Counter
	var acquired counter.Counter

	var wg sync.WaitGroup
	for i := 0; i < 50; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c1.Acquire(10) {
				acquired.Acquire(100)
			}
		}()
	}
	wg.Wait()

	if 10 != acquired.Uint64() {
		t.Errorf("acquired: %d  expected: 10", acquired.Uint64())
	}
}
