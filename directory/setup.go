// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"sync"

	"github.com/bitmark-inc/linktreed/address"
	"github.com/bitmark-inc/linktreed/storage"
	"github.com/bitmark-inc/logger"
)

// Directory - record operations over a region store
type Directory struct {
	log   *logger.L
	store storage.Store
	locks addressLocks
}

// New - create a directory backed by a store
func New(store storage.Store) *Directory {
	return &Directory{
		log:   logger.New("directory"),
		store: store,
		locks: addressLocks{
			entries: make(map[address.Address]*addressLock),
		},
	}
}

// Store - the underlying region store
func (d *Directory) Store() storage.Store {
	return d.store
}

type addressLock struct {
	sync.Mutex
	users int
}

// locks are created on demand and dropped when the last user releases
type addressLocks struct {
	sync.Mutex
	entries map[address.Address]*addressLock
}

// lock - acquire the lock for one address, returns the release function
func (l *addressLocks) lock(a address.Address) func() {
	l.Lock()
	entry, ok := l.entries[a]
	if !ok {
		entry = &addressLock{}
		l.entries[a] = entry
	}
	entry.users += 1
	l.Unlock()

	entry.Lock()

	return func() {
		entry.Unlock()

		l.Lock()
		entry.users -= 1
		if 0 == entry.users {
			delete(l.entries, a)
		}
		l.Unlock()
	}
}

// number of addresses currently locked or waited on
func (l *addressLocks) count() int {
	l.Lock()
	defer l.Unlock()
	return len(l.entries)
}
