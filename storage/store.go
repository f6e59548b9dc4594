// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/linktreed/fault"
)

// Handle - region operations on a keyed store
type Handle interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) bool
	Allocate(key []byte, size int) error
	Put(key []byte, value []byte) error
	Resize(key []byte, size int) error
	Delete(key []byte) (int, error)
}

// Transaction - staged region operations, written atomically by Commit
type Transaction interface {
	Handle
	Commit() error
	Discard()
}

//go:generate mockgen -destination=mocks/storage.go -package=mocks github.com/bitmark-inc/linktreed/storage Store,Transaction

// Store - a region store
type Store interface {
	Handle
	Begin() Transaction
	Allocated() uint64
	Regions() uint64
	Limit() uint64
	SetLimit(uint64)
	NewFetchCursor() *FetchCursor
}

// Get - read a whole region
//
// returns a copy; fault.RecordNotFound if there is no region
func (d *Database) Get(key []byte) ([]byte, error) {
	return d.read(key)
}

// Has - check if a region exists
func (d *Database) Has(key []byte) bool {
	_, err := d.read(key)
	return nil == err
}

// Allocate - create a zero filled region
func (d *Database) Allocate(key []byte, size int) error {
	return d.single(func(trx Transaction) error {
		return trx.Allocate(key, size)
	})
}

// Put - overwrite the contents of a region
func (d *Database) Put(key []byte, value []byte) error {
	return d.single(func(trx Transaction) error {
		return trx.Put(key, value)
	})
}

// Resize - change the size of a region
func (d *Database) Resize(key []byte, size int) error {
	return d.single(func(trx Transaction) error {
		return trx.Resize(key, size)
	})
}

// Delete - remove a region, returning the bytes reclaimed
func (d *Database) Delete(key []byte) (int, error) {
	size := 0
	err := d.single(func(trx Transaction) error {
		var err error
		size, err = trx.Delete(key)
		return err
	})
	return size, err
}

// Allocated - total bytes in all regions
func (d *Database) Allocated() uint64 {
	d.RLock()
	defer d.RUnlock()
	return d.allocated
}

// Regions - number of regions
func (d *Database) Regions() uint64 {
	d.RLock()
	defer d.RUnlock()
	return d.regions
}

// Limit - maximum total allocation, zero is unlimited
func (d *Database) Limit() uint64 {
	d.RLock()
	defer d.RUnlock()
	return d.limit
}

// SetLimit - change the allocation limit
//
// existing regions are not affected, only later growth is checked
func (d *Database) SetLimit(limit uint64) {
	d.Lock()
	defer d.Unlock()
	d.log.Infof("allocation limit: %d -> %d", d.limit, limit)
	d.limit = limit
}

// run one operation in its own transaction
func (d *Database) single(f func(Transaction) error) error {
	trx := d.Begin()
	if err := f(trx); nil != err {
		trx.Discard()
		return err
	}
	return trx.Commit()
}

// read a region from the cache or the database
func (d *Database) read(key []byte) ([]byte, error) {
	prefixed := regionKey(key)

	if value, present, cached := d.cache.Get(string(prefixed)); cached {
		if !present {
			return nil, fault.RecordNotFound
		}
		return value, nil
	}

	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return nil, fault.DatabaseIsNotSet
	}
	value, err := d.db.Get(prefixed, nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.RecordNotFound
	}
	if nil != err {
		return nil, err
	}
	return value, nil
}

// would growing the total by delta exceed the limit
func (d *Database) exceeds(delta int64) bool {
	d.RLock()
	defer d.RUnlock()
	return exceedsLimit(d.allocated, d.limit, delta)
}

func exceedsLimit(allocated uint64, limit uint64, delta int64) bool {
	if 0 == limit || delta <= 0 {
		return false
	}
	return allocated+uint64(delta) > limit
}

// prepend the region prefix onto the key
func regionKey(key []byte) []byte {
	prefixed := make([]byte, 1, len(key)+1)
	prefixed[0] = regionPrefix
	return append(prefixed, key...)
}
