// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/linktreed/fault"
)

// staged region, nil value means deleted
type staged struct {
	value []byte
}

type transaction struct {
	database *Database
	overlay  map[string]staged
	order    []string

	allocated int64 // change in total bytes
	regions   int64 // change in number of regions
	done      bool
}

// Begin - start a transaction
//
// nothing is visible to other readers until Commit
func (d *Database) Begin() Transaction {
	return &transaction{
		database: d,
		overlay:  make(map[string]staged),
	}
}

func (t *transaction) Get(key []byte) ([]byte, error) {
	if t.done {
		return nil, fault.NotInitialised
	}
	if s, ok := t.overlay[string(key)]; ok {
		if nil == s.value {
			return nil, fault.RecordNotFound
		}
		value := make([]byte, len(s.value))
		copy(value, s.value)
		return value, nil
	}
	return t.database.read(key)
}

func (t *transaction) Has(key []byte) bool {
	_, err := t.Get(key)
	return nil == err
}

func (t *transaction) Allocate(key []byte, size int) error {
	if t.database.readOnly {
		return fault.DatabaseIsNotSet
	}
	if size < 0 {
		return fault.ResizeFailed
	}
	if t.Has(key) {
		return fault.RecordAlreadyExists
	}
	if t.database.exceeds(t.allocated + int64(size)) {
		return fault.ResizeFailed
	}

	t.stage(key, make([]byte, size))
	t.allocated += int64(size)
	t.regions += 1
	return nil
}

func (t *transaction) Put(key []byte, value []byte) error {
	if t.database.readOnly {
		return fault.DatabaseIsNotSet
	}
	region, err := t.Get(key)
	if nil != err {
		return err
	}
	if len(value) > len(region) {
		return fault.ResizeFailed
	}

	copy(region, value)
	for i := len(value); i < len(region); i += 1 {
		region[i] = 0
	}
	t.stage(key, region)
	return nil
}

func (t *transaction) Resize(key []byte, size int) error {
	if t.database.readOnly {
		return fault.DatabaseIsNotSet
	}
	if size < 0 {
		return fault.ResizeFailed
	}
	region, err := t.Get(key)
	if nil != err {
		return err
	}

	delta := int64(size) - int64(len(region))
	if t.database.exceeds(t.allocated + delta) {
		return fault.ResizeFailed
	}

	resized := make([]byte, size)
	copy(resized, region)
	t.stage(key, resized)
	t.allocated += delta
	return nil
}

func (t *transaction) Delete(key []byte) (int, error) {
	if t.database.readOnly {
		return 0, fault.DatabaseIsNotSet
	}
	region, err := t.Get(key)
	if nil != err {
		return 0, err
	}

	t.stage(key, nil)
	t.allocated -= int64(len(region))
	t.regions -= 1
	return len(region), nil
}

// Commit - write all staged changes as one batch
//
// the limit is checked again against the current totals since other
// transactions may have committed since this one began
func (t *transaction) Commit() error {
	if t.done {
		return fault.NotInitialised
	}
	t.done = true

	d := t.database
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return fault.DatabaseIsNotSet
	}
	if 0 == len(t.order) {
		return nil
	}
	if exceedsLimit(d.allocated, d.limit, t.allocated) {
		return fault.ResizeFailed
	}

	allocated := uint64(int64(d.allocated) + t.allocated)
	regions := uint64(int64(d.regions) + t.regions)

	batch := new(leveldb.Batch)
	for _, k := range t.order {
		s := t.overlay[k]
		prefixed := regionKey([]byte(k))
		if nil == s.value {
			batch.Delete(prefixed)
		} else {
			batch.Put(prefixed, s.value)
		}
	}
	batch.Put(allocatedKey, uint64Bytes(allocated))
	batch.Put(regionsKey, uint64Bytes(regions))

	if err := d.db.Write(batch, nil); nil != err {
		d.log.Errorf("commit error: %s", err)
		return err
	}

	for _, k := range t.order {
		s := t.overlay[k]
		prefixed := string(regionKey([]byte(k)))
		if nil == s.value {
			d.cache.Set(dbDelete, prefixed, nil)
		} else {
			d.cache.Set(dbPut, prefixed, s.value)
		}
	}
	d.allocated = allocated
	d.regions = regions
	return nil
}

// Discard - drop all staged changes
func (t *transaction) Discard() {
	t.done = true
	t.overlay = nil
	t.order = nil
}

// record a staged value, remembering first-touch order
func (t *transaction) stage(key []byte, value []byte) {
	k := string(key)
	if _, ok := t.overlay[k]; !ok {
		t.order = append(t.order, k)
	}
	t.overlay[k] = staged{value: value}
}
