// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/linktreed/fault"
)

// Element - a region key and its contents
type Element struct {
	Key   []byte
	Value []byte
}

// FetchCursor - cursor structure
type FetchCursor struct {
	database *Database
	maxRange util.Range
}

// NewFetchCursor - initialise a cursor to the start of the regions
func (d *Database) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		database: d,
		maxRange: util.Range{
			Start: []byte{regionPrefix},     // included in the range
			Limit: []byte{regionPrefix + 1}, // excluded from the range
		},
	}
}

// Seek - move cursor to specific key position
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.maxRange.Start = regionKey(key)
	return cursor
}

// Fetch - return some elements starting from the cursor
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.InvalidCursor
	}
	if count <= 0 {
		return nil, fault.InvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.iterate(func(key []byte, value []byte) bool {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		return len(results) < count
	})

	if n := len(results); n > 0 {
		// smallest key after the last one returned
		cursor.maxRange.Start = append(regionKey(results[n-1].Key), 0x00)
	}
	return results, err
}

// Map - run a function on all elements from the cursor onwards
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.InvalidCursor
	}

	var err error
	iterErr := cursor.iterate(func(key []byte, value []byte) bool {
		err = f(key, value)
		return nil == err
	})
	if nil == err {
		err = iterErr
	}
	return err
}

// call f with copies of each key and value until it returns false
func (cursor *FetchCursor) iterate(f func(key []byte, value []byte) bool) error {
	d := cursor.database
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		return fault.DatabaseIsNotSet
	}

	iter := d.db.NewIterator(&cursor.maxRange, nil)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !f(dataKey, dataValue) {
			break
		}
	}
	return iter.Error()
}
