// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package directory

import (
	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/address"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/record"
)

// maximum records returned by one List
const MaximumListCount = 100

// Get - fetch the record for a handle and owner
func (d *Directory) Get(handle string, owner *account.Account) (*record.Record, error) {
	return load(d.store, address.Derive(handle, owner))
}

// Listed - a record together with its address
type Listed struct {
	Address address.Address `json:"address"`
	Record  *record.Record  `json:"record"`
}

// List - records in address order starting at start
//
// next is nil when there are no more records
func (d *Directory) List(start address.Address, count int) ([]Listed, *address.Address, error) {
	if count <= 0 || count > MaximumListCount {
		return nil, nil, fault.InvalidCount
	}

	// one extra to find the next start
	elements, err := d.store.NewFetchCursor().Seek(start[:]).Fetch(count + 1)
	if nil != err {
		return nil, nil, err
	}

	var next *address.Address
	if len(elements) > count {
		a, err := address.FromBytes(elements[count].Key)
		if nil != err {
			return nil, nil, err
		}
		next = &a
		elements = elements[:count]
	}

	results := make([]Listed, 0, len(elements))
	for _, e := range elements {
		a, err := address.FromBytes(e.Key)
		if nil != err {
			return nil, nil, err
		}
		r, _, err := record.Packed(e.Value).Unpack()
		if nil != err {
			d.log.Errorf("list: %s  unpack error: %s", a, err)
			return nil, nil, fault.NotRecordPack
		}
		results = append(results, Listed{
			Address: a,
			Record:  r,
		})
	}
	return results, next, nil
}
