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
	"github.com/bitmark-inc/linktreed/storage"
)

// Create - create an empty record owned by caller
func (d *Directory) Create(handle string, caller *account.Account) (*record.Record, error) {
	r, err := record.New(handle, caller)
	if nil != err {
		return nil, err
	}

	a := address.Derive(handle, caller)

	unlock := d.locks.lock(a)
	defer unlock()

	packed, err := r.Pack()
	if nil != err {
		return nil, err
	}

	trx := d.store.Begin()
	if err := trx.Allocate(a[:], record.Footprint(0)); nil != err {
		trx.Discard()
		return nil, err
	}
	if err := trx.Put(a[:], packed); nil != err {
		trx.Discard()
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		return nil, err
	}

	d.log.Infof("create: %s  handle: %q  owner: %s", a, handle, caller)
	return r, nil
}

// DeleteRecord - remove a record, returns the number of bytes reclaimed
func (d *Directory) DeleteRecord(handle string, owner *account.Account, caller *account.Account) (int, error) {
	a := address.Derive(handle, owner)

	unlock := d.locks.lock(a)
	defer unlock()

	trx := d.store.Begin()
	r, err := load(trx, a)
	if nil != err {
		trx.Discard()
		return 0, err
	}
	if err := Authorise(r, caller); nil != err {
		trx.Discard()
		d.log.Warnf("delete record: %s  rejected caller: %s", a, caller)
		return 0, err
	}

	size, err := trx.Delete(a[:])
	if nil != err {
		trx.Discard()
		return 0, err
	}
	if err := trx.Commit(); nil != err {
		return 0, err
	}

	d.log.Infof("delete record: %s  reclaimed: %d bytes", a, size)
	return size, nil
}

// AddEntries - append a batch of entries, all or nothing
//
// returns the new entries with their assigned ids
func (d *Directory) AddEntries(handle string, owner *account.Account, caller *account.Account, urls []string, titles []string) ([]record.Entry, error) {
	a := address.Derive(handle, owner)

	unlock := d.locks.lock(a)
	defer unlock()

	trx := d.store.Begin()
	r, err := load(trx, a)
	if nil != err {
		trx.Discard()
		return nil, err
	}
	if err := Authorise(r, caller); nil != err {
		trx.Discard()
		d.log.Warnf("add entries: %s  rejected caller: %s", a, caller)
		return nil, err
	}

	updated := r.Clone()
	added, err := updated.Append(urls, titles)
	if nil != err {
		trx.Discard()
		return nil, err
	}

	// grow first so the packed record fits
	if err := trx.Resize(a[:], record.Footprint(len(updated.Entries))); nil != err {
		trx.Discard()
		d.log.Errorf("add entries: %s  resize error: %s", a, err)
		return nil, err
	}
	if err := store(trx, a, updated); nil != err {
		trx.Discard()
		return nil, err
	}
	if err := trx.Commit(); nil != err {
		d.log.Errorf("add entries: %s  commit error: %s", a, err)
		return nil, err
	}

	d.log.Infof("add entries: %s  added: %d  total: %d", a, len(added), len(updated.Entries))
	return added, nil
}

// DeleteEntries - remove entries by id, returns the number removed
//
// unknown ids are ignored and a repeated id is only counted once
func (d *Directory) DeleteEntries(handle string, owner *account.Account, caller *account.Account, ids []uint64) (int, error) {
	a := address.Derive(handle, owner)

	unlock := d.locks.lock(a)
	defer unlock()

	trx := d.store.Begin()
	r, err := load(trx, a)
	if nil != err {
		trx.Discard()
		return 0, err
	}
	if err := Authorise(r, caller); nil != err {
		trx.Discard()
		d.log.Warnf("delete entries: %s  rejected caller: %s", a, caller)
		return 0, err
	}

	updated := r.Clone()
	n := updated.Remove(ids)

	// write the smaller record then release the excess space
	if err := store(trx, a, updated); nil != err {
		trx.Discard()
		return 0, err
	}
	if err := trx.Resize(a[:], record.Footprint(len(updated.Entries))); nil != err {
		trx.Discard()
		d.log.Errorf("delete entries: %s  resize error: %s", a, err)
		return 0, err
	}
	if err := trx.Commit(); nil != err {
		d.log.Errorf("delete entries: %s  commit error: %s", a, err)
		return 0, err
	}

	d.log.Infof("delete entries: %s  removed: %d  total: %d", a, n, len(updated.Entries))
	return n, nil
}

// read and decode the record at an address
func load(h storage.Handle, a address.Address) (*record.Record, error) {
	packed, err := h.Get(a[:])
	if nil != err {
		return nil, err
	}
	r, _, err := record.Packed(packed).Unpack()
	if nil != err {
		return nil, fault.NotRecordPack
	}
	return r, nil
}

func store(h storage.Handle, a address.Address, r *record.Record) error {
	packed, err := r.Pack()
	if nil != err {
		return err
	}
	return h.Put(a[:], packed)
}
