// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the persisted per-owner directory record
//
// A record holds an owner, a handle, a monotonic entry counter and
// a bounded, ordered list of entries.  The packed form is:
//
//	Varint64(RecordTag)
//	Varint64(len(owner)) ++ owner account bytes
//	Varint64(len(handle)) ++ handle
//	Varint64(entry counter)
//	Varint64(entry count)
//	[ Varint64(id) ++ Varint64(len(title)) ++ title ++ Varint64(len(url)) ++ url ++ active ]
//
// Storage regions are sized by Footprint and may carry zero padding
// after the packed data.
package record

import (
	"unicode/utf8"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
)

// limits
const (
	MaxEntries      = 10
	MaxHandleLength = 20
	MaxTitleLength  = 50
	MaxUrlLength    = 200
)

// Entry - one link in a record
type Entry struct {
	Id     uint64 `json:"id"`
	Title  string `json:"title"`
	Url    string `json:"url"`
	Active bool   `json:"active"`
}

// Record - the directory record for one (handle, owner) pair
type Record struct {
	Owner        *account.Account `json:"owner"`
	Handle       string           `json:"handle"`
	EntryCounter uint64           `json:"entryCounter"`
	Entries      []Entry          `json:"entries"`
}

// New - an empty record
func New(handle string, owner *account.Account) (*Record, error) {
	if err := ValidateHandle(handle); nil != err {
		return nil, err
	}
	if nil == owner || nil == owner.AccountInterface {
		return nil, fault.NotPublicKey
	}
	r := &Record{
		Owner:        owner,
		Handle:       handle,
		EntryCounter: 0,
		Entries:      []Entry{},
	}
	return r, nil
}

// ValidateHandle - a handle is 1..MaxHandleLength characters of valid UTF-8
func ValidateHandle(handle string) error {
	if 0 == len(handle) || !utf8.ValidString(handle) {
		return fault.InvalidHandle
	}
	if utf8.RuneCountInString(handle) > MaxHandleLength {
		return fault.HandleTooLong
	}
	return nil
}

// ValidateEntry - check title and url bounds
func ValidateEntry(title string, url string) error {
	if !utf8.ValidString(title) || utf8.RuneCountInString(title) > MaxTitleLength {
		return fault.TitleTooLong
	}
	if !utf8.ValidString(url) || utf8.RuneCountInString(url) > MaxUrlLength {
		return fault.UrlTooLong
	}
	return nil
}

// Clone - deep copy so a mutation can be abandoned without trace
func (r *Record) Clone() *Record {
	entries := make([]Entry, len(r.Entries))
	copy(entries, r.Entries)
	return &Record{
		Owner:        r.Owner,
		Handle:       r.Handle,
		EntryCounter: r.EntryCounter,
		Entries:      entries,
	}
}

// Append - add entries in order assigning ids from the counter
//
// the whole batch is validated before the record is changed
func (r *Record) Append(urls []string, titles []string) ([]Entry, error) {
	if len(urls) != len(titles) {
		return nil, fault.UrlTitleCountMismatch
	}
	for i := range urls {
		if err := ValidateEntry(titles[i], urls[i]); nil != err {
			return nil, err
		}
	}
	if len(r.Entries)+len(urls) > MaxEntries {
		return nil, fault.TooManyEntries
	}

	added := make([]Entry, len(urls))
	for i := range urls {
		added[i] = Entry{
			Id:     r.EntryCounter,
			Title:  titles[i],
			Url:    urls[i],
			Active: true,
		}
		r.EntryCounter += 1
	}
	r.Entries = append(r.Entries, added...)
	return added, nil
}

// Remove - drop every entry whose id is listed, keeping order
//
// ids that are not present are ignored; returns the number removed
func (r *Record) Remove(ids []uint64) int {
	if 0 == len(ids) {
		return 0
	}
	remove := make(map[uint64]struct{}, len(ids))
	for _, id := range ids {
		remove[id] = struct{}{}
	}

	kept := make([]Entry, 0, len(r.Entries))
	for _, e := range r.Entries {
		if _, ok := remove[e.Id]; !ok {
			kept = append(kept, e)
		}
	}
	n := len(r.Entries) - len(kept)
	r.Entries = kept
	return n
}
