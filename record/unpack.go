// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/util"
)

// Unpack - turn a packed record back into a record
//
// returns the number of bytes consumed; any zero padding following
// the record is not consumed
func (packed Packed) Unpack() (r *Record, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			r = nil
			n = 0
			e = fault.NotRecordPack
		}
	}()

	tag, n := util.FromVarint64(packed)
	if 0 == n || RecordTag != tag {
		return nil, 0, fault.NotRecordPack
	}

	// owner
	ownerLength, ownerOffset := util.ClippedVarint64(packed[n:], 1, 8192)
	if 0 == ownerOffset {
		return nil, 0, fault.NotRecordPack
	}
	n += ownerOffset
	if n+ownerLength > len(packed) {
		return nil, 0, fault.NotRecordPack
	}
	owner, err := account.AccountFromBytes(packed[n : n+ownerLength])
	if nil != err {
		return nil, 0, err
	}
	n += ownerLength

	// handle
	handle, handleOffset := unpackString(packed[n:], maxHandleBytes)
	if 0 == handleOffset {
		return nil, 0, fault.NotRecordPack
	}
	n += handleOffset

	// counter
	counter, counterLength := util.FromVarint64(packed[n:])
	if 0 == counterLength {
		return nil, 0, fault.NotRecordPack
	}
	n += counterLength

	// entries
	count, countLength := util.FromVarint64(packed[n:])
	if 0 == countLength || count > MaxEntries {
		return nil, 0, fault.NotRecordPack
	}
	n += countLength

	entries := make([]Entry, count)
	for i := range entries {
		id, idLength := util.FromVarint64(packed[n:])
		if 0 == idLength {
			return nil, 0, fault.NotRecordPack
		}
		n += idLength

		title, titleOffset := unpackString(packed[n:], maxTitleBytes)
		if 0 == titleOffset {
			return nil, 0, fault.NotRecordPack
		}
		n += titleOffset

		url, urlOffset := unpackString(packed[n:], maxUrlBytes)
		if 0 == urlOffset {
			return nil, 0, fault.NotRecordPack
		}
		n += urlOffset

		active := packed[n]
		if active > 0x01 {
			return nil, 0, fault.NotRecordPack
		}
		n += 1

		entries[i] = Entry{
			Id:     id,
			Title:  title,
			Url:    url,
			Active: 0x01 == active,
		}
	}

	r = &Record{
		Owner:        owner,
		Handle:       handle,
		EntryCounter: counter,
		Entries:      entries,
	}
	return r, n, nil
}

// read a Varint64 length prefixed string of at most maximum bytes
//
// returns the string and the total bytes used, zero count on error;
// an empty string still uses one byte
func unpackString(buffer []byte, maximum int) (string, int) {
	length, count := util.FromVarint64(buffer)
	if 0 == count || length > uint64(maximum) {
		return "", 0
	}
	end := count + int(length)
	if end > len(buffer) {
		return "", 0
	}
	return string(buffer[count:end]), end
}
