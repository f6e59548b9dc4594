// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/util"
)

// RecordTag - leading tag of a packed record
const RecordTag = 0x01

// Packed - byte form of a record
type Packed []byte

// Pack - convert a record to its packed form
//
// the record is validated so that the result always fits within
// Footprint(len(r.Entries))
func (r *Record) Pack() (Packed, error) {
	if nil == r.Owner || nil == r.Owner.AccountInterface {
		return nil, fault.NotPublicKey
	}
	if err := ValidateHandle(r.Handle); nil != err {
		return nil, err
	}
	if len(r.Entries) > MaxEntries {
		return nil, fault.TooManyEntries
	}

	buffer := make(Packed, 0, Footprint(len(r.Entries)))
	buffer = appendUint64(buffer, RecordTag)
	buffer = appendBytes(buffer, r.Owner.Bytes())
	buffer = appendString(buffer, r.Handle)
	buffer = appendUint64(buffer, r.EntryCounter)
	buffer = appendUint64(buffer, uint64(len(r.Entries)))

	for _, e := range r.Entries {
		if err := ValidateEntry(e.Title, e.Url); nil != err {
			return nil, err
		}
		buffer = appendUint64(buffer, e.Id)
		buffer = appendString(buffer, e.Title)
		buffer = appendString(buffer, e.Url)
		if e.Active {
			buffer = append(buffer, 0x01)
		} else {
			buffer = append(buffer, 0x00)
		}
	}
	return buffer, nil
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

// append bytes to a buffer
//
// the field is prefixed by Varint64(length)
func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

// append a Varint64 to buffer
func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}
