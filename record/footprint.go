// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"unicode/utf8"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/linktreed/util"
)

// maximum packed sizes, strings at utf8.UTFMax bytes per character
const (
	ownerBytes     = 1 + ed25519.PublicKeySize // key variant ++ public key
	maxHandleBytes = MaxHandleLength * utf8.UTFMax
	maxTitleBytes  = MaxTitleLength * utf8.UTFMax
	maxUrlBytes    = MaxUrlLength * utf8.UTFMax
)

// BaseFootprint - bytes reserved for the record header
var BaseFootprint = util.Varint64Length(RecordTag) +
	util.Varint64Length(ownerBytes) + ownerBytes +
	util.Varint64Length(maxHandleBytes) + maxHandleBytes +
	util.Varint64MaximumBytes + // entry counter
	util.Varint64Length(MaxEntries)

// EntryFootprint - bytes reserved for each entry
var EntryFootprint = util.Varint64MaximumBytes + // id
	util.Varint64Length(maxTitleBytes) + maxTitleBytes +
	util.Varint64Length(maxUrlBytes) + maxUrlBytes +
	1 // active

// Footprint - storage size required for a record with count entries
func Footprint(count int) int {
	if count < 0 {
		count = 0
	}
	return BaseFootprint + count*EntryFootprint
}

// MaximumFootprint - footprint of a full record
func MaximumFootprint() int {
	return Footprint(MaxEntries)
}
