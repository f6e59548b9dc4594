// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package address - deterministic storage location of a directory record
//
// The address is SHA3-256 over:
//
//	domain tag ++ Varint64(len(handle)) ++ handle ++ Varint64(len(owner)) ++ owner account bytes
//
// length prefixes keep (handle, owner) pairs from colliding by
// shifting bytes between the two fields
package address

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/util"
)

// Length - number of bytes in an address
const Length = 32

var domainTag = []byte("linktree")

// Address - storage key of a record
type Address [Length]byte

// Derive - compute the address for a handle owned by an account
func Derive(handle string, owner *account.Account) Address {
	ownerBytes := owner.Bytes()

	buffer := make([]byte, 0, len(domainTag)+2*util.Varint64MaximumBytes+len(handle)+len(ownerBytes))
	buffer = append(buffer, domainTag...)
	buffer = append(buffer, util.ToVarint64(uint64(len(handle)))...)
	buffer = append(buffer, handle...)
	buffer = append(buffer, util.ToVarint64(uint64(len(ownerBytes)))...)
	buffer = append(buffer, ownerBytes...)

	return Address(sha3.Sum256(buffer))
}

// FromBytes - convert a byte slice to an address
func FromBytes(buffer []byte) (Address, error) {
	a := Address{}
	if Length != len(buffer) {
		return a, fault.InvalidCursor
	}
	copy(a[:], buffer)
	return a, nil
}

// String - hex form for %s
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// GoString - tagged hex form for %#v
func (a Address) GoString() string {
	return "<address:" + hex.EncodeToString(a[:]) + ">"
}

// MarshalText - convert address to hex text
func (a Address) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(Length))
	hex.Encode(buffer, a[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to an address
func (a *Address) UnmarshalText(s []byte) error {
	if hex.EncodedLen(Length) != len(s) {
		return fault.InvalidCursor
	}
	_, err := hex.Decode(a[:], s)
	return err
}
