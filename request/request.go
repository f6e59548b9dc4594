// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package request - signed directory mutation requests
//
// Each request packs as Varint64(tag) followed by its fields, the
// signer account and a Varint64 unix timestamp.  The signature over
// all of those bytes is appended last.
package request

import (
	"github.com/bitmark-inc/linktreed/account"
)

// TagType - type code for requests
type TagType uint64

// enumerate the possible request types
const (
	NullTag         = TagType(iota)
	CreateTag       = TagType(iota)
	DeleteRecordTag = TagType(iota)
	AddLinksTag     = TagType(iota)
	DeleteLinksTag  = TagType(iota)
)

// limits on packed fields, content bounds are applied by the directory
const (
	maxStringLength    = 8192
	maxListLength      = 100
	maxAccountLength   = 64
	maxSignatureLength = 64
)

// Packed - packed request with signature
type Packed []byte

// Request - generic request interface
type Request interface {
	Pack() (Packed, error)
	Authority() *Envelope
}

// Envelope - signer identity and freshness common to all requests
type Envelope struct {
	Signer    *account.Account  `json:"signer"`
	Timestamp uint64            `json:"timestamp"`
	Signature account.Signature `json:"signature"`
}

// Authority - the envelope of a request
func (envelope *Envelope) Authority() *Envelope {
	return envelope
}

// Create - create an empty record owned by the signer
type Create struct {
	Handle string `json:"handle"`
	Envelope
}

// DeleteRecord - remove a whole record
type DeleteRecord struct {
	Handle string           `json:"handle"`
	Owner  *account.Account `json:"owner"`
	Envelope
}

// AddLinks - append entries to a record
type AddLinks struct {
	Handle string           `json:"handle"`
	Owner  *account.Account `json:"owner"`
	Urls   []string         `json:"urls"`
	Titles []string         `json:"titles"`
	Envelope
}

// DeleteLinks - remove entries from a record by id
type DeleteLinks struct {
	Handle string           `json:"handle"`
	Owner  *account.Account `json:"owner"`
	Ids    []uint64         `json:"ids"`
	Envelope
}

// Sign - fill in the envelope and sign a request
//
// returns the fully packed request
func Sign(r Request, privateKey *account.PrivateKey, timestamp uint64) (Packed, error) {
	envelope := r.Authority()
	envelope.Signer = privateKey.Account()
	envelope.Timestamp = timestamp
	envelope.Signature = nil

	message, err := r.Pack()
	if nil == message {
		return nil, err
	}

	envelope.Signature = privateKey.Sign(message)
	return r.Pack()
}
