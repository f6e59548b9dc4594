// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request

import (
	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/util"
)

// Pack - pack a Create request
//
// NOTE: returns the "unsigned" message on signature failure so that
// it can be signed
func (create *Create) Pack() (Packed, error) {
	message := util.ToVarint64(uint64(CreateTag))
	message = appendString(message, create.Handle)
	return create.seal(message)
}

// Pack - pack a DeleteRecord request
func (deleteRecord *DeleteRecord) Pack() (Packed, error) {
	if nil == deleteRecord.Owner || nil == deleteRecord.Owner.AccountInterface {
		return nil, fault.NotPublicKey
	}

	message := util.ToVarint64(uint64(DeleteRecordTag))
	message = appendString(message, deleteRecord.Handle)
	message = appendAccount(message, deleteRecord.Owner)
	return deleteRecord.seal(message)
}

// Pack - pack an AddLinks request
func (addLinks *AddLinks) Pack() (Packed, error) {
	if nil == addLinks.Owner || nil == addLinks.Owner.AccountInterface {
		return nil, fault.NotPublicKey
	}
	if len(addLinks.Urls) != len(addLinks.Titles) {
		return nil, fault.UrlTitleCountMismatch
	}
	if len(addLinks.Urls) > maxListLength {
		return nil, fault.TooManyEntries
	}

	message := util.ToVarint64(uint64(AddLinksTag))
	message = appendString(message, addLinks.Handle)
	message = appendAccount(message, addLinks.Owner)
	message = appendUint64(message, uint64(len(addLinks.Urls)))
	for i := range addLinks.Urls {
		message = appendString(message, addLinks.Urls[i])
		message = appendString(message, addLinks.Titles[i])
	}
	return addLinks.seal(message)
}

// Pack - pack a DeleteLinks request
func (deleteLinks *DeleteLinks) Pack() (Packed, error) {
	if nil == deleteLinks.Owner || nil == deleteLinks.Owner.AccountInterface {
		return nil, fault.NotPublicKey
	}
	if len(deleteLinks.Ids) > maxListLength {
		return nil, fault.TooManyEntries
	}

	message := util.ToVarint64(uint64(DeleteLinksTag))
	message = appendString(message, deleteLinks.Handle)
	message = appendAccount(message, deleteLinks.Owner)
	message = appendUint64(message, uint64(len(deleteLinks.Ids)))
	for _, id := range deleteLinks.Ids {
		message = appendUint64(message, id)
	}
	return deleteLinks.seal(message)
}

// append the signer and timestamp, then check and append the signature
func (envelope *Envelope) seal(message Packed) (Packed, error) {
	if len(envelope.Signature) > maxSignatureLength {
		return nil, fault.SignatureTooLong
	}
	if nil == envelope.Signer || nil == envelope.Signer.AccountInterface {
		return nil, fault.NotPublicKey
	}

	message = appendAccount(message, envelope.Signer)
	message = appendUint64(message, envelope.Timestamp)

	err := envelope.Signer.CheckSignature(message, envelope.Signature)
	if nil != err {
		return message, err
	}

	// Signature Last
	return appendBytes(message, envelope.Signature), nil
}

func appendString(buffer Packed, s string) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

func appendAccount(buffer Packed, a *account.Account) Packed {
	return appendBytes(buffer, a.Bytes())
}

func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}
