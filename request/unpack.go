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

// Unpack - turn a byte slice into a verified request
//
// the signature is checked against the signer in the request, so a
// successfully unpacked request is known to come from its signer
//
// returns:
//
//	pointer to the request
//	number of bytes used
//	error
func (packed Packed) Unpack(testnet bool) (r Request, n int, e error) {

	defer func() {
		if x := recover(); nil != x {
			e = fault.NotRequestPack
		}
	}()

	u := &unpacker{
		buffer:  packed,
		testnet: testnet,
	}

	tag, ok := u.uint64()
	if !ok {
		return nil, 0, fault.NotRequestPack
	}

	var envelope *Envelope

	switch TagType(tag) {

	case CreateTag:
		create := &Create{}
		create.Handle = u.string()
		envelope = &create.Envelope
		r = create

	case DeleteRecordTag:
		deleteRecord := &DeleteRecord{}
		deleteRecord.Handle = u.string()
		deleteRecord.Owner = u.account()
		envelope = &deleteRecord.Envelope
		r = deleteRecord

	case AddLinksTag:
		addLinks := &AddLinks{}
		addLinks.Handle = u.string()
		addLinks.Owner = u.account()
		count := u.count()
		addLinks.Urls = make([]string, 0, count)
		addLinks.Titles = make([]string, 0, count)
		for i := 0; i < count && nil == u.err; i += 1 {
			addLinks.Urls = append(addLinks.Urls, u.string())
			addLinks.Titles = append(addLinks.Titles, u.string())
		}
		envelope = &addLinks.Envelope
		r = addLinks

	case DeleteLinksTag:
		deleteLinks := &DeleteLinks{}
		deleteLinks.Handle = u.string()
		deleteLinks.Owner = u.account()
		count := u.count()
		deleteLinks.Ids = make([]uint64, 0, count)
		for i := 0; i < count && nil == u.err; i += 1 {
			id, ok := u.uint64()
			if !ok {
				break
			}
			deleteLinks.Ids = append(deleteLinks.Ids, id)
		}
		envelope = &deleteLinks.Envelope
		r = deleteLinks

	default:
		return nil, 0, fault.UnknownRequestTag
	}

	envelope.Signer = u.account()
	timestamp, ok := u.uint64()
	if !ok {
		u.fail(fault.NotRequestPack)
	}
	envelope.Timestamp = timestamp

	if nil != u.err {
		return nil, 0, u.err
	}

	// everything before the signature is the signed message
	message := packed[:u.n]

	signatureLength, signatureOffset := util.ClippedVarint64(packed[u.n:], 1, maxSignatureLength)
	if 0 == signatureOffset || u.n+signatureOffset+signatureLength > len(packed) {
		return nil, 0, fault.NotRequestPack
	}
	u.n += signatureOffset
	envelope.Signature = make(account.Signature, signatureLength)
	copy(envelope.Signature, packed[u.n:u.n+signatureLength])
	u.n += signatureLength

	if err := envelope.Signer.CheckSignature(message, envelope.Signature); nil != err {
		return nil, 0, err
	}

	return r, u.n, nil
}

// sequential field reader, the first failure sticks
type unpacker struct {
	buffer  []byte
	n       int
	testnet bool
	err     error
}

func (u *unpacker) fail(err error) {
	if nil == u.err {
		u.err = err
	}
}

func (u *unpacker) uint64() (uint64, bool) {
	if nil != u.err {
		return 0, false
	}
	value, count := util.FromVarint64(u.buffer[u.n:])
	if 0 == count {
		u.fail(fault.NotRequestPack)
		return 0, false
	}
	u.n += count
	return value, true
}

func (u *unpacker) count() int {
	if nil != u.err {
		return 0
	}
	value, count := util.ClippedVarint64(u.buffer[u.n:], 0, maxListLength)
	if 0 == count {
		u.fail(fault.NotRequestPack)
		return 0
	}
	u.n += count
	return value
}

func (u *unpacker) bytes(maximum int) []byte {
	if nil != u.err {
		return nil
	}
	length, count := util.ClippedVarint64(u.buffer[u.n:], 0, maximum)
	if 0 == count || u.n+count+length > len(u.buffer) {
		u.fail(fault.NotRequestPack)
		return nil
	}
	u.n += count
	data := make([]byte, length)
	copy(data, u.buffer[u.n:u.n+length])
	u.n += length
	return data
}

func (u *unpacker) string() string {
	return string(u.bytes(maxStringLength))
}

func (u *unpacker) account() *account.Account {
	data := u.bytes(maxAccountLength)
	if nil != u.err {
		return nil
	}
	a, err := account.AccountFromBytes(data)
	if nil != err {
		u.fail(err)
		return nil
	}
	if a.IsTesting() != u.testnet {
		u.fail(fault.WrongNetworkForPublicKey)
		return nil
	}
	return a
}
