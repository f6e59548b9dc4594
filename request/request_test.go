// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package request_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/fixtures"
	"github.com/bitmark-inc/linktreed/request"
	"github.com/bitmark-inc/linktreed/util"
)

const timestamp = 1572000000

func TestSignAndUnpack(t *testing.T) {
	owner := fixtures.Owner1.Account()

	items := []request.Request{
		&request.Create{
			Handle: "alice",
		},
		&request.DeleteRecord{
			Handle: "alice",
			Owner:  owner,
		},
		&request.AddLinks{
			Handle: "alice",
			Owner:  owner,
			Urls:   []string{"https://a.example", "https://b.example"},
			Titles: []string{"a", "b"},
		},
		&request.DeleteLinks{
			Handle: "alice",
			Owner:  owner,
			Ids:    []uint64{0, 5, 300},
		},
	}

	for i, item := range items {
		packed, err := request.Sign(item, fixtures.Owner2, timestamp)
		if !assert.Nil(t, err, "%d: sign", i) {
			continue
		}

		r, n, err := packed.Unpack(true)
		if !assert.Nil(t, err, "%d: unpack", i) {
			continue
		}
		assert.Equal(t, len(packed), n, "%d: bytes used", i)
		assert.Equal(t, item, r, "%d: request differs", i)

		envelope := r.Authority()
		assert.True(t, fixtures.Owner2.Account().Equal(envelope.Signer), "%d: signer", i)
		assert.Equal(t, uint64(timestamp), envelope.Timestamp, "%d: timestamp", i)
	}
}

func TestUnsignedPack(t *testing.T) {
	create := &request.Create{
		Handle: "alice",
		Envelope: request.Envelope{
			Signer:    fixtures.Owner1.Account(),
			Timestamp: timestamp,
		},
	}
	message, err := create.Pack()
	assert.Equal(t, fault.InvalidSignature, err, "unsigned pack")
	assert.NotNil(t, message, "unsigned message missing")

	create.Signature = fixtures.Owner1.Sign(message)
	packed, err := create.Pack()
	assert.Nil(t, err, "signed pack")
	assert.Equal(t, []byte(message), []byte(packed[:len(message)]), "signature does not cover prefix")
}

func TestTamperedRequest(t *testing.T) {
	packed, err := request.Sign(&request.Create{Handle: "alice"}, fixtures.Owner1, timestamp)
	assert.Nil(t, err, "sign")

	// change one character of the handle
	tampered := make(request.Packed, len(packed))
	copy(tampered, packed)
	tampered[2] = 'b'

	_, _, err = tampered.Unpack(true)
	assert.Equal(t, fault.InvalidSignature, err, "tampered handle")

	// changed signature
	copy(tampered, packed)
	tampered[len(tampered)-1] ^= 0xff
	_, _, err = tampered.Unpack(true)
	assert.Equal(t, fault.InvalidSignature, err, "tampered signature")
}

func TestUnpackInvalid(t *testing.T) {
	packed, err := request.Sign(&request.Create{Handle: "alice"}, fixtures.Owner1, timestamp)
	assert.Nil(t, err, "sign")

	_, _, err = packed.Unpack(false)
	assert.Equal(t, fault.WrongNetworkForPublicKey, err, "wrong network")

	for i := 0; i < len(packed)-1; i += 1 {
		_, _, err := packed[:i].Unpack(true)
		assert.NotNil(t, err, "truncated to %d bytes", i)
	}

	_, _, err = request.Packed(util.ToVarint64(99)).Unpack(true)
	assert.Equal(t, fault.UnknownRequestTag, err, "unknown tag")

	_, _, err = request.Packed{}.Unpack(true)
	assert.Equal(t, fault.NotRequestPack, err, "empty")
}

func TestPackInvalid(t *testing.T) {
	_, err := request.Sign(&request.AddLinks{
		Handle: "alice",
		Owner:  fixtures.Owner1.Account(),
		Urls:   []string{"u1", "u2"},
		Titles: []string{"t1"},
	}, fixtures.Owner1, timestamp)
	assert.Equal(t, fault.UrlTitleCountMismatch, err, "mismatch")

	_, err = request.Sign(&request.DeleteRecord{Handle: "alice"}, fixtures.Owner1, timestamp)
	assert.Equal(t, fault.NotPublicKey, err, "missing owner")
}

func TestChecker(t *testing.T) {
	now := time.Now()
	c := request.NewChecker(request.DefaultWindow)

	fresh := &request.Create{Handle: "alice"}
	_, err := request.Sign(fresh, fixtures.Owner1, uint64(now.Unix()))
	assert.Nil(t, err, "sign fresh")

	assert.Nil(t, c.Check(fresh), "fresh request")
	assert.Equal(t, fault.RequestReplayed, c.Check(fresh), "replay")

	old := &request.Create{Handle: "alice"}
	_, err = request.Sign(old, fixtures.Owner1, uint64(now.Add(-6*time.Minute).Unix()))
	assert.Nil(t, err, "sign old")
	assert.Equal(t, fault.RequestExpired, c.Check(old), "old request")

	future := &request.Create{Handle: "alice"}
	_, err = request.Sign(future, fixtures.Owner1, uint64(now.Add(6*time.Minute).Unix()))
	assert.Nil(t, err, "sign future")
	assert.Equal(t, fault.RequestExpired, c.Check(future), "future request")

	edge := &request.Create{Handle: "bob"}
	_, err = request.Sign(edge, fixtures.Owner1, uint64(now.Add(-4*time.Minute).Unix()))
	assert.Nil(t, err, "sign edge")
	assert.Nil(t, c.Check(edge), "request inside window")
}
