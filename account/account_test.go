// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
)

func makeKey(t *testing.T, testnet bool) *account.PrivateKey {
	seed, err := account.NewBase58EncodedSeed(testnet)
	if nil != err {
		t.Fatalf("new seed error: %s", err)
	}
	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		t.Fatalf("private key from seed error: %s", err)
	}
	return privateKey
}

func TestSeedRoundTrip(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(true)
	assert.Nil(t, err, "new seed")

	k1, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "first decode")
	k2, err := account.PrivateKeyFromBase58Seed(seed)
	assert.Nil(t, err, "second decode")

	assert.True(t, k1.IsTesting(), "network flag lost")
	assert.Equal(t, k1.PrivateKey, k2.PrivateKey, "seed is not deterministic")
	assert.True(t, k1.Account().Equal(k2.Account()), "accounts differ")
}

func TestSeedChecksum(t *testing.T) {
	seed, err := account.NewBase58EncodedSeed(false)
	assert.Nil(t, err, "new seed")

	// change one character but keep a valid base58 alphabet
	b := []byte(seed)
	if '2' == b[10] {
		b[10] = '3'
	} else {
		b[10] = '2'
	}
	_, err = account.PrivateKeyFromBase58Seed(string(b))
	assert.NotNil(t, err, "corrupt seed accepted")

	_, err = account.PrivateKeyFromBase58Seed("abc")
	assert.Equal(t, fault.InvalidSeedLength, err, "short seed")
}

func TestAccountBase58(t *testing.T) {
	for _, testnet := range []bool{false, true} {
		acc := makeKey(t, testnet).Account()
		s := acc.String()

		decoded, err := account.AccountFromBase58(s)
		assert.Nil(t, err, "decode: %s", s)
		assert.True(t, acc.Equal(decoded), "round trip mismatch")
		assert.Equal(t, testnet, decoded.IsTesting(), "network flag")
		assert.Equal(t, acc.Bytes(), decoded.Bytes(), "bytes")
	}
}

func TestAccountFromBytes(t *testing.T) {
	acc := makeKey(t, true).Account()

	decoded, err := account.AccountFromBytes(acc.Bytes())
	assert.Nil(t, err, "decode bytes")
	assert.True(t, acc.Equal(decoded), "round trip mismatch")

	_, err = account.AccountFromBytes(acc.Bytes()[:10])
	assert.Equal(t, fault.InvalidKeyLength, err, "truncated key")

	bad := acc.Bytes()
	bad[0] &^= 0x01
	_, err = account.AccountFromBytes(bad)
	assert.Equal(t, fault.NotPublicKey, err, "private key code")

	_, err = account.AccountFromBase58("")
	assert.Equal(t, fault.CannotDecodeAccount, err, "empty")
}

func TestAccountEqual(t *testing.T) {
	a := makeKey(t, true).Account()
	b := makeKey(t, true).Account()

	assert.True(t, a.Equal(a), "self")
	assert.False(t, a.Equal(b), "different keys")
	assert.False(t, a.Equal(nil), "nil")

	// same key on other network is a different identity
	other := &account.Account{
		AccountInterface: &account.ED25519Account{
			Test:      false,
			PublicKey: a.PublicKeyBytes(),
		},
	}
	assert.False(t, a.Equal(other), "network ignored")
}

func TestSignature(t *testing.T) {
	key := makeKey(t, true)
	message := []byte("create alice")

	signature := key.Sign(message)
	assert.Nil(t, key.Account().CheckSignature(message, signature), "valid signature")

	assert.Equal(t, fault.InvalidSignature, key.Account().CheckSignature([]byte("create bob"), signature), "wrong message")
	assert.Equal(t, fault.InvalidSignature, key.Account().CheckSignature(message, signature[:10]), "short signature")

	other := makeKey(t, true)
	assert.Equal(t, fault.InvalidSignature, other.Account().CheckSignature(message, signature), "wrong key")
}

func TestJSON(t *testing.T) {
	acc := makeKey(t, false).Account()
	signature := account.Signature{0x01, 0x02, 0xfe}

	data := struct {
		Owner     *account.Account  `json:"owner"`
		Signature account.Signature `json:"signature"`
	}{acc, signature}

	buffer, err := json.Marshal(data)
	assert.Nil(t, err, "marshal")

	var result struct {
		Owner     account.Account   `json:"owner"`
		Signature account.Signature `json:"signature"`
	}
	err = json.Unmarshal(buffer, &result)
	assert.Nil(t, err, "unmarshal")
	assert.True(t, acc.Equal(&result.Owner), "owner")
	assert.Equal(t, signature, result.Signature, "signature")
}
