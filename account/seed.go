// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/util"
)

// seed layout: header(3) ++ network(1) ++ ed25519 seed(32) ++ checksum(4)
var seedHeader = []byte{0x5a, 0xfe, 0x02}

const (
	seedHeaderLength   = 3
	seedNetworkLength  = 1
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + seedNetworkLength + ed25519.SeedSize + seedChecksumLength
)

// NewBase58EncodedSeed - generate a new random seed
func NewBase58EncodedSeed(testnet bool) (string, error) {
	secret := make([]byte, ed25519.SeedSize)
	n, err := rand.Read(secret)
	if nil != err {
		return "", err
	}
	if ed25519.SeedSize != n {
		return "", fmt.Errorf("got: %d bytes, expected: %d bytes", n, ed25519.SeedSize)
	}

	net := byte(0x00)
	if testnet {
		net = 0x01
	}

	seed := make([]byte, 0, seedLength)
	seed = append(seed, seedHeader...)
	seed = append(seed, net)
	seed = append(seed, secret...)
	checksum := sha3.Sum256(seed)
	seed = append(seed, checksum[:seedChecksumLength]...)

	return util.ToBase58(seed), nil
}

// PrivateKeyFromBase58Seed - decode a seed and derive its private key
func PrivateKeyFromBase58Seed(seedBase58Encoded string) (*PrivateKey, error) {
	seed := util.FromBase58(seedBase58Encoded)
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}

	checksumStart := seedLength - seedChecksumLength
	digest := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(digest[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	secretStart := seedHeaderLength + seedNetworkLength
	privateKey := &PrivateKey{
		Test:       0x01 == seed[seedHeaderLength],
		PrivateKey: ed25519.NewKeyFromSeed(seed[secretStart:checksumStart]),
	}
	return privateKey, nil
}
