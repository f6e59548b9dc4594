// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package keypair - seed based signing identities stored as JSON files
package keypair

import (
	"encoding/hex"
	"encoding/json"
	"io/ioutil"
	"os"

	"github.com/google/renameio"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/util"
)

// Identity - text form of a seed and the account derived from it
type Identity struct {
	Seed      string `json:"seed"`
	Account   string `json:"account"`
	PublicKey string `json:"public_key"`
}

// Generate - create a new random seed and the identity for it
func Generate(test bool) (*Identity, *account.PrivateKey, error) {
	seed, err := account.NewBase58EncodedSeed(test)
	if nil != err {
		return nil, nil, err
	}
	return FromSeed(seed)
}

// FromSeed - derive the identity for an existing seed
func FromSeed(seed string) (*Identity, *account.PrivateKey, error) {

	privateKey, err := account.PrivateKeyFromBase58Seed(seed)
	if nil != err {
		return nil, nil, err
	}

	a := privateKey.Account()
	identity := &Identity{
		Seed:      seed,
		Account:   a.String(),
		PublicKey: hex.EncodeToString(a.PublicKeyBytes()),
	}
	return identity, privateKey, nil
}

// Save - write an identity file, never overwriting an existing one
//
// the file is written atomically so a partial seed is never left behind
func Save(fileName string, identity *Identity) error {

	if util.FileExists(fileName) {
		return fault.KeyFileAlreadyExists
	}

	data, err := json.MarshalIndent(identity, "", "  ")
	if nil != err {
		return err
	}

	return renameio.WriteFile(fileName, append(data, '\n'), 0600)
}

// Load - read an identity file and return its signing key
//
// the stored account must match the one derived from the seed
func Load(fileName string) (*account.PrivateKey, error) {

	data, err := ioutil.ReadFile(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.IdentityNotFound
		}
		return nil, err
	}

	var stored Identity
	err = json.Unmarshal(data, &stored)
	if nil != err {
		return nil, err
	}

	identity, privateKey, err := FromSeed(stored.Seed)
	if nil != err {
		return nil, err
	}

	if "" != stored.Account && stored.Account != identity.Account {
		return nil, fault.IdentityMismatch
	}
	return privateKey, nil
}
