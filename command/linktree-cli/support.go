// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/command/linktree-cli/rpccalls"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/keypair"
)

// connect using the identity file as signer
func connectSigned(m *metadata) (*rpccalls.Client, error) {

	privateKey, err := keypair.Load(m.identity)
	if nil != err {
		return nil, err
	}
	if privateKey.IsTesting() != m.testnet {
		return nil, fault.WrongNetworkForPublicKey
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", privateKey.Account())
	}
	return connect(m, privateKey)
}

// connect for read calls, the identity is optional
func connectReader(m *metadata) (*rpccalls.Client, error) {
	privateKey, err := keypair.Load(m.identity)
	if fault.IdentityNotFound == err {
		return connect(m, nil)
	}
	if nil != err {
		return nil, err
	}
	return connect(m, privateKey)
}

func connect(m *metadata, privateKey *account.PrivateKey) (*rpccalls.Client, error) {
	if m.verbose {
		fmt.Fprintf(m.e, "connect: %s\n", m.connect)
	}
	return rpccalls.NewClient(m.connect, privateKey, m.verbose, m.e)
}
