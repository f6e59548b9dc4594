// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/keypair"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var identity *keypair.Identity
	var privateKey *account.PrivateKey
	var err error
	if seed := c.String("seed"); "" != seed {
		identity, privateKey, err = keypair.FromSeed(seed)
	} else {
		identity, privateKey, err = keypair.Generate(m.testnet)
	}
	if nil != err {
		return err
	}
	if privateKey.IsTesting() != m.testnet {
		return fault.WrongNetworkForPublicKey
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity file: %q\n", m.identity)
	}

	err = keypair.Save(m.identity, identity)
	if nil != err {
		return err
	}

	// the seed stays in the file only
	return printJson(m.w, struct {
		File    string `json:"file"`
		Account string `json:"account"`
		Testnet bool   `json:"testnet"`
	}{
		File:    m.identity,
		Account: identity.Account,
		Testnet: m.testnet,
	})
}
