// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runCreate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	handle, err := checkHandle(c.String("handle"))
	if nil != err {
		return err
	}

	client, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Create(handle)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runDelete(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	handle, err := checkHandle(c.String("handle"))
	if nil != err {
		return err
	}
	owner, err := checkOwner(c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	client, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DeleteRecord(handle, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	handle, err := checkHandle(c.String("handle"))
	if nil != err {
		return err
	}
	owner, err := checkOwner(c.String("owner"), m.testnet)
	if nil != err {
		return err
	}

	client, err := connectReader(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Get(handle, owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
