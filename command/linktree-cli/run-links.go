// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	handle, err := checkHandle(c.String("handle"))
	if nil != err {
		return err
	}
	owner, err := checkOwner(c.String("owner"), m.testnet)
	if nil != err {
		return err
	}
	urls, titles, err := checkLinks(c.StringSlice("url"), c.StringSlice("title"))
	if nil != err {
		return err
	}

	client, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.AddLinks(handle, owner, urls, titles)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runRemove(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	handle, err := checkHandle(c.String("handle"))
	if nil != err {
		return err
	}
	owner, err := checkOwner(c.String("owner"), m.testnet)
	if nil != err {
		return err
	}
	ids, err := checkIds(c.Args())
	if nil != err {
		return err
	}

	client, err := connectSigned(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.DeleteLinks(handle, owner, ids)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}
