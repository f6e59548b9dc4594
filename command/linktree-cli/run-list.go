// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/linktreed/address"
)

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	start := address.Address{}
	if s := c.String("start"); "" != s {
		if err := start.UnmarshalText([]byte(s)); nil != err {
			return err
		}
	}

	client, err := connectReader(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.List(start, c.Int("count"))
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m, nil)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runVersion(c *cli.Context) error {
	fmt.Fprintf(c.App.Writer, "%s\n", version)
	return nil
}
