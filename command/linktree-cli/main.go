// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/linktreed/chain"
)

type metadata struct {
	identity string
	connect  string
	testnet  bool
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp()
	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {

	app := cli.NewApp()
	app.Name = "linktree-cli"
	app.Usage = "manage link records on a linktreed"
	app.Version = version
	app.HideVersion = true
	app.Metadata = make(map[string]interface{})

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " linktreed `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:   "identity, i",
			Value:  "identity.json",
			Usage:  " identity `FILE` holding the signing seed",
			EnvVar: "LINKTREE_IDENTITY",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " linktreed `HOST:PORT`",
			EnvVar: "LINKTREE_CONNECT",
		},
	}

	handleFlag := cli.StringFlag{
		Name:  "handle, H",
		Value: "",
		Usage: "*record handle `NAME`",
	}
	ownerFlag := cli.StringFlag{
		Name:  "owner, o",
		Value: "",
		Usage: " record owner `ACCOUNT` [default: identity account]",
	}

	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new identity file",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "seed, s",
					Value: "",
					Usage: " use an existing `SEED`",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create an empty record owned by the identity",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{handleFlag},
			Action:    runCreate,
		},
		{
			Name:      "delete",
			Usage:     "delete a record and all of its links",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{handleFlag, ownerFlag},
			Action:    runDelete,
		},
		{
			Name:      "add",
			Usage:     "add links to a record",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				handleFlag,
				ownerFlag,
				cli.StringSliceFlag{
					Name:  "url, u",
					Usage: "*link `URL` (repeat for more links)",
				},
				cli.StringSliceFlag{
					Name:  "title, t",
					Usage: "*link `TITLE` (one per url)",
				},
			},
			Action: runAdd,
		},
		{
			Name:      "remove",
			Usage:     "remove links from a record",
			ArgsUsage: "ID...\n   (* = required)",
			Flags:     []cli.Flag{handleFlag, ownerFlag},
			Action:    runRemove,
		},
		{
			Name:      "show",
			Usage:     "display a record",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{handleFlag, ownerFlag},
			Action:    runShow,
		},
		{
			Name:      "list",
			Usage:     "list records in address order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "start, s",
					Value: "",
					Usage: " start at `ADDRESS` (hex)",
				},
				cli.IntFlag{
					Name:  "count, n",
					Value: 20,
					Usage: " maximum records `COUNT`",
				},
			},
			Action: runList,
		},
		{
			Name:      "info",
			Usage:     "display linktreed status",
			ArgsUsage: " ",
			Action:    runInfo,
		},
		{
			Name:   "version",
			Usage:  "display linktree-cli version",
			Action: runVersion,
		},
	}

	app.Before = func(c *cli.Context) error {

		network, err := checkNetwork(c.GlobalString("network"))
		if nil != err {
			return err
		}

		c.App.Metadata["config"] = &metadata{
			identity: os.ExpandEnv(c.GlobalString("identity")),
			connect:  c.GlobalString("connect"),
			testnet:  chain.IsTesting(network),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	return app
}
