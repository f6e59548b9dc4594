// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - client side of the linktreed JSON RPC
package rpccalls

import (
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/request"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	signer  *account.PrivateKey
	now     func() time.Time
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a linktreed
//
// signer may be nil when only read calls are made
func NewClient(connect string, signer *account.PrivateKey, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if nil != err {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		signer:  signer,
		now:     time.Now,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the linktreed connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// sign a request with the client identity and hex encode it
func (client *Client) sign(r request.Request) (string, error) {
	if nil == client.signer {
		return "", ErrRequiredIdentity
	}

	packed, err := request.Sign(r, client.signer, uint64(client.now().Unix()))
	if nil != err {
		return "", err
	}

	if client.verbose {
		fmt.Fprintf(client.handle, "signed request: %x\n", packed)
	}
	return fmt.Sprintf("%x", packed), nil
}
