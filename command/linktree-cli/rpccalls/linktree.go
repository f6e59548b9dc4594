// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/address"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/request"
	"github.com/bitmark-inc/linktreed/rpc/linktree"
)

// ErrRequiredIdentity - a mutating call was made without a signer
var ErrRequiredIdentity = fault.InvalidError("identity is required")

// Create - create a record owned by the client identity
func (client *Client) Create(handle string) (*linktree.RecordReply, error) {

	arguments, err := client.signed(&request.Create{
		Handle: handle,
	})
	if nil != err {
		return nil, err
	}

	var reply linktree.RecordReply
	if err := client.client.Call("Linktree.Create", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DeleteRecord - remove a record, owner defaults to the client identity
func (client *Client) DeleteRecord(handle string, owner *account.Account) (*linktree.DeleteRecordReply, error) {

	arguments, err := client.signed(&request.DeleteRecord{
		Handle: handle,
		Owner:  client.owner(owner),
	})
	if nil != err {
		return nil, err
	}

	var reply linktree.DeleteRecordReply
	if err := client.client.Call("Linktree.DeleteRecord", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// AddLinks - append links to a record
func (client *Client) AddLinks(handle string, owner *account.Account, urls []string, titles []string) (*linktree.AddLinksReply, error) {

	arguments, err := client.signed(&request.AddLinks{
		Handle: handle,
		Owner:  client.owner(owner),
		Urls:   urls,
		Titles: titles,
	})
	if nil != err {
		return nil, err
	}

	var reply linktree.AddLinksReply
	if err := client.client.Call("Linktree.AddLinks", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// DeleteLinks - remove links from a record by id
func (client *Client) DeleteLinks(handle string, owner *account.Account, ids []uint64) (*linktree.DeleteLinksReply, error) {

	arguments, err := client.signed(&request.DeleteLinks{
		Handle: handle,
		Owner:  client.owner(owner),
		Ids:    ids,
	})
	if nil != err {
		return nil, err
	}

	var reply linktree.DeleteLinksReply
	if err := client.client.Call("Linktree.DeleteLinks", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Get - fetch one record
func (client *Client) Get(handle string, owner *account.Account) (*linktree.RecordReply, error) {

	owner = client.owner(owner)
	if nil == owner {
		return nil, ErrRequiredIdentity
	}

	arguments := &linktree.GetArguments{
		Handle: handle,
		Owner:  owner,
	}

	var reply linktree.RecordReply
	if err := client.client.Call("Linktree.Get", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// List - one page of records starting at an address
func (client *Client) List(start address.Address, count int) (*linktree.ListReply, error) {

	arguments := &linktree.ListArguments{
		Start: start,
		Count: count,
	}

	var reply linktree.ListReply
	if err := client.client.Call("Linktree.List", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func (client *Client) signed(r request.Request) (*linktree.SignedArguments, error) {
	packed, err := client.sign(r)
	if nil != err {
		return nil, err
	}
	return &linktree.SignedArguments{Request: packed}, nil
}

// explicit owner or the client identity
func (client *Client) owner(owner *account.Account) *account.Account {
	if nil != owner {
		return owner
	}
	if nil == client.signer {
		return nil
	}
	return client.signer.Account()
}
