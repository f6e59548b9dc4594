// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package linktree

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/address"
	"github.com/bitmark-inc/linktreed/directory"
	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/linktreed/record"
	"github.com/bitmark-inc/linktreed/request"
	"github.com/bitmark-inc/linktreed/rpc/ratelimit"
	"github.com/bitmark-inc/logger"
)

const (
	rateLimitLinktree = 200
	rateBurstLinktree = 100
)

// Linktree - type for RPC calls
type Linktree struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Directory *directory.Directory
	Checker   *request.Checker
	IsTesting bool
}

// New - create the Linktree RPC service
func New(log *logger.L, dir *directory.Directory, checker *request.Checker, isTesting bool) *Linktree {
	return &Linktree{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitLinktree, rateBurstLinktree),
		Directory: dir,
		Checker:   checker,
		IsTesting: isTesting,
	}
}

// SignedArguments - a hex encoded packed signed request
type SignedArguments struct {
	Request string `json:"request"`
}

// RecordReply - a record and its address
type RecordReply struct {
	Address address.Address `json:"address"`
	Record  *record.Record  `json:"record"`
}

// Create - create a record owned by the request signer
func (linktree *Linktree) Create(arguments *SignedArguments, reply *RecordReply) error {

	if err := ratelimit.Limit(linktree.Limiter); nil != err {
		return err
	}

	r, err := linktree.verify(arguments, request.CreateTag)
	if nil != err {
		return err
	}
	create := r.(*request.Create)

	linktree.Log.Infof("Linktree.Create: handle: %q  signer: %s", create.Handle, create.Signer)

	rec, err := linktree.Directory.Create(create.Handle, create.Signer)
	if nil != err {
		return err
	}

	reply.Address = address.Derive(rec.Handle, rec.Owner)
	reply.Record = rec
	return nil
}

// DeleteRecordReply - result of deleting a record
type DeleteRecordReply struct {
	Reclaimed int `json:"reclaimed"`
}

// DeleteRecord - remove a record and release its storage
func (linktree *Linktree) DeleteRecord(arguments *SignedArguments, reply *DeleteRecordReply) error {

	if err := ratelimit.Limit(linktree.Limiter); nil != err {
		return err
	}

	r, err := linktree.verify(arguments, request.DeleteRecordTag)
	if nil != err {
		return err
	}
	deleteRecord := r.(*request.DeleteRecord)

	linktree.Log.Infof("Linktree.DeleteRecord: handle: %q  owner: %s", deleteRecord.Handle, deleteRecord.Owner)

	size, err := linktree.Directory.DeleteRecord(deleteRecord.Handle, deleteRecord.Owner, deleteRecord.Signer)
	if nil != err {
		return err
	}

	reply.Reclaimed = size
	return nil
}

// AddLinksReply - the entries added
type AddLinksReply struct {
	Entries []record.Entry `json:"entries"`
}

// AddLinks - append links to a record
func (linktree *Linktree) AddLinks(arguments *SignedArguments, reply *AddLinksReply) error {

	if err := ratelimit.Limit(linktree.Limiter); nil != err {
		return err
	}

	r, err := linktree.verify(arguments, request.AddLinksTag)
	if nil != err {
		return err
	}
	addLinks := r.(*request.AddLinks)

	linktree.Log.Infof("Linktree.AddLinks: handle: %q  owner: %s  count: %d", addLinks.Handle, addLinks.Owner, len(addLinks.Urls))

	entries, err := linktree.Directory.AddEntries(addLinks.Handle, addLinks.Owner, addLinks.Signer, addLinks.Urls, addLinks.Titles)
	if nil != err {
		return err
	}

	reply.Entries = entries
	return nil
}

// DeleteLinksReply - number of links removed
type DeleteLinksReply struct {
	Deleted int `json:"deleted"`
}

// DeleteLinks - remove links from a record by id
func (linktree *Linktree) DeleteLinks(arguments *SignedArguments, reply *DeleteLinksReply) error {

	if err := ratelimit.Limit(linktree.Limiter); nil != err {
		return err
	}

	r, err := linktree.verify(arguments, request.DeleteLinksTag)
	if nil != err {
		return err
	}
	deleteLinks := r.(*request.DeleteLinks)

	linktree.Log.Infof("Linktree.DeleteLinks: handle: %q  owner: %s  ids: %v", deleteLinks.Handle, deleteLinks.Owner, deleteLinks.Ids)

	n, err := linktree.Directory.DeleteEntries(deleteLinks.Handle, deleteLinks.Owner, deleteLinks.Signer, deleteLinks.Ids)
	if nil != err {
		return err
	}

	reply.Deleted = n
	return nil
}

// GetArguments - identify a record
type GetArguments struct {
	Handle string           `json:"handle"`
	Owner  *account.Account `json:"owner"`
}

// Get - fetch one record
func (linktree *Linktree) Get(arguments *GetArguments, reply *RecordReply) error {

	if err := ratelimit.Limit(linktree.Limiter); nil != err {
		return err
	}

	if nil == arguments || nil == arguments.Owner || nil == arguments.Owner.AccountInterface {
		return fault.MissingParameters
	}
	if arguments.Owner.IsTesting() != linktree.IsTesting {
		return fault.WrongNetworkForPublicKey
	}

	linktree.Log.Infof("Linktree.Get: handle: %q  owner: %s", arguments.Handle, arguments.Owner)

	rec, err := linktree.Directory.Get(arguments.Handle, arguments.Owner)
	if nil != err {
		return err
	}

	reply.Address = address.Derive(rec.Handle, rec.Owner)
	reply.Record = rec
	return nil
}

// ListArguments - page through all records
type ListArguments struct {
	Start address.Address `json:"start"`
	Count int             `json:"count"`
}

// ListReply - one page of records
type ListReply struct {
	Records []directory.Listed `json:"records"`
	Next    *address.Address   `json:"next,omitempty"`
}

// List - records in address order
func (linktree *Linktree) List(arguments *ListArguments, reply *ListReply) error {

	if err := ratelimit.LimitN(linktree.Limiter, arguments.Count, directory.MaximumListCount); nil != err {
		return err
	}

	linktree.Log.Debugf("Linktree.List: start: %s  count: %d", arguments.Start, arguments.Count)

	records, next, err := linktree.Directory.List(arguments.Start, arguments.Count)
	if nil != err {
		return err
	}

	reply.Records = records
	reply.Next = next
	return nil
}

// decode, verify and check freshness of a signed request
func (linktree *Linktree) verify(arguments *SignedArguments, tag request.TagType) (request.Request, error) {
	if nil == arguments || "" == arguments.Request {
		return nil, fault.MissingParameters
	}

	packed, err := hex.DecodeString(arguments.Request)
	if nil != err {
		return nil, err
	}

	r, n, err := request.Packed(packed).Unpack(linktree.IsTesting)
	if nil != err {
		return nil, err
	}
	if n != len(packed) {
		return nil, fault.NotRequestPack
	}
	if !isTag(r, tag) {
		return nil, fault.UnknownRequestTag
	}

	if err := linktree.Checker.Check(r); nil != err {
		linktree.Log.Warnf("rejected request from: %s  error: %s", r.Authority().Signer, err)
		return nil, err
	}
	return r, nil
}

func isTag(r request.Request, tag request.TagType) bool {
	switch r.(type) {
	case *request.Create:
		return request.CreateTag == tag
	case *request.DeleteRecord:
		return request.DeleteRecordTag == tag
	case *request.AddLinks:
		return request.AddLinksTag == tag
	case *request.DeleteLinks:
		return request.DeleteLinksTag == tag
	default:
		return false
	}
}
