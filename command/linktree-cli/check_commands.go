// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/linktreed/account"
	"github.com/bitmark-inc/linktreed/chain"
	"github.com/bitmark-inc/linktreed/fault"
)

var (
	ErrRequiredHandle   = fault.InvalidError("handle is required")
	ErrRequiredIds      = fault.InvalidError("at least one link id is required")
	ErrRequiredUrl      = fault.InvalidError("at least one url is required")
	ErrInvalidLinkId    = fault.InvalidError("link id must be a non-negative integer")
	ErrUnsupportedChain = fault.InvalidError("network can only be live/testing/local")
)

// handle is required
func checkHandle(handle string) (string, error) {
	if "" == handle {
		return "", ErrRequiredHandle
	}
	return handle, nil
}

func checkNetwork(network string) (string, error) {
	switch strings.ToLower(network) {
	case "live", "production":
		return chain.Live, nil
	case "testing", "test":
		return chain.Testing, nil
	case "local":
		return chain.Local, nil
	default:
		return "", ErrUnsupportedChain
	}
}

// blank owner means the identity account
func checkOwner(owner string, testnet bool) (*account.Account, error) {
	if "" == owner {
		return nil, nil
	}

	a, err := account.AccountFromBase58(owner)
	if nil != err {
		return nil, err
	}
	if a.IsTesting() != testnet {
		return nil, fault.WrongNetworkForPublicKey
	}
	return a, nil
}

// at least one url, titles are padded to match
func checkLinks(urls []string, titles []string) ([]string, []string, error) {
	if 0 == len(urls) {
		return nil, nil, ErrRequiredUrl
	}
	if len(titles) > len(urls) {
		return nil, nil, fault.UrlTitleCountMismatch
	}
	for len(titles) < len(urls) {
		titles = append(titles, "")
	}
	return urls, titles, nil
}

func checkIds(arguments []string) ([]uint64, error) {
	if 0 == len(arguments) {
		return nil, ErrRequiredIds
	}

	ids := make([]uint64, 0, len(arguments))
	for _, s := range arguments {
		id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
		if nil != err {
			return nil, ErrInvalidLinkId
		}
		ids = append(ids, id)
	}
	return ids, nil
}
