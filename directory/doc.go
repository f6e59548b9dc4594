// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package directory - owner scoped records of links
//
// Every record lives in one storage region keyed by the address
// derived from its handle and owner.  A mutation loads the record,
// checks that the caller is the owner, changes a copy, resizes the
// region to the footprint of the new entry count and writes the packed
// copy back, all inside one storage transaction.  Any failure discards
// the transaction so the stored record is never partially changed.
//
// Mutations of the same address are serialised by a per-address lock;
// different addresses share no lock.
package directory
