// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk directory store
//
// This maintains a LevelDB database of fixed size regions, one per
// record address.  A region is created by Allocate, overwritten by
// Put (zero padded to the region size), changed in size by Resize
// and removed by Delete.  All changes are staged in a Transaction
// and written as a single LevelDB batch on Commit.
//
// The total number of bytes allocated across all regions is kept in
// the database and may be bounded by a limit; any allocation or
// resize that would exceed the limit fails with fault.ResizeFailed.
//
// Notes:
// 1. each table has a single byte prefix
// 2. ++        = concatenation of byte data
// 3. address   = 32 byte SHA3-256 record address
// 4. count     = big endian uint64 (8 bytes)
//
// Regions:
//
//	R ++ address         - record region
//	                       data: packed record ++ zero padding
//
// Totals:
//
//	M ++ "allocated"     - total bytes in all regions
//	                       data: count
//	M ++ "regions"       - number of regions
//	                       data: count
//
// Version:
//
//	0x00 ++ "VERSION"    - database format version
//	                       data: count
package storage
