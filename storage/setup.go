// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/bitmark-inc/linktreed/fault"
	"github.com/bitmark-inc/logger"
)

// table prefixes
const (
	regionPrefix = 'R'
	metaPrefix   = 'M'
)

const currentVersion = 0x100

var (
	versionKey   = []byte{0x00, 'V', 'E', 'R', 'S', 'I', 'O', 'N'}
	allocatedKey = []byte{metaPrefix, 'a', 'l', 'l', 'o', 'c', 'a', 't', 'e', 'd'}
	regionsKey   = []byte{metaPrefix, 'r', 'e', 'g', 'i', 'o', 'n', 's'}
)

// pool access modes
const (
	ReadOnly  = true
	ReadWrite = false
)

// Database - a LevelDB region store
type Database struct {
	sync.RWMutex // protects totals and serialises commits

	log      *logger.L
	db       *leveldb.DB
	cache    Cache
	readOnly bool

	allocated uint64
	regions   uint64
	limit     uint64
}

// global instance for the daemon
var globalData struct {
	sync.Mutex
	database *Database
}

// Initialise - open the global database
//
// this must be called before Get
func Initialise(database string, readOnly bool, limit uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if nil != globalData.database {
		return fault.AlreadyInitialised
	}

	d, err := Open(database, readOnly, limit)
	if nil != err {
		return err
	}
	globalData.database = d
	return nil
}

// Get - the global database
func Get() *Database {
	globalData.Lock()
	defer globalData.Unlock()
	return globalData.database
}

// Finalise - close the global database
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if nil == globalData.database {
		return
	}
	globalData.database.Close()
	globalData.database = nil
}

// Open - open or create a database
//
// limit is the maximum total allocation in bytes, zero for no limit
func Open(database string, readOnly bool, limit uint64) (*Database, error) {
	log := logger.New("storage")

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: readOnly,
		ReadOnly:       readOnly,
	}

	db, err := leveldb.OpenFile(database, opt)
	if nil != err {
		log.Errorf("open: %q  error: %s", database, err)
		return nil, err
	}

	d := &Database{
		log:      log,
		db:       db,
		cache:    newCache(),
		readOnly: readOnly,
		limit:    limit,
	}

	version, err := d.getN(versionKey)
	if nil != err {
		db.Close()
		return nil, err
	}

	switch version {
	case currentVersion:
	case 0:
		if readOnly {
			db.Close()
			return nil, fault.IncompatibleDatabaseVersion
		}
		batch := new(leveldb.Batch)
		batch.Put(versionKey, uint64Bytes(currentVersion))
		batch.Put(allocatedKey, uint64Bytes(0))
		batch.Put(regionsKey, uint64Bytes(0))
		if err := db.Write(batch, nil); nil != err {
			db.Close()
			return nil, err
		}
	default:
		log.Criticalf("database version: %d  expected: %d", version, currentVersion)
		db.Close()
		return nil, fault.IncompatibleDatabaseVersion
	}

	if d.allocated, err = d.getN(allocatedKey); nil != err {
		db.Close()
		return nil, err
	}
	if d.regions, err = d.getN(regionsKey); nil != err {
		db.Close()
		return nil, err
	}

	log.Infof("opened: %q  regions: %d  allocated: %d  limit: %d", database, d.regions, d.allocated, limit)
	return d, nil
}

// Close - flush and close the database
func (d *Database) Close() {
	d.Lock()
	defer d.Unlock()

	if nil == d.db {
		return
	}
	if err := d.db.Close(); nil != err {
		d.log.Errorf("close error: %s", err)
	}
	d.db = nil
	d.cache.Clear()
	d.log.Info("closed")
	d.log.Flush()
}

// read a big endian uint64, zero if the key is missing
func (d *Database) getN(key []byte) (uint64, error) {
	buffer, err := d.db.Get(key, nil)
	if leveldb.ErrNotFound == err {
		return 0, nil
	}
	if nil != err {
		return 0, err
	}
	if len(buffer) < 8 {
		return 0, fault.DatabaseIsNotSet
	}
	return binary.BigEndian.Uint64(buffer[:8]), nil
}

func uint64Bytes(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
