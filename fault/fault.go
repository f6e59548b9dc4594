// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type CapacityError GenericError
type ExistsError GenericError
type FieldError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PermissionError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	AlreadyInitialised           = ExistsError("already initialised")
	CannotDecodeAccount          = RecordError("cannot decode account")
	CertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ChecksumMismatch             = ProcessError("checksum mismatch")
	ConfigurationNotFound        = NotFoundError("configuration file not found")
	DatabaseIsNotSet             = ProcessError("database is not set")
	HandleTooLong                = FieldError("handle too long")
	IdentityMismatch             = InvalidError("identity account does not match seed")
	IdentityNotFound             = NotFoundError("identity not found")
	IncompatibleDatabaseVersion  = ProcessError("incompatible database version")
	InvalidChain                 = InvalidError("invalid chain")
	InvalidConfiguration         = InvalidError("configuration must return a table")
	InvalidCount                 = InvalidError("invalid count")
	InvalidCursor                = InvalidError("invalid cursor")
	InvalidHandle                = InvalidError("invalid handle")
	InvalidIpAddress             = InvalidError("invalid IP address")
	InvalidKeyLength             = InvalidError("invalid key length")
	InvalidKeyType               = InvalidError("invalid key type")
	InvalidSeedHeader            = InvalidError("invalid seed header")
	InvalidSeedLength            = InvalidError("invalid seed length")
	InvalidSignature             = PermissionError("invalid signature")
	InvalidTimestamp             = InvalidError("invalid timestamp")
	KeyFileAlreadyExists         = ExistsError("key file already exists")
	MissingParameters            = InvalidError("missing parameters")
	NotInitialised               = NotFoundError("not initialised")
	NotOwner                     = PermissionError("caller is not the record owner")
	NotPublicKey                 = RecordError("not public key")
	NotRecordPack                = RecordError("not a record pack")
	NotRequestPack               = RecordError("not a request pack")
	RateLimiting                 = InvalidError("rate limiting")
	RecordAlreadyExists          = ExistsError("record already exists")
	RecordNotFound               = NotFoundError("record not found")
	RequestExpired               = InvalidError("request timestamp outside allowed window")
	RequestReplayed              = InvalidError("request already processed")
	ResizeFailed                 = ProcessError("storage resize failed")
	SignatureTooLong             = LengthError("signature too long")
	TitleTooLong                 = FieldError("title too long")
	TooManyEntries               = CapacityError("too many entries")
	UnknownRequestTag            = RecordError("unknown request tag")
	UrlTitleCountMismatch        = LengthError("number of urls and titles must be same")
	UrlTooLong                   = FieldError("url too long")
	WrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface methods
func (e GenericError) Error() string    { return string(e) }
func (e CapacityError) Error() string   { return string(e) }
func (e ExistsError) Error() string     { return string(e) }
func (e FieldError) Error() string      { return string(e) }
func (e InvalidError) Error() string    { return string(e) }
func (e LengthError) Error() string     { return string(e) }
func (e NotFoundError) Error() string   { return string(e) }
func (e PermissionError) Error() string { return string(e) }
func (e ProcessError) Error() string    { return string(e) }
func (e RecordError) Error() string     { return string(e) }

// determine the class of an error
func IsErrCapacity(e error) bool   { _, ok := e.(CapacityError); return ok }
func IsErrExists(e error) bool     { _, ok := e.(ExistsError); return ok }
func IsErrField(e error) bool      { _, ok := e.(FieldError); return ok }
func IsErrInvalid(e error) bool    { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool     { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool   { _, ok := e.(NotFoundError); return ok }
func IsErrPermission(e error) bool { _, ok := e.(PermissionError); return ok }
func IsErrProcess(e error) bool    { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool     { _, ok := e.(RecordError); return ok }
