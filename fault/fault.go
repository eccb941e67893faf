// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorityError GenericError
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAddressSpaceExhausted  = ProcessError("no bump seed produces an address off the curve")
	ErrAlreadyAllocated       = ExistsError("address already allocated")
	ErrAlreadyBorrowed        = ProcessError("account data already borrowed")
	ErrAlreadyInitialised     = ExistsError("already initialised")
	ErrAlreadyProcessed       = ExistsError("transaction already processed")
	ErrAuthorityMismatch      = AuthorityError("supplied address does not match derived address")
	ErrCannotDecodeIdentity   = InvalidError("cannot decode identity")
	ErrCapacityExceeded       = LengthError("capacity exceeded")
	ErrChecksumMismatch       = InvalidError("checksum mismatch")
	ErrContentTooLong         = LengthError("content too long")
	ErrDatabaseIsNotSet       = ProcessError("database is not set")
	ErrExternalDataModified   = AuthorityError("data modified by a program that does not own the account")
	ErrIllegalOwner           = AuthorityError("account not owned by program")
	ErrIncorrectProgram       = InvalidError("incorrect program identity")
	ErrInsufficientBalance    = ProcessError("insufficient payer balance")
	ErrInvalidChain           = InvalidError("invalid chain")
	ErrInvalidConfiguration   = InvalidError("configuration file did not return a table")
	ErrInvalidCount           = InvalidError("invalid count")
	ErrInvalidCursor          = InvalidError("invalid cursor")
	ErrInvalidIdentityLength  = InvalidError("invalid identity length")
	ErrInvalidInstruction     = InvalidError("invalid instruction")
	ErrInvalidLoggerChannel   = InvalidError("invalid logger channel")
	ErrInvalidSeed            = InvalidError("invalid seed")
	ErrInvalidSeeds           = InvalidError("seeds produce an address on the curve")
	ErrInvalidSignature       = InvalidError("invalid signature")
	ErrInvalidStructPointer   = InvalidError("invalid struct pointer")
	ErrInvalidTag             = InvalidError("invalid seed type")
	ErrKeyLength              = InvalidError("key length is invalid")
	ErrLamportsNotConserved   = ProcessError("sum of account lamports changed")
	ErrMalformed              = RecordError("record is malformed")
	ErrMaxSeedLengthExceeded  = LengthError("seed length or count exceeded")
	ErrMissingSigner          = AuthorityError("missing required signature")
	ErrNotEnoughAccounts      = InvalidError("not enough account handles")
	ErrNotFoundIdentity       = NotFoundError("identity name not found")
	ErrNotInitialised         = NotFoundError("not initialised")
	ErrNotPublicKey           = InvalidError("not a public key")
	ErrProgramNotFound        = NotFoundError("program not found")
	ErrReadonlyModified       = AuthorityError("read-only account modified")
	ErrSlotNotFound           = NotFoundError("slot not found")
	ErrSlotTooLarge           = LengthError("slot length exceeds allocation limit")
	ErrTransactionInUse       = ProcessError("transaction already in use")
	ErrTruncated              = RecordError("record is truncated")
	ErrUnsupportedAirdrop     = InvalidError("airdrop only available on local and testing chains")
	ErrWrongNumberOfSignature = InvalidError("wrong number of signatures")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorityError) Error() string { return string(e) }
func (e ExistsError) Error() string    { return string(e) }
func (e InvalidError) Error() string   { return string(e) }
func (e LengthError) Error() string    { return string(e) }
func (e NotFoundError) Error() string  { return string(e) }
func (e ProcessError) Error() string   { return string(e) }
func (e RecordError) Error() string    { return string(e) }

// determine the class of an error
func IsErrAuthority(e error) bool { _, ok := e.(AuthorityError); return ok }
func IsErrExists(e error) bool    { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool   { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool    { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool  { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool   { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool    { _, ok := e.(RecordError); return ok }
