// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/util"
)

// IdentitySize - number of bytes in an identity
const IdentitySize = 32

// Identity - an opaque 32 byte public identifier
//
// used for payers, owners, programs and derived slot addresses
type Identity [IdentitySize]byte

// IdentityFromBytes - copy a byte slice into an identity
func IdentityFromBytes(buffer []byte) (Identity, error) {
	var identity Identity
	if IdentitySize != len(buffer) {
		return identity, fault.ErrInvalidIdentityLength
	}
	copy(identity[:], buffer)
	return identity, nil
}

// IdentityFromBase58 - convert a Base58 encoded string to an identity
func IdentityFromBase58(identityBase58Encoded string) (Identity, error) {
	var identity Identity

	decoded := util.FromBase58(identityBase58Encoded)
	if 0 == len(decoded) {
		return identity, fault.ErrCannotDecodeIdentity
	}
	if IdentitySize != len(decoded) {
		return identity, fault.ErrInvalidIdentityLength
	}
	copy(identity[:], decoded)
	return identity, nil
}

// Bytes - fetch the identity as a byte slice
func (identity Identity) Bytes() []byte {
	return identity[:]
}

// IsZero - true if all bytes are zero
func (identity Identity) IsZero() bool {
	return identity == Identity{}
}

// Equal - compare two identities
func (identity Identity) Equal(other Identity) bool {
	return bytes.Equal(identity[:], other[:])
}

// String - base58 encoding of the identity
func (identity Identity) String() string {
	return util.ToBase58(identity[:])
}

// GoString - for %#v
func (identity Identity) GoString() string {
	return "<identity:" + identity.String() + ">"
}

// MarshalText - convert an identity to its Base58 JSON form
func (identity Identity) MarshalText() ([]byte, error) {
	return []byte(identity.String()), nil
}

// UnmarshalText - convert Base58 JSON text to an identity
func (identity *Identity) UnmarshalText(s []byte) error {
	id, err := IdentityFromBase58(string(s))
	if nil != err {
		return err
	}
	*identity = id
	return nil
}

// CheckSignature - verify an ed25519 signature made by this identity
func (identity Identity) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(identity[:]), message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
