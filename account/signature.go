// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"github.com/bitmark-inc/socialstore/fault"
)

// SignatureSize - bytes in an ed25519 signature
const SignatureSize = 64

// Signature - an ed25519 signature, hex in text form
type Signature []byte

func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

func (signature Signature) GoString() string {
	return "<signature:" + hex.EncodeToString(signature) + ">"
}

// MarshalText - hex text
func (signature Signature) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(signature)))
	hex.Encode(b, signature)
	return b, nil
}

// UnmarshalText - hex text of exactly SignatureSize bytes
func (signature *Signature) UnmarshalText(s []byte) error {
	if hex.EncodedLen(SignatureSize) != len(s) {
		return fault.ErrInvalidSignature
	}
	b := make([]byte, SignatureSize)
	_, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*signature = b
	return nil
}
