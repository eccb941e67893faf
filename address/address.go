// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"filippo.io/edwards25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
)

// host limits on the seeds used to derive an address
const (
	MaxSeeds      = 16
	MaxSeedLength = 32
)

const marker = "ProgramDerivedAddress"

// Create - derive the address for one explicit seed list
//
// the bump, if any, must already be the last seed
func Create(program account.Identity, seeds ...[]byte) (account.Identity, error) {
	if len(seeds) > MaxSeeds {
		return account.Identity{}, fault.ErrMaxSeedLengthExceeded
	}

	hasher := sha3.New256()
	for _, seed := range seeds {
		if len(seed) > MaxSeedLength {
			return account.Identity{}, fault.ErrMaxSeedLengthExceeded
		}
		hasher.Write(seed)
	}
	hasher.Write(program[:])
	hasher.Write([]byte(marker))

	var result account.Identity
	copy(result[:], hasher.Sum(nil))

	if IsOnCurve(result[:]) {
		return account.Identity{}, fault.ErrInvalidSeeds
	}
	return result, nil
}

// Find - search for the highest bump giving an address off the curve
func Find(program account.Identity, seeds ...[]byte) (account.Identity, byte, error) {

	// one slot is reserved for the bump
	if len(seeds) >= MaxSeeds {
		return account.Identity{}, 0, fault.ErrMaxSeedLengthExceeded
	}

	withBump := make([][]byte, len(seeds)+1)
	copy(withBump, seeds)

	for bump := 255; bump >= 0; bump -= 1 {
		withBump[len(seeds)] = []byte{byte(bump)}
		result, err := Create(program, withBump...)
		if nil == err {
			return result, byte(bump), nil
		}
		if fault.ErrInvalidSeeds != err {
			return account.Identity{}, 0, err
		}
	}
	return account.Identity{}, 0, fault.ErrAddressSpaceExhausted
}

// IsOnCurve - true if the bytes decode as an ed25519 point
func IsOnCurve(buffer []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(buffer)
	return nil == err
}
