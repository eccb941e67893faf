// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package address

import (
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
)

// Authority - proof that the holder knows the inputs for a derived address
type Authority struct {
	Program account.Identity
	Address account.Identity
	Seeds   [][]byte
	Bump    byte
}

// ForOwner - derive the authority for an owner's slot
//
// seeds are: owner ++ tag ++ extra...
func ForOwner(program account.Identity, owner account.Identity, tag string, extra ...[]byte) (*Authority, error) {
	seeds := make([][]byte, 0, 2+len(extra))
	seeds = append(seeds, owner.Bytes(), []byte(tag))
	seeds = append(seeds, extra...)

	result, bump, err := Find(program, seeds...)
	if nil != err {
		return nil, err
	}

	return &Authority{
		Program: program,
		Address: result,
		Seeds:   seeds,
		Bump:    bump,
	}, nil
}

// SignerSeeds - the seeds with the bump appended
func (authority *Authority) SignerSeeds() [][]byte {
	signer := make([][]byte, len(authority.Seeds), len(authority.Seeds)+1)
	copy(signer, authority.Seeds)
	return append(signer, []byte{authority.Bump})
}

// Verify - check a caller supplied address against the derived one
func (authority *Authority) Verify(slot account.Identity) error {
	if authority.Address != slot {
		return fault.ErrAuthorityMismatch
	}
	return nil
}
