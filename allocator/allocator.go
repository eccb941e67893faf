// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package allocator - fund and create a derived slot
package allocator

import (
	"github.com/bitmark-inc/socialstore/address"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/ledger"
)

// Allocate - create slot with length zero bytes owned by the calling program
//
// the payer funds the minimum exempt balance; the authority's signer
// seeds prove the program may create at the slot address
func Allocate(ctx ledger.Context, payer *ledger.AccountInfo, slot *ledger.AccountInfo, length int, authority *address.Authority) error {
	if nil == authority {
		return fault.ErrAuthorityMismatch
	}
	err := authority.Verify(slot.Address)
	if nil != err {
		return err
	}
	if authority.Program != ctx.ProgramID() {
		return fault.ErrAuthorityMismatch
	}

	lamports := ctx.Rent().MinimumBalance(length)
	err = ctx.CreateAccount(payer, slot, lamports, length, authority.SignerSeeds())
	if nil != err {
		return err
	}

	ctx.Logf("allocated: %s  length: %d  lamports: %d", slot.Address, length, lamports)
	return nil
}
