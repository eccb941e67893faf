// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/address"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/space"
)

// Program - code that owns and modifies slots
type Program interface {
	Process(ctx Context, accounts []*AccountInfo, data []byte) error
}

// Context - host services available while a program runs
type Context interface {
	ProgramID() account.Identity
	Rent() Rent
	UnixTimestamp() int64
	Logf(format string, arguments ...interface{})
	SetReturnData(data []byte)
	CreateAccount(payer *AccountInfo, slot *AccountInfo, lamports uint64, length int, signerSeeds [][]byte) error
}

// one program run
type invocation struct {
	log        *logger.L
	program    account.Identity
	rent       Rent
	timestamp  int64
	logs       []string
	returnData []byte
	allocated  uint64
}

func (inv *invocation) ProgramID() account.Identity {
	return inv.program
}

func (inv *invocation) Rent() Rent {
	return inv.rent
}

func (inv *invocation) UnixTimestamp() int64 {
	return inv.timestamp
}

func (inv *invocation) Logf(format string, arguments ...interface{}) {
	s := fmt.Sprintf(format, arguments...)
	inv.logs = append(inv.logs, s)
	inv.log.Debugf("program %s: %s", inv.program, s)
}

func (inv *invocation) SetReturnData(data []byte) {
	inv.returnData = make([]byte, len(data))
	copy(inv.returnData, data)
}

// CreateAccount - system program create with a derived address as signer
//
// the slot address is re-derived from the seeds under the calling
// program and the new slot is owned by that program
func (inv *invocation) CreateAccount(payer *AccountInfo, slot *AccountInfo, lamports uint64, length int, signerSeeds [][]byte) error {

	derived, err := address.Create(inv.program, signerSeeds...)
	if fault.ErrInvalidSeeds == err {
		return fault.ErrAuthorityMismatch
	} else if nil != err {
		return err
	}
	if derived != slot.Address {
		return fault.ErrAuthorityMismatch
	}
	if !payer.IsSigner {
		return fault.ErrMissingSigner
	}
	if !payer.IsWritable || !slot.IsWritable {
		return fault.ErrReadonlyModified
	}
	if length > space.MaxCreateLength {
		return fault.ErrSlotTooLarge
	}
	if payer == slot {
		return fault.ErrAlreadyAllocated
	}
	if payer.borrowed() || slot.borrowed() {
		return fault.ErrAlreadyBorrowed
	}

	payer.Lock()
	defer payer.Unlock()
	slot.Lock()
	defer slot.Unlock()

	current := Account{Lamports: slot.lamports, Owner: slot.owner, Data: slot.data}
	if current.IsAllocated() {
		return fault.ErrAlreadyAllocated
	}
	if payer.lamports < lamports {
		return fault.ErrInsufficientBalance
	}

	payer.lamports -= lamports
	slot.lamports = lamports
	slot.owner = inv.program
	slot.data = make([]byte, length)
	inv.allocated += lamports

	inv.log.Debugf("create: %s  lamports: %d  length: %d  payer: %s", slot.Address, lamports, length, payer.Address)
	return nil
}

// ProgramFunc - adapter to use a plain function as a Program
type ProgramFunc func(ctx Context, accounts []*AccountInfo, data []byte) error

// Process - call f
func (f ProgramFunc) Process(ctx Context, accounts []*AccountInfo, data []byte) error {
	return f(ctx, accounts, data)
}
