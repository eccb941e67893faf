// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/address"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/instruction"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/metrics"
	"github.com/bitmark-inc/socialstore/space"
)

// Processor - the social program
type Processor struct {
	log *logger.L
}

// New - create a processor
func New() *Processor {
	return &Processor{
		log: logger.New("social"),
	}
}

// Process - decode one instruction and run it against the handles
func (p *Processor) Process(ctx ledger.Context, accounts []*ledger.AccountInfo, data []byte) (err error) {
	operation := "invalid"
	defer func() {
		metrics.Operation(operation, err)
		if nil != err {
			p.log.Debugf("%s: error: %s", operation, err)
		}
	}()

	item, err := instruction.Packed(data).Unpack()
	if nil != err {
		return err
	}
	operation = item.Tag().String()

	p.log.Debugf("%s: handles: %d", operation, len(accounts))

	switch i := item.(type) {
	case instruction.InitialiseUser:
		return p.initialiseUser(ctx, accounts, i.SeedType)
	case instruction.FollowUser:
		return p.followUser(ctx, accounts, i.Target)
	case instruction.UnfollowUser:
		return p.unfollowUser(ctx, accounts, i.Target)
	case instruction.QueryFollows:
		return p.queryFollows(ctx, accounts)
	case instruction.PostContent:
		return p.postContent(ctx, accounts, i.Content)
	case instruction.QueryPosts:
		return p.queryPosts(ctx, accounts)
	default:
		return fault.ErrInvalidInstruction
	}
}

// the first n handles, fails if fewer were supplied
func handles(accounts []*ledger.AccountInfo, n int) ([]*ledger.AccountInfo, error) {
	if len(accounts) < n {
		return nil, fault.ErrNotEnoughAccounts
	}
	return accounts[:n], nil
}

func requireSigner(owner *ledger.AccountInfo) error {
	if !owner.IsSigner {
		return fault.ErrMissingSigner
	}
	return nil
}

func requireSystem(system *ledger.AccountInfo) error {
	if ledger.SystemProgram != system.Address {
		return fault.ErrIncorrectProgram
	}
	return nil
}

// slot must hold data written by this program
func requireOwned(ctx ledger.Context, slot *ledger.AccountInfo) error {
	if ctx.ProgramID() != slot.Owner() {
		return fault.ErrIllegalOwner
	}
	return nil
}

// check a supplied slot against its derivation, then ownership
func requireSlot(ctx ledger.Context, owner account.Identity, slot *ledger.AccountInfo, tag string) error {
	authority, err := address.ForOwner(ctx.ProgramID(), owner, tag)
	if nil != err {
		return err
	}
	err = authority.Verify(slot.Address)
	if nil != err {
		return err
	}
	return requireOwned(ctx, slot)
}

// decode must copy what it keeps, the read view is closed on return
func readSlot(slot *ledger.AccountInfo, decode func(buffer []byte) error) error {
	ref, err := slot.BorrowData()
	if nil != err {
		return err
	}
	defer ref.Release()

	return decode(ref.Bytes())
}

// store a packed record, no read view may be open
func writeSlot(slot *ledger.AccountInfo, packed []byte) error {
	ref, err := slot.BorrowMutData()
	if nil != err {
		return err
	}
	defer ref.Release()

	return entity.WriteInto(ref.Bytes(), packed)
}

// a profile slot has the full pre-sized length; only the prefix given
// by its count header is decoded, strictly, so the header must agree
// with the vector that follows it
func readProfile(ctx ledger.Context, slot *ledger.AccountInfo) (*entity.UserProfile, error) {
	if space.Profile(space.MaxFollowers) != slot.DataLen() {
		return nil, fault.ErrMalformed
	}

	var profile *entity.UserProfile
	err := readSlot(slot, func(buffer []byte) error {
		length, err := entity.ProfileLength(buffer)
		if nil != err {
			return err
		}
		if length > len(buffer) {
			return fault.ErrTruncated
		}
		ctx.Logf("size: %d", length)
		profile, err = entity.UnpackUserProfile(buffer[:length], entity.Strict)
		return err
	})
	if nil != err {
		return nil, err
	}
	return profile, nil
}

func readCounter(slot *ledger.AccountInfo) (*entity.PostCounter, error) {
	if space.PostCounterSize != slot.DataLen() {
		return nil, fault.ErrMalformed
	}

	var counter *entity.PostCounter
	err := readSlot(slot, func(buffer []byte) error {
		var err error
		counter, err = entity.UnpackPostCounter(buffer, entity.Strict)
		return err
	})
	if nil != err {
		return nil, err
	}
	return counter, nil
}
