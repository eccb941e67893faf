// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/address"
	"github.com/bitmark-inc/socialstore/allocator"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/space"
)

// allocate a profile or post counter slot and write its empty value
func (p *Processor) initialiseUser(ctx ledger.Context, accounts []*ledger.AccountInfo, seedType string) error {
	h, err := handles(accounts, 3)
	if nil != err {
		return err
	}
	owner, slot, system := h[0], h[1], h[2]

	err = requireSigner(owner)
	if nil != err {
		return err
	}

	length, err := space.ForTag(seedType)
	if nil != err {
		return err
	}
	ctx.Logf("seed: %q", seedType)

	err = requireSystem(system)
	if nil != err {
		return err
	}

	authority, err := address.ForOwner(ctx.ProgramID(), owner.Address, seedType)
	if nil != err {
		return err
	}
	ctx.Logf("slot: %s  bump: %d", authority.Address, authority.Bump)

	err = allocator.Allocate(ctx, owner, slot, length, authority)
	if nil != err {
		return err
	}

	var packed []byte
	switch seedType {
	case space.ProfileTag:
		packed = entity.NewUserProfile().Pack()
	case space.PostTag:
		packed = (&entity.PostCounter{}).Pack()
	default:
		return fault.ErrInvalidTag
	}

	p.log.Infof("initialised: %s  owner: %s  seed: %s", slot.Address, owner.Address, seedType)
	return writeSlot(slot, packed)
}

// append a target to the owner's profile
func (p *Processor) followUser(ctx ledger.Context, accounts []*ledger.AccountInfo, target account.Identity) error {
	h, err := handles(accounts, 2)
	if nil != err {
		return err
	}
	owner, slot := h[0], h[1]

	err = requireSigner(owner)
	if nil != err {
		return err
	}
	err = requireSlot(ctx, owner.Address, slot, space.ProfileTag)
	if nil != err {
		return err
	}

	profile, err := readProfile(ctx, slot)
	if nil != err {
		return err
	}

	err = profile.Follow(target)
	if nil != err {
		return err
	}
	ctx.Logf("follow: %s  count: %d", target, profile.FollowedCount)

	return writeSlot(slot, profile.Pack())
}

// remove every occurrence of a target, an absent target changes nothing
func (p *Processor) unfollowUser(ctx ledger.Context, accounts []*ledger.AccountInfo, target account.Identity) error {
	h, err := handles(accounts, 2)
	if nil != err {
		return err
	}
	owner, slot := h[0], h[1]

	err = requireSigner(owner)
	if nil != err {
		return err
	}
	err = requireSlot(ctx, owner.Address, slot, space.ProfileTag)
	if nil != err {
		return err
	}

	profile, err := readProfile(ctx, slot)
	if nil != err {
		return err
	}

	if !profile.Followed.Contains(target) {
		ctx.Logf("unfollow: %s  not followed", target)
		return nil
	}
	removed := profile.Unfollow(target)
	ctx.Logf("unfollow: %s  removed: %d  count: %d", target, removed, profile.FollowedCount)

	return writeSlot(slot, profile.Pack())
}

func (p *Processor) queryFollows(ctx ledger.Context, accounts []*ledger.AccountInfo) error {
	h, err := handles(accounts, 1)
	if nil != err {
		return err
	}
	slot := h[0]

	err = requireOwned(ctx, slot)
	if nil != err {
		return err
	}

	profile, err := readProfile(ctx, slot)
	if nil != err {
		return err
	}

	ctx.Logf("followed: %d", profile.FollowedCount)
	ctx.SetReturnData(profile.Pack())
	return nil
}
