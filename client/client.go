// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package client - build, sign and execute social instructions
package client

import (
	"time"
	"unicode/utf8"

	"github.com/samber/lo"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/address"
	"github.com/bitmark-inc/socialstore/counter"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/instruction"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/social"
	"github.com/bitmark-inc/socialstore/space"
)

// Executor - the ledger operations a client needs
type Executor interface {
	Execute(transaction *ledger.Transaction) (*ledger.Receipt, error)
	GetAccount(id account.Identity) (*ledger.Account, error)
}

// Social - client for one deployed social program
type Social struct {
	program  account.Identity
	executor Executor
	nonce    counter.Counter
}

// New - client for the program at an identity
func New(program account.Identity, executor Executor) *Social {
	return &Social{
		program:  program,
		executor: executor,
		nonce:    counter.Counter(time.Now().UnixNano()),
	}
}

// Program - identity of the program
func (s *Social) Program() account.Identity {
	return s.program
}

// ProfileAddress - slot holding an owner's follow list
func (s *Social) ProfileAddress(owner account.Identity) (account.Identity, error) {
	return s.derive(owner, space.ProfileTag)
}

// PostCounterAddress - slot holding an owner's post count
func (s *Social) PostCounterAddress(owner account.Identity) (account.Identity, error) {
	return s.derive(owner, space.PostTag)
}

// PostAddress - slot holding post number id
func (s *Social) PostAddress(owner account.Identity, id uint64) (account.Identity, error) {
	return s.derive(owner, space.PostTag, social.PostSequence(id))
}

func (s *Social) derive(owner account.Identity, tag string, extra ...[]byte) (account.Identity, error) {
	authority, err := address.ForOwner(s.program, owner, tag, extra...)
	if nil != err {
		return account.Identity{}, err
	}
	return authority.Address, nil
}

// InitialiseUser - allocate the profile or post counter slot of a user
func (s *Social) InitialiseUser(user ledger.Signer, seedType string) (*ledger.Receipt, error) {
	if _, err := space.ForTag(seedType); nil != err {
		return nil, err
	}
	slot, err := s.derive(user.Identity(), seedType)
	if nil != err {
		return nil, err
	}

	accounts := []ledger.AccountMeta{
		ledger.Writable(user.Identity(), true),
		ledger.Writable(slot, false),
		ledger.Readonly(ledger.SystemProgram),
	}
	return s.signed(user, accounts, instruction.InitialiseUser{SeedType: seedType})
}

// Follow - add a target to the user's profile
func (s *Social) Follow(user ledger.Signer, target account.Identity) (*ledger.Receipt, error) {
	accounts, err := s.profileHandles(user)
	if nil != err {
		return nil, err
	}
	return s.signed(user, accounts, instruction.FollowUser{Target: target})
}

// Unfollow - remove a target from the user's profile
func (s *Social) Unfollow(user ledger.Signer, target account.Identity) (*ledger.Receipt, error) {
	accounts, err := s.profileHandles(user)
	if nil != err {
		return nil, err
	}
	return s.signed(user, accounts, instruction.UnfollowUser{Target: target})
}

func (s *Social) profileHandles(user ledger.Signer) ([]ledger.AccountMeta, error) {
	profile, err := s.ProfileAddress(user.Identity())
	if nil != err {
		return nil, err
	}
	return []ledger.AccountMeta{
		ledger.ReadonlySigner(user.Identity()),
		ledger.Writable(profile, false),
	}, nil
}

// QueryFollows - current follow list of an owner
func (s *Social) QueryFollows(owner account.Identity) (*entity.UserProfile, *ledger.Receipt, error) {
	profile, err := s.ProfileAddress(owner)
	if nil != err {
		return nil, nil, err
	}

	receipt, err := s.unsigned([]ledger.AccountMeta{ledger.Readonly(profile)}, instruction.QueryFollows{})
	if nil != err {
		return nil, receipt, err
	}

	result, err := entity.UnpackUserProfile(receipt.ReturnData, entity.Strict)
	if nil != err {
		return nil, receipt, err
	}
	return result, receipt, nil
}

// Post - append content to the user's log, returns the post number
func (s *Social) Post(user ledger.Signer, content string) (uint64, *ledger.Receipt, error) {
	if len(content) > space.MaximumContentLength {
		return 0, nil, fault.ErrContentTooLong
	}
	if !utf8.ValidString(content) {
		return 0, nil, fault.ErrMalformed
	}

	count, err := s.PostCount(user.Identity())
	if nil != err {
		return 0, nil, err
	}
	next := count + 1

	counterSlot, err := s.PostCounterAddress(user.Identity())
	if nil != err {
		return 0, nil, err
	}
	postSlot, err := s.PostAddress(user.Identity(), next)
	if nil != err {
		return 0, nil, err
	}

	accounts := []ledger.AccountMeta{
		ledger.Writable(user.Identity(), true),
		ledger.Writable(counterSlot, false),
		ledger.Writable(postSlot, false),
		ledger.Readonly(ledger.SystemProgram),
	}
	receipt, err := s.signed(user, accounts, instruction.PostContent{Content: content})
	if nil != err {
		return 0, receipt, err
	}
	return next, receipt, nil
}

// PostCount - committed post count of an owner, read without a transaction
func (s *Social) PostCount(owner account.Identity) (uint64, error) {
	counterSlot, err := s.PostCounterAddress(owner)
	if nil != err {
		return 0, err
	}
	a, err := s.executor.GetAccount(counterSlot)
	if nil != err {
		return 0, err
	}
	if s.program != a.Owner {
		return 0, fault.ErrNotInitialised
	}
	c, err := entity.UnpackPostCounter(a.Data, entity.Strict)
	if nil != err {
		return 0, err
	}
	return c.PostCount, nil
}

// QueryPosts - post count and post number id of an owner
func (s *Social) QueryPosts(owner account.Identity, id uint64) (uint64, *entity.Post, *ledger.Receipt, error) {
	counterSlot, err := s.PostCounterAddress(owner)
	if nil != err {
		return 0, nil, nil, err
	}
	postSlot, err := s.PostAddress(owner, id)
	if nil != err {
		return 0, nil, nil, err
	}

	accounts := []ledger.AccountMeta{
		ledger.Readonly(counterSlot),
		ledger.Readonly(postSlot),
	}
	receipt, err := s.unsigned(accounts, instruction.QueryPosts{})
	if nil != err {
		return 0, nil, receipt, err
	}

	count, post, err := social.UnpackQueryPosts(receipt.ReturnData)
	if nil != err {
		return 0, nil, receipt, err
	}
	return count, post, receipt, nil
}

// AllPosts - every post of an owner, oldest first
//
// only the first 256 posts are addressable
func (s *Social) AllPosts(owner account.Identity) ([]*entity.Post, error) {
	count, err := s.PostCount(owner)
	if nil != err {
		return nil, err
	}
	if count > 256 {
		count = 256
	}

	posts := make([]*entity.Post, 0, count)
	for _, id := range lo.RangeFrom(uint64(1), int(count)) {
		_, post, _, err := s.QueryPosts(owner, id)
		if nil != err {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func (s *Social) signed(user ledger.Signer, accounts []ledger.AccountMeta, item instruction.Instruction) (*ledger.Receipt, error) {
	message := ledger.Message{
		Program:  s.program,
		Accounts: accounts,
		Data:     item.Pack(),
		Nonce:    s.nonce.Increment(),
	}
	transaction, err := ledger.Sign(message, user)
	if nil != err {
		return nil, err
	}
	return s.executor.Execute(transaction)
}

func (s *Social) unsigned(accounts []ledger.AccountMeta, item instruction.Instruction) (*ledger.Receipt, error) {
	message := ledger.Message{
		Program:  s.program,
		Accounts: accounts,
		Data:     item.Pack(),
	}
	return s.executor.Execute(&ledger.Transaction{Message: message})
}
