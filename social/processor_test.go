// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/instruction"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/social"
	"github.com/bitmark-inc/socialstore/space"
)

func TestInitialiseProfile(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	user := f.user(fundedLamports)

	receipt, err := f.social.InitialiseUser(user, space.ProfileTag)
	require.Nil(t, err, "initialise error")
	assert.Equal(t, uint64(45476640), receipt.Allocated, "wrong rent")

	slot, err := f.l.GetAccount(f.profileAddress(user.Identity()))
	require.Nil(t, err, "get account error")
	assert.Equal(t, program, slot.Owner, "wrong owner")
	assert.Equal(t, 6406, len(slot.Data), "wrong length")
	assert.Equal(t, uint64(45476640), slot.Lamports, "wrong lamports")

	balance, err := f.l.Balance(user.Identity())
	require.Nil(t, err, "balance error")
	assert.Equal(t, fundedLamports-45476640, balance, "payer not charged")

	profile, _, err := f.social.QueryFollows(user.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, uint16(0), profile.FollowedCount, "count not zero")
	assert.Equal(t, 0, profile.Followed.Len(), "list not empty")
}

func TestInitialisePostCounter(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	user := f.user(fundedLamports)

	receipt, err := f.social.InitialiseUser(user, space.PostTag)
	require.Nil(t, err, "initialise error")
	assert.Equal(t, uint64(946560), receipt.Allocated, "wrong rent")

	count, err := f.social.PostCount(user.Identity())
	require.Nil(t, err, "post count error")
	assert.Equal(t, uint64(0), count, "count not zero")
}

func TestInitialiseTwice(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	user := f.user(fundedLamports)

	_, err := f.social.InitialiseUser(user, space.ProfileTag)
	require.Nil(t, err, "initialise error")

	before, _ := f.l.Balance(user.Identity())

	_, err = f.social.InitialiseUser(user, space.ProfileTag)
	assert.Equal(t, fault.ErrAlreadyAllocated, err, "second initialise accepted")

	after, _ := f.l.Balance(user.Identity())
	assert.Equal(t, before, after, "payer charged for failed initialise")
}

func TestInitialiseFailures(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	user := f.user(fundedLamports)
	id := user.Identity()
	profile := f.profileAddress(id)

	// client refuses an unknown tag before building a transaction
	_, err := f.social.InitialiseUser(user, "bogus")
	assert.Equal(t, fault.ErrInvalidTag, err, "client accepted bad tag")

	accounts := []ledger.AccountMeta{
		ledger.Writable(id, true),
		ledger.Writable(profile, false),
		ledger.Readonly(ledger.SystemProgram),
	}

	_, err = f.execute(user, accounts, instruction.InitialiseUser{SeedType: "bogus"})
	assert.Equal(t, fault.ErrInvalidTag, err, "processor accepted bad tag")

	_, err = f.execute(user, accounts[:2], instruction.InitialiseUser{SeedType: space.ProfileTag})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "short handle list accepted")

	wrongSystem := []ledger.AccountMeta{accounts[0], accounts[1], ledger.Readonly(program)}
	_, err = f.execute(user, wrongSystem, instruction.InitialiseUser{SeedType: space.ProfileTag})
	assert.Equal(t, fault.ErrIncorrectProgram, err, "wrong system handle accepted")

	wrongSlot := []ledger.AccountMeta{accounts[0], ledger.Writable(f.counterAddress(id), false), accounts[2]}
	_, err = f.execute(user, wrongSlot, instruction.InitialiseUser{SeedType: space.ProfileTag})
	assert.Equal(t, fault.ErrAuthorityMismatch, err, "wrong slot accepted")

	unsigned := []ledger.AccountMeta{ledger.Writable(id, false), accounts[1], accounts[2]}
	_, err = f.execute(nil, unsigned, instruction.InitialiseUser{SeedType: space.ProfileTag})
	assert.Equal(t, fault.ErrMissingSigner, err, "unsigned initialise accepted")

	poor := f.user(1000)
	_, err = f.social.InitialiseUser(poor, space.ProfileTag)
	assert.Equal(t, fault.ErrInsufficientBalance, err, "unfunded initialise accepted")

	slot, err := f.l.GetAccount(profile)
	require.Nil(t, err, "get account error")
	assert.False(t, slot.IsAllocated(), "failed initialise left a slot")
}

// follow B then C gives [B, C]
func TestFollow(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	b := account.Identity{0xbb}
	c := account.Identity{0xcc}

	_, err := f.social.Follow(a, b)
	require.Nil(t, err, "follow b error")
	_, err = f.social.Follow(a, c)
	require.Nil(t, err, "follow c error")

	profile, receipt, err := f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, uint16(2), profile.FollowedCount, "wrong count")
	assert.Equal(t, []account.Identity{b, c}, profile.Followed.Items(), "wrong order")
	assert.NotEmpty(t, receipt.Logs, "query produced no logs")

	// repeated follow is a plain append
	_, err = f.social.Follow(a, b)
	require.Nil(t, err, "follow b again error")
	profile, _, err = f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, []account.Identity{b, c, b}, profile.Followed.Items(), "duplicate not appended")
}

func TestUnfollow(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	b := account.Identity{0xbb}
	c := account.Identity{0xcc}

	for _, target := range []account.Identity{b, c, b} {
		_, err := f.social.Follow(a, target)
		require.Nil(t, err, "follow error")
	}

	_, err := f.social.Unfollow(a, b)
	require.Nil(t, err, "unfollow error")

	profile, _, err := f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, uint16(1), profile.FollowedCount, "wrong count")
	assert.Equal(t, []account.Identity{c}, profile.Followed.Items(), "all occurrences not removed")

	// absent target changes nothing
	receipt, err := f.social.Unfollow(a, b)
	assert.Nil(t, err, "idempotent unfollow error")
	assert.Contains(t, receipt.Logs, fmt.Sprintf("unfollow: %s  not followed", b), "absent target rewritten")

	again, _, err := f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, profile, again, "idempotent unfollow changed state")

	// shrinking then growing must not resurrect removed entries
	_, err = f.social.Follow(a, account.Identity{0xdd})
	require.Nil(t, err, "follow error")
	profile, _, err = f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, []account.Identity{c, {0xdd}}, profile.Followed.Items(), "wrong list after regrow")
}

func TestFollowCapacity(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()

	for i := 0; i < space.MaxFollowers; i += 1 {
		target := account.Identity{byte(i), byte(i >> 8), 0x01}
		_, err := f.social.Follow(a, target)
		require.Nil(t, err, "follow %d error", i)
	}

	_, err := f.social.Follow(a, account.Identity{0xff, 0xff, 0xff})
	assert.Equal(t, fault.ErrCapacityExceeded, err, "201st follow accepted")

	profile, _, err := f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, uint16(space.MaxFollowers), profile.FollowedCount, "wrong count")
	assert.Equal(t, account.Identity{199, 0, 0x01}, profile.Followed.Items()[199], "wrong last entry")

	slot, err := f.l.GetAccount(f.profileAddress(a.Identity()))
	require.Nil(t, err, "get account error")
	assert.Equal(t, space.Profile(space.MaxFollowers), len(slot.Data), "slot resized")
}

func TestFollowFailures(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	other := f.initialised()
	target := account.Identity{0xbb}

	profile := f.profileAddress(a.Identity())

	_, err := f.execute(a, []ledger.AccountMeta{ledger.ReadonlySigner(a.Identity())}, instruction.FollowUser{Target: target})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "short handle list accepted")

	unsigned := []ledger.AccountMeta{ledger.Readonly(a.Identity()), ledger.Writable(profile, false)}
	_, err = f.execute(nil, unsigned, instruction.FollowUser{Target: target})
	assert.Equal(t, fault.ErrMissingSigner, err, "unsigned follow accepted")

	foreign := []ledger.AccountMeta{ledger.ReadonlySigner(a.Identity()), ledger.Writable(f.profileAddress(other.Identity()), false)}
	_, err = f.execute(a, foreign, instruction.FollowUser{Target: target})
	assert.Equal(t, fault.ErrAuthorityMismatch, err, "other owner's profile accepted")
	_, err = f.execute(a, foreign, instruction.UnfollowUser{Target: target})
	assert.Equal(t, fault.ErrAuthorityMismatch, err, "other owner's profile accepted")

	readonly := []ledger.AccountMeta{ledger.ReadonlySigner(a.Identity()), ledger.Readonly(profile)}
	_, err = f.execute(a, readonly, instruction.FollowUser{Target: target})
	assert.Equal(t, fault.ErrReadonlyModified, err, "read-only profile written")

	// a signer without a profile slot
	stranger := f.user(fundedLamports)
	missing := []ledger.AccountMeta{ledger.ReadonlySigner(stranger.Identity()), ledger.Writable(f.profileAddress(stranger.Identity()), false)}
	_, err = f.execute(stranger, missing, instruction.FollowUser{Target: target})
	assert.Equal(t, fault.ErrIllegalOwner, err, "uninitialised profile accepted")

	result, _, err := f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, 0, result.Followed.Len(), "failed follow changed state")
}

func TestQueryFollowsNotOwned(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	user := f.user(fundedLamports)

	_, err := f.execute(nil, []ledger.AccountMeta{ledger.Readonly(user.Identity())}, instruction.QueryFollows{})
	assert.Equal(t, fault.ErrIllegalOwner, err, "system account decoded")

	_, err = f.execute(nil, nil, instruction.QueryFollows{})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "empty handle list accepted")
}

// post hello then world gives count 2 and ("world", t2)
func TestPost(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()

	id, _, err := f.social.Post(a, "hello")
	require.Nil(t, err, "post hello error")
	assert.Equal(t, uint64(1), id, "wrong first id")

	id, receipt, err := f.social.Post(a, "world")
	require.Nil(t, err, "post world error")
	assert.Equal(t, uint64(2), id, "wrong second id")
	assert.Equal(t, uint64(1009200), receipt.Allocated, "wrong post rent")

	count, post, _, err := f.social.QueryPosts(a.Identity(), 2)
	require.Nil(t, err, "query error")
	assert.Equal(t, uint64(2), count, "wrong count")
	assert.Equal(t, "world", post.Content, "wrong content")
	assert.Equal(t, uint64(receipt.Timestamp), post.Timestamp, "wrong timestamp")

	_, first, _, err := f.social.QueryPosts(a.Identity(), 1)
	require.Nil(t, err, "query error")
	assert.Equal(t, "hello", first.Content, "wrong content")
	assert.True(t, first.Timestamp < post.Timestamp, "timestamps not ordered")

	slot, err := f.l.GetAccount(f.postAddress(a.Identity(), 1))
	require.Nil(t, err, "get account error")
	assert.Equal(t, space.Post("hello"), len(slot.Data), "post slot not exact")

	posts, err := f.social.AllPosts(a.Identity())
	require.Nil(t, err, "all posts error")
	assert.Equal(t, []string{"hello", "world"}, []string{posts[0].Content, posts[1].Content}, "wrong post order")
}

func TestPostEmptyAndMaximum(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()

	_, _, err := f.social.Post(a, "")
	require.Nil(t, err, "empty post error")

	largest := strings.Repeat("x", space.MaximumContentLength)
	_, receipt, err := f.social.Post(a, largest)
	require.Nil(t, err, "maximum post error")
	assert.Equal(t, ledger.DefaultRent.MinimumBalance(space.MaxCreateLength), receipt.Allocated, "wrong rent")

	_, post, _, err := f.social.QueryPosts(a.Identity(), 2)
	require.Nil(t, err, "query error")
	assert.Equal(t, largest, post.Content, "content damaged")

	_, _, err = f.social.Post(a, largest+"x")
	assert.Equal(t, fault.ErrContentTooLong, err, "client accepted long content")

	id := a.Identity()
	accounts := []ledger.AccountMeta{
		ledger.Writable(id, true),
		ledger.Writable(f.counterAddress(id), false),
		ledger.Writable(f.postAddress(id, 3), false),
		ledger.Readonly(ledger.SystemProgram),
	}
	_, err = f.execute(a, accounts, instruction.PostContent{Content: largest + "x"})
	assert.Equal(t, fault.ErrContentTooLong, err, "processor accepted long content")

	count, err := f.social.PostCount(id)
	require.Nil(t, err, "post count error")
	assert.Equal(t, uint64(2), count, "failed post counted")
}

func TestPostFailures(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	id := a.Identity()

	accounts := []ledger.AccountMeta{
		ledger.Writable(id, true),
		ledger.Writable(f.counterAddress(id), false),
		ledger.Writable(f.postAddress(id, 2), false),
		ledger.Readonly(ledger.SystemProgram),
	}

	_, err := f.execute(a, accounts, instruction.PostContent{Content: "skip"})
	assert.Equal(t, fault.ErrAuthorityMismatch, err, "wrong post slot accepted")

	_, err = f.execute(a, accounts[:3], instruction.PostContent{Content: "short"})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "short handle list accepted")

	swapped := []ledger.AccountMeta{accounts[0], ledger.Writable(f.profileAddress(id), false), accounts[2], accounts[3]}
	_, err = f.execute(a, swapped, instruction.PostContent{Content: "swapped"})
	assert.Equal(t, fault.ErrAuthorityMismatch, err, "profile accepted as counter")

	count, err := f.social.PostCount(id)
	require.Nil(t, err, "post count error")
	assert.Equal(t, uint64(0), count, "failed post left counter incremented")

	// enough for the counter but not for a post
	poor := f.user(ledger.DefaultRent.MinimumBalance(space.PostCounterSize) + 1000)
	_, err = f.social.InitialiseUser(poor, space.PostTag)
	require.Nil(t, err, "initialise error")

	_, _, err = f.social.Post(poor, "hello")
	assert.Equal(t, fault.ErrInsufficientBalance, err, "unfunded post accepted")

	count, err = f.social.PostCount(poor.Identity())
	require.Nil(t, err, "post count error")
	assert.Equal(t, uint64(0), count, "failed post left counter incremented")
}

// the sequence seed is one byte so the 257th post reuses the first address
func TestPostLimit(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()

	for i := 1; i <= 256; i += 1 {
		id, _, err := f.social.Post(a, fmt.Sprintf("post %d", i))
		require.Nil(t, err, "post %d error", i)
		require.Equal(t, uint64(i), id, "wrong id")
	}

	_, _, err := f.social.Post(a, "one too many")
	assert.Equal(t, fault.ErrAlreadyAllocated, err, "257th post accepted")

	count, err := f.social.PostCount(a.Identity())
	require.Nil(t, err, "post count error")
	assert.Equal(t, uint64(256), count, "counter advanced by failed post")

	_, first, _, err := f.social.QueryPosts(a.Identity(), 1)
	require.Nil(t, err, "query error")
	assert.Equal(t, "post 1", first.Content, "first post overwritten")
}

func TestQueryPostsFailures(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	id := a.Identity()

	// counter exists but post 1 does not
	_, _, _, err := f.social.QueryPosts(id, 1)
	assert.Equal(t, fault.ErrIllegalOwner, err, "missing post decoded")

	_, err = f.execute(nil, []ledger.AccountMeta{ledger.Readonly(f.counterAddress(id))}, instruction.QueryPosts{})
	assert.Equal(t, fault.ErrNotEnoughAccounts, err, "short handle list accepted")
}

// a query decodes its slots strictly so a slot of the wrong kind is refused
func TestQueryWrongSlotKind(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	id := a.Identity()
	for _, content := range []string{"x", "y", "z"} {
		_, _, err := f.social.Post(a, content)
		require.Nil(t, err, "post error")
	}

	counterSlot := ledger.Readonly(f.counterAddress(id))
	profileSlot := ledger.Readonly(f.profileAddress(id))
	postSlot := ledger.Readonly(f.postAddress(id, 1))

	_, err := f.execute(nil, []ledger.AccountMeta{counterSlot}, instruction.QueryFollows{})
	assert.Equal(t, fault.ErrMalformed, err, "counter decoded as profile")

	_, err = f.execute(nil, []ledger.AccountMeta{postSlot}, instruction.QueryFollows{})
	assert.Equal(t, fault.ErrMalformed, err, "post decoded as profile")

	_, err = f.execute(nil, []ledger.AccountMeta{profileSlot, postSlot}, instruction.QueryPosts{})
	assert.Equal(t, fault.ErrMalformed, err, "profile decoded as counter")

	_, err = f.execute(nil, []ledger.AccountMeta{counterSlot, profileSlot}, instruction.QueryPosts{})
	assert.Equal(t, fault.ErrMalformed, err, "profile decoded as post")

	receipt, err := f.execute(nil, []ledger.AccountMeta{counterSlot, postSlot}, instruction.QueryPosts{})
	require.Nil(t, err, "query error")
	count, post, err := social.UnpackQueryPosts(receipt.ReturnData)
	require.Nil(t, err, "unpack error")
	assert.Equal(t, uint64(3), count, "wrong count")
	assert.Equal(t, "x", post.Content, "wrong content")
}

// content that could never be read back is refused before allocation
func TestPostInvalidContent(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	id := a.Identity()

	accounts := []ledger.AccountMeta{
		ledger.Writable(id, true),
		ledger.Writable(f.counterAddress(id), false),
		ledger.Writable(f.postAddress(id, 1), false),
		ledger.Readonly(ledger.SystemProgram),
	}
	_, err := f.execute(a, accounts, instruction.PostContent{Content: "\xff\xfe"})
	assert.Equal(t, fault.ErrMalformed, err, "invalid utf-8 accepted")

	count, err := f.social.PostCount(id)
	require.Nil(t, err, "post count error")
	assert.Equal(t, uint64(0), count, "failed post counted")

	slot, err := f.l.GetAccount(f.postAddress(id, 1))
	require.Nil(t, err, "get account error")
	assert.False(t, slot.IsAllocated(), "post slot allocated")

	_, _, err = f.social.Post(a, "valid ✓")
	require.Nil(t, err, "post error")
	posts, err := f.social.AllPosts(id)
	require.Nil(t, err, "all posts error")
	assert.Equal(t, "valid ✓", posts[0].Content, "wrong content")
}

// queries log a summary, the identities are only in the return data
func TestQueryFollowsLogs(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	for i := 0; i < 5; i += 1 {
		_, err := f.social.Follow(a, account.Identity{byte(i + 1)})
		require.Nil(t, err, "follow error")
	}

	profile, receipt, err := f.social.QueryFollows(a.Identity())
	require.Nil(t, err, "query error")
	assert.Equal(t, 5, profile.Followed.Len(), "wrong length")
	assert.Equal(t, []string{"size: 166", "followed: 5"}, receipt.Logs, "wrong logs")
}

func TestInvalidInstruction(t *testing.T) {
	f := setup(t)
	defer f.teardown()

	a := f.initialised()
	accounts := []ledger.AccountMeta{ledger.ReadonlySigner(a.Identity())}

	for _, data := range [][]byte{
		nil,
		{0x06},
		{0x01, 0x01, 0x02},
		append(instruction.QueryFollows{}.Pack(), 0x00),
	} {
		_, err := f.executeData(a, accounts, data)
		assert.Equal(t, fault.ErrInvalidInstruction, err, "data: %x", data)
	}
}

func TestUnpackQueryPosts(t *testing.T) {
	post := &entity.Post{Content: "hi", Timestamp: 7}
	data := append([]byte{3, 0, 0, 0, 0, 0, 0, 0}, post.Pack()...)

	count, decoded, err := social.UnpackQueryPosts(data)
	require.Nil(t, err, "unpack error")
	assert.Equal(t, uint64(3), count, "wrong count")
	assert.Equal(t, post, decoded, "wrong post")

	_, _, err = social.UnpackQueryPosts(data[:5])
	assert.Equal(t, fault.ErrTruncated, err, "short data accepted")

	_, _, err = social.UnpackQueryPosts(data[:len(data)-1])
	assert.Equal(t, fault.ErrTruncated, err, "truncated post accepted")
}
