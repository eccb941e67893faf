// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/space"
)

func makeIdentity(n int) account.Identity {
	var identity account.Identity
	identity[0] = byte(n)
	identity[1] = byte(n >> 8)
	identity[31] = 0xaa
	return identity
}

func TestEmptyProfile(t *testing.T) {
	profile := entity.NewUserProfile()
	packed := profile.Pack()
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0}, packed, "wrong empty profile")

	for _, mode := range []entity.Mode{entity.Strict, entity.Trusting} {
		unpacked, err := entity.UnpackUserProfile(packed, mode)
		assert.Nil(t, err, "%s: unpack error", mode)
		assert.Equal(t, profile, unpacked, "%s: profile differs", mode)
		assert.Equal(t, space.MaxFollowers, unpacked.Followed.Cap(), "%s: capacity lost", mode)
	}
}

func TestFullProfile(t *testing.T) {
	profile := entity.NewUserProfile()
	for i := 0; i < space.MaxFollowers; i += 1 {
		assert.Nil(t, profile.Follow(makeIdentity(i)), "follow: %d", i)
	}
	assert.Equal(t, fault.ErrCapacityExceeded, profile.Follow(makeIdentity(999)), "follow past capacity")
	assert.Equal(t, uint16(space.MaxFollowers), profile.FollowedCount, "count changed by failed follow")

	packed := profile.Pack()
	assert.Equal(t, space.Profile(space.MaxFollowers), len(packed), "wrong packed length")
	assert.Equal(t, []byte{200, 0, 200, 0, 0, 0}, packed[:6], "wrong header")

	unpacked, err := entity.UnpackUserProfile(packed, entity.Strict)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, profile, unpacked, "profile differs")
}

func TestProfileLayout(t *testing.T) {
	profile := entity.NewUserProfile()
	b := makeIdentity(1)
	assert.Nil(t, profile.Follow(b), "follow")

	expected := append([]byte{1, 0, 1, 0, 0, 0}, b[:]...)
	assert.Equal(t, expected, profile.Pack(), "wrong layout")

	n, err := entity.ProfileLength(expected)
	assert.Nil(t, err, "profile length error")
	assert.Equal(t, 38, n, "wrong profile length")
}

func TestPaddedProfile(t *testing.T) {
	profile := entity.NewUserProfile()
	assert.Nil(t, profile.Follow(makeIdentity(7)), "follow")

	slot := make([]byte, space.Profile(space.MaxFollowers))
	assert.Nil(t, entity.WriteInto(slot, profile.Pack()), "write error")

	_, err := entity.UnpackUserProfile(slot, entity.Strict)
	assert.Equal(t, fault.ErrMalformed, err, "strict accepted padding")

	unpacked, err := entity.UnpackUserProfile(slot, entity.Trusting)
	assert.Nil(t, err, "trusting unpack error")
	assert.Equal(t, profile, unpacked, "profile differs")

	n, err := entity.ProfileLength(slot)
	assert.Nil(t, err, "profile length error")
	unpacked, err = entity.UnpackUserProfile(slot[:n], entity.Strict)
	assert.Nil(t, err, "strict prefix unpack error")
	assert.Equal(t, profile, unpacked, "prefix profile differs")
}

func TestInvalidProfiles(t *testing.T) {
	tests := []struct {
		buffer []byte
		mode   entity.Mode
		err    error
	}{
		{[]byte{}, entity.Strict, fault.ErrTruncated},
		{[]byte{0}, entity.Trusting, fault.ErrTruncated},
		{[]byte{0, 0, 0, 0}, entity.Strict, fault.ErrTruncated},
		{[]byte{1, 0, 1, 0, 0, 0, 1, 2}, entity.Trusting, fault.ErrTruncated},
		{[]byte{2, 0, 0, 0, 0, 0}, entity.Strict, fault.ErrMalformed},
		{[]byte{0, 0, 0, 0, 0, 0, 0}, entity.Strict, fault.ErrMalformed},
		{[]byte{201, 0, 201, 0, 0, 0}, entity.Trusting, fault.ErrMalformed},
		{[]byte{0, 0, 0xff, 0xff, 0xff, 0xff}, entity.Trusting, fault.ErrMalformed},
	}

	for i, item := range tests {
		_, err := entity.UnpackUserProfile(item.buffer, item.mode)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}
}

func TestFollowUnfollow(t *testing.T) {
	b := makeIdentity(2)
	c := makeIdentity(3)

	profile := entity.NewUserProfile()
	assert.Nil(t, profile.Follow(b), "follow b")
	assert.Nil(t, profile.Follow(c), "follow c")
	assert.Nil(t, profile.Follow(b), "follow b again")
	assert.Equal(t, uint16(3), profile.FollowedCount, "wrong count")

	assert.Equal(t, 2, profile.Unfollow(b), "all occurrences not removed")
	assert.Equal(t, []account.Identity{c}, profile.Followed.Items(), "wrong list")
	assert.Equal(t, uint16(1), profile.FollowedCount, "count not updated")

	assert.Equal(t, 0, profile.Unfollow(b), "absent target removed")
	assert.Equal(t, []account.Identity{c}, profile.Followed.Items(), "list changed")
	assert.Equal(t, uint16(1), profile.FollowedCount, "count changed")
	assert.True(t, profile.Followed.Contains(c), "c missing")
	assert.False(t, profile.Followed.Contains(b), "b present")
}

func TestPostCounter(t *testing.T) {
	counter := entity.PostCounter{}
	assert.Equal(t, uint64(1), counter.Increment(), "first increment")
	assert.Equal(t, uint64(2), counter.Increment(), "second increment")

	packed := counter.Pack()
	assert.Equal(t, []byte{2, 0, 0, 0, 0, 0, 0, 0}, packed, "wrong layout")

	unpacked, err := entity.UnpackPostCounter(packed, entity.Strict)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &counter, unpacked, "counter differs")

	_, err = entity.UnpackPostCounter(packed[:7], entity.Trusting)
	assert.Equal(t, fault.ErrTruncated, err, "short counter accepted")

	_, err = entity.UnpackPostCounter(append(packed, 0), entity.Strict)
	assert.Equal(t, fault.ErrMalformed, err, "long counter accepted")
}

func TestPosts(t *testing.T) {
	maximum := strings.Repeat("x", space.MaximumContentLength)
	tests := []entity.Post{
		{Content: "", Timestamp: 0},
		{Content: "hello", Timestamp: 1600000000},
		{Content: "héllo wörld", Timestamp: 1600000001},
		{Content: maximum, Timestamp: 0xffffffffffffffff},
	}

	for i, post := range tests {
		packed := post.Pack()
		assert.Equal(t, space.Post(post.Content), len(packed), "%d: wrong length", i)

		unpacked, err := entity.UnpackPost(packed, entity.Strict)
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, &tests[i], unpacked, "%d: post differs", i)
	}
	assert.Equal(t, space.MaxCreateLength, len(tests[3].Pack()), "maximum post does not fill a create")
}

func TestPostLayout(t *testing.T) {
	post := entity.Post{Content: "hi", Timestamp: 258}
	assert.Equal(t, []byte{2, 0, 0, 0, 'h', 'i', 2, 1, 0, 0, 0, 0, 0, 0}, post.Pack(), "wrong layout")
}

func TestInvalidPosts(t *testing.T) {
	tests := []struct {
		buffer []byte
		mode   entity.Mode
		err    error
	}{
		{[]byte{}, entity.Trusting, fault.ErrTruncated},
		{[]byte{5, 0, 0, 0, 'h', 'i'}, entity.Trusting, fault.ErrTruncated},
		{[]byte{2, 0, 0, 0, 'h', 'i', 1, 0, 0}, entity.Strict, fault.ErrTruncated},
		{[]byte{1, 0, 0, 0, 0xff, 0, 0, 0, 0, 0, 0, 0, 0}, entity.Strict, fault.ErrMalformed},
		{[]byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 9}, entity.Strict, fault.ErrMalformed},
	}

	for i, item := range tests {
		_, err := entity.UnpackPost(item.buffer, item.mode)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
	}

	// trusting mode does not inspect the text or trailing bytes
	post, err := entity.UnpackPost([]byte{1, 0, 0, 0, 0xff, 3, 0, 0, 0, 0, 0, 0, 0, 9, 9}, entity.Trusting)
	assert.Nil(t, err, "trusting unpack error")
	assert.Equal(t, uint64(3), post.Timestamp, "wrong timestamp")
}

func TestWriteInto(t *testing.T) {
	slot := bytes.Repeat([]byte{0xee}, 10)
	assert.Nil(t, entity.WriteInto(slot, []byte{1, 2, 3}), "write error")
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 0, 0, 0, 0}, slot, "slot not cleared")

	assert.Equal(t, fault.ErrCapacityExceeded, entity.WriteInto(slot[:2], []byte{1, 2, 3}), "overflow accepted")
}

func TestDetect(t *testing.T) {
	counter := entity.PostCounter{PostCount: 4}
	v, err := entity.Detect(counter.Pack())
	assert.Nil(t, err, "counter detect error")
	assert.IsType(t, &entity.PostCounter{}, v, "counter not detected")

	slot := make([]byte, space.Profile(space.MaxFollowers))
	assert.Nil(t, entity.WriteInto(slot, entity.NewUserProfile().Pack()), "write error")
	v, err = entity.Detect(slot)
	assert.Nil(t, err, "profile detect error")
	assert.IsType(t, &entity.UserProfile{}, v, "profile not detected")

	post := entity.Post{Content: "hello", Timestamp: 9}
	v, err = entity.Detect(post.Pack())
	assert.Nil(t, err, "post detect error")
	assert.Equal(t, &post, v, "post not detected")
	assert.Equal(t, entity.KindPost, entity.Kind(v), "wrong kind")

	assert.Equal(t, entity.KindCounter, entity.Kind(&counter), "wrong kind")
	assert.Equal(t, entity.KindProfile, entity.Kind(entity.NewUserProfile()), "wrong kind")
	assert.Equal(t, entity.KindUnknown, entity.Kind(nil), "wrong kind")
}
