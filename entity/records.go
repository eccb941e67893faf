// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/space"
)

// UserProfile - the identities an owner follows
type UserProfile struct {
	FollowedCount uint16     `json:"followed_count"`
	Followed      FollowList `json:"followed"`
}

// NewUserProfile - empty profile sized for the profile slot
func NewUserProfile() *UserProfile {
	return &UserProfile{
		FollowedCount: 0,
		Followed:      NewFollowList(space.MaxFollowers),
	}
}

// Follow - append a target, fails when the list is full
func (profile *UserProfile) Follow(target account.Identity) error {
	err := profile.Followed.Append(target)
	if nil != err {
		return err
	}
	profile.FollowedCount = uint16(profile.Followed.Len())
	return nil
}

// Unfollow - remove all occurrences of a target, absent target is not an error
func (profile *UserProfile) Unfollow(target account.Identity) int {
	removed := profile.Followed.Remove(target)
	profile.FollowedCount = uint16(profile.Followed.Len())
	return removed
}

// Pack - binary form of the profile
func (profile *UserProfile) Pack() []byte {
	buffer := make([]byte, 0, space.Profile(profile.Followed.Len()))
	buffer = appendUint16(buffer, profile.FollowedCount)
	buffer = appendUint32(buffer, uint32(profile.Followed.Len()))
	for _, item := range profile.Followed.items {
		buffer = append(buffer, item[:]...)
	}
	return buffer
}

// ProfileLength - bytes used by the profile at the start of a slot
//
// computed from the followed count header
func ProfileLength(buffer []byte) (int, error) {
	r := reader{buffer: buffer}
	count, err := r.uint16()
	if nil != err {
		return 0, err
	}
	return space.Profile(int(count)), nil
}

// UnpackUserProfile - decode a profile
func UnpackUserProfile(buffer []byte, mode Mode) (*UserProfile, error) {
	r := reader{buffer: buffer}

	count, err := r.uint16()
	if nil != err {
		return nil, err
	}
	n, err := r.uint32()
	if nil != err {
		return nil, err
	}
	if n > space.MaxFollowers {
		return nil, fault.ErrMalformed
	}
	if Strict == mode && uint32(count) != n {
		return nil, fault.ErrMalformed
	}

	profile := NewUserProfile()
	for i := uint32(0); i < n; i += 1 {
		b, err := r.next(account.IdentitySize)
		if nil != err {
			return nil, err
		}
		var identity account.Identity
		copy(identity[:], b)
		profile.Followed.items = append(profile.Followed.items, identity)
	}
	profile.FollowedCount = count

	err = r.finish(mode)
	if nil != err {
		return nil, err
	}
	return profile, nil
}

// PostCounter - number of posts an owner has made
type PostCounter struct {
	PostCount uint64 `json:"post_count"`
}

// Increment - advance the counter, returns the new count
func (counter *PostCounter) Increment() uint64 {
	counter.PostCount += 1
	return counter.PostCount
}

// Pack - binary form of the counter
func (counter *PostCounter) Pack() []byte {
	return appendUint64(make([]byte, 0, space.PostCounterSize), counter.PostCount)
}

// UnpackPostCounter - decode a counter
func UnpackPostCounter(buffer []byte, mode Mode) (*PostCounter, error) {
	r := reader{buffer: buffer}
	count, err := r.uint64()
	if nil != err {
		return nil, err
	}
	err = r.finish(mode)
	if nil != err {
		return nil, err
	}
	return &PostCounter{PostCount: count}, nil
}

// Post - one immutable entry in an owner's log
type Post struct {
	Content   string `json:"content"`
	Timestamp uint64 `json:"timestamp"`
}

// Pack - binary form of the post
func (post *Post) Pack() []byte {
	buffer := make([]byte, 0, space.Post(post.Content))
	buffer = appendUint32(buffer, uint32(len(post.Content)))
	buffer = append(buffer, post.Content...)
	return appendUint64(buffer, post.Timestamp)
}

// UnpackPost - decode a post
func UnpackPost(buffer []byte, mode Mode) (*Post, error) {
	r := reader{buffer: buffer}

	n, err := r.uint32()
	if nil != err {
		return nil, err
	}
	content, err := r.next(uint64(n))
	if nil != err {
		return nil, err
	}
	if Strict == mode && !utf8.Valid(content) {
		return nil, fault.ErrMalformed
	}
	timestamp, err := r.uint64()
	if nil != err {
		return nil, err
	}

	err = r.finish(mode)
	if nil != err {
		return nil, err
	}
	return &Post{
		Content:   string(content),
		Timestamp: timestamp,
	}, nil
}

func appendUint16(buffer []byte, value uint16) []byte {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint32(buffer []byte, value uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], value)
	return append(buffer, b[:]...)
}

func appendUint64(buffer []byte, value uint64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], value)
	return append(buffer, b[:]...)
}
