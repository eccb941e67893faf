// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - wire form of the social program instructions
//
// every instruction is Varint64(tag) followed by its payload, strings
// are Varint64(length) ++ bytes and identities are 32 raw bytes
package instruction

import (
	"github.com/bitmark-inc/socialstore/account"
)

// Packed - packed instruction data
type Packed []byte

// Tag - instruction discriminant
type Tag uint64

// instruction tags in wire order
const (
	InitialiseUserTag Tag = iota
	FollowUserTag
	UnfollowUserTag
	QueryFollowsTag
	PostContentTag
	QueryPostsTag

	// this item must be last
	tagLimit
)

// Instruction - generic instruction interface
type Instruction interface {
	Tag() Tag
	Pack() Packed
}

// InitialiseUser - allocate and initialise a profile or post counter slot
type InitialiseUser struct {
	SeedType string `json:"seed_type"`
}

// FollowUser - append a target to the owner's profile
type FollowUser struct {
	Target account.Identity `json:"user_to_follow"`
}

// UnfollowUser - remove a target from the owner's profile
type UnfollowUser struct {
	Target account.Identity `json:"user_to_unfollow"`
}

// QueryFollows - return the packed profile
type QueryFollows struct{}

// PostContent - append a post to the owner's log
type PostContent struct {
	Content string `json:"content"`
}

// QueryPosts - return the post count and one post
type QueryPosts struct{}

func (t Tag) String() string {
	switch t {
	case InitialiseUserTag:
		return "initialise"
	case FollowUserTag:
		return "follow"
	case UnfollowUserTag:
		return "unfollow"
	case QueryFollowsTag:
		return "query-follows"
	case PostContentTag:
		return "post"
	case QueryPostsTag:
		return "query-posts"
	default:
		return "unknown"
	}
}

// Tag - discriminants of the concrete instructions
func (InitialiseUser) Tag() Tag { return InitialiseUserTag }
func (FollowUser) Tag() Tag     { return FollowUserTag }
func (UnfollowUser) Tag() Tag   { return UnfollowUserTag }
func (QueryFollows) Tag() Tag   { return QueryFollowsTag }
func (PostContent) Tag() Tag    { return PostContentTag }
func (QueryPosts) Tag() Tag     { return QueryPostsTag }
