// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/socialstore/util"
)

// Pack - initialise user
func (i InitialiseUser) Pack() Packed {
	message := createPacked(InitialiseUserTag)
	return appendString(message, i.SeedType)
}

// Pack - follow user
func (i FollowUser) Pack() Packed {
	message := createPacked(FollowUserTag)
	return append(message, i.Target[:]...)
}

// Pack - unfollow user
func (i UnfollowUser) Pack() Packed {
	message := createPacked(UnfollowUserTag)
	return append(message, i.Target[:]...)
}

// Pack - query follows
func (i QueryFollows) Pack() Packed {
	return createPacked(QueryFollowsTag)
}

// Pack - post content
func (i PostContent) Pack() Packed {
	message := createPacked(PostContentTag)
	return appendString(message, i.Content)
}

// Pack - query posts
func (i QueryPosts) Pack() Packed {
	return createPacked(QueryPostsTag)
}

func createPacked(tag Tag) Packed {
	return util.ToVarint64(uint64(tag))
}

// append a single field to a buffer
func appendString(buffer Packed, s string) Packed {
	l := util.ToVarint64(uint64(len(s)))
	buffer = append(buffer, l...)
	return append(buffer, s...)
}
