// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package space - exact byte lengths of the stored entities
package space

import (
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
)

// namespace tags
const (
	ProfileTag = "profile"
	PostTag    = "post"
)

// layout constants
const (
	countSize        = 2 // u16 followed count
	vectorHeaderSize = 4 // u32 vector or string length
	timestampSize    = 8 // u64

	// ProfileHeaderSize - bytes before the first followed identity
	ProfileHeaderSize = countSize + vectorHeaderSize

	// PostCounterSize - a single u64
	PostCounterSize = 8

	// PostOverhead - bytes of a post that are not content
	PostOverhead = vectorHeaderSize + timestampSize

	// MaxFollowers - capacity of a profile slot
	MaxFollowers = 200

	// MaxCreateLength - largest slot the host will create in one call
	MaxCreateLength = 10240

	// MaximumContentLength - longest post content that fits one create
	MaximumContentLength = MaxCreateLength - PostOverhead
)

// Profile - bytes for a profile holding up to maxFollowers identities
func Profile(maxFollowers int) int {
	return ProfileHeaderSize + maxFollowers*account.IdentitySize
}

// PostCounter - bytes for a post counter
func PostCounter() int {
	return PostCounterSize
}

// Post - bytes for a post with the given content
func Post(content string) int {
	return PostOverhead + len(content)
}

// ForTag - bytes to allocate when initialising a tagged slot
func ForTag(tag string) (int, error) {
	switch tag {
	case ProfileTag:
		return Profile(MaxFollowers), nil
	case PostTag:
		return PostCounter(), nil
	default:
		return 0, fault.ErrInvalidTag
	}
}
