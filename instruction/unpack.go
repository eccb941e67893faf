// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/util"
)

// limits on string payloads
const (
	maxSeedTypeLength = 32
	maxContentLength  = 65535
)

// Unpack - turn a byte slice into an instruction
//
// the whole slice must be consumed; cast the result to the concrete
// type with a type switch
func (record Packed) Unpack() (Instruction, error) {
	tag, n := util.ClippedVarint64(record, 0, int(tagLimit)-1)
	if 0 == n {
		return nil, fault.ErrInvalidInstruction
	}

	var result Instruction

unpack_switch:
	switch Tag(tag) {

	case InitialiseUserTag:
		seedType, seedTypeLength := unpackString(record[n:], maxSeedTypeLength)
		if 0 == seedTypeLength {
			break unpack_switch
		}
		n += seedTypeLength
		result = InitialiseUser{SeedType: seedType}

	case FollowUserTag:
		target, err := account.IdentityFromBytes(record[n:min(n+account.IdentitySize, len(record))])
		if nil != err {
			break unpack_switch
		}
		n += account.IdentitySize
		result = FollowUser{Target: target}

	case UnfollowUserTag:
		target, err := account.IdentityFromBytes(record[n:min(n+account.IdentitySize, len(record))])
		if nil != err {
			break unpack_switch
		}
		n += account.IdentitySize
		result = UnfollowUser{Target: target}

	case QueryFollowsTag:
		result = QueryFollows{}

	case PostContentTag:
		content, contentLength := unpackString(record[n:], maxContentLength)
		if 0 == contentLength {
			break unpack_switch
		}
		n += contentLength
		result = PostContent{Content: content}

	case QueryPostsTag:
		result = QueryPosts{}
	}

	if nil == result || n != len(record) {
		return nil, fault.ErrInvalidInstruction
	}
	return result, nil
}

// returns the string and total bytes consumed, or 0 on error
func unpackString(buffer []byte, maximum int) (string, int) {
	length, n := util.ClippedVarint64(buffer, 0, maximum)
	if 0 == n || n+length > len(buffer) {
		return "", 0
	}
	return string(buffer[n : n+length]), n + length
}
