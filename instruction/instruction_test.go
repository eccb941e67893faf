// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/instruction"
)

var target = account.Identity{
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32,
}

func TestPackedLayout(t *testing.T) {
	tests := []struct {
		instruction instruction.Instruction
		packed      []byte
	}{
		{instruction.InitialiseUser{SeedType: "post"}, []byte{0, 4, 'p', 'o', 's', 't'}},
		{instruction.FollowUser{Target: target}, append([]byte{1}, target[:]...)},
		{instruction.UnfollowUser{Target: target}, append([]byte{2}, target[:]...)},
		{instruction.QueryFollows{}, []byte{3}},
		{instruction.PostContent{Content: "hi"}, []byte{4, 2, 'h', 'i'}},
		{instruction.PostContent{Content: ""}, []byte{4, 0}},
		{instruction.QueryPosts{}, []byte{5}},
	}

	for i, item := range tests {
		packed := item.instruction.Pack()
		assert.Equal(t, instruction.Packed(item.packed), packed, "%d: wrong packing", i)

		unpacked, err := packed.Unpack()
		assert.Nil(t, err, "%d: unpack error", i)
		assert.Equal(t, item.instruction, unpacked, "%d: instruction differs", i)
		assert.Equal(t, item.instruction.Tag(), unpacked.Tag(), "%d: tag differs", i)
	}
}

func TestLongContent(t *testing.T) {
	content := strings.Repeat("z", 300)
	packed := instruction.PostContent{Content: content}.Pack()
	assert.Equal(t, []byte{4, 0xac, 0x02}, []byte(packed[:3]), "wrong header")

	unpacked, err := packed.Unpack()
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, content, unpacked.(instruction.PostContent).Content, "content differs")
}

func TestInvalidInstructions(t *testing.T) {
	tests := []instruction.Packed{
		{},
		{6},
		{0x80},
		{0, 5, 'p', 'o'},
		{1, 1, 2, 3},
		{2},
		{3, 0},
		{4, 3, 'a'},
		{5, 5},
		append([]byte{0, 33}, []byte(strings.Repeat("s", 33))...),
	}

	for i, item := range tests {
		_, err := item.Unpack()
		assert.Equal(t, fault.ErrInvalidInstruction, err, "%d: invalid instruction accepted", i)
	}
}

func TestTagNames(t *testing.T) {
	assert.Equal(t, "follow", instruction.FollowUserTag.String(), "follow")
	assert.Equal(t, "query-posts", instruction.QueryPostsTag.String(), "query posts")
	assert.Equal(t, "unknown", instruction.Tag(99).String(), "unknown")
}
