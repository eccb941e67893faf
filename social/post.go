// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package social

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bitmark-inc/socialstore/address"
	"github.com/bitmark-inc/socialstore/allocator"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/space"
)

// PostSequence - the extra seed addressing post number count
//
// only the low byte is used so the 257th post collides with the first
func PostSequence(count uint64) []byte {
	return []byte{byte(count)}
}

// increment the counter and create the next post slot
func (p *Processor) postContent(ctx ledger.Context, accounts []*ledger.AccountInfo, content string) error {
	h, err := handles(accounts, 4)
	if nil != err {
		return err
	}
	owner, counterSlot, postSlot, system := h[0], h[1], h[2], h[3]

	err = requireSigner(owner)
	if nil != err {
		return err
	}
	err = requireSystem(system)
	if nil != err {
		return err
	}
	err = requireSlot(ctx, owner.Address, counterSlot, space.PostTag)
	if nil != err {
		return err
	}
	if len(content) > space.MaximumContentLength {
		return fault.ErrContentTooLong
	}
	if !utf8.ValidString(content) {
		return fault.ErrMalformed
	}

	timestamp := uint64(ctx.UnixTimestamp())

	counter, err := readCounter(counterSlot)
	if nil != err {
		return err
	}

	count := counter.Increment()
	err = writeSlot(counterSlot, counter.Pack())
	if nil != err {
		return err
	}

	authority, err := address.ForOwner(ctx.ProgramID(), owner.Address, space.PostTag, PostSequence(count))
	if nil != err {
		return err
	}
	ctx.Logf("post: %d  slot: %s", count, authority.Address)

	post := &entity.Post{
		Content:   content,
		Timestamp: timestamp,
	}
	err = allocator.Allocate(ctx, owner, postSlot, space.Post(content), authority)
	if nil != err {
		return err
	}

	p.log.Infof("post: %d  owner: %s  length: %d", count, owner.Address, len(content))
	return writeSlot(postSlot, post.Pack())
}

// the current count and one post
func (p *Processor) queryPosts(ctx ledger.Context, accounts []*ledger.AccountInfo) error {
	h, err := handles(accounts, 2)
	if nil != err {
		return err
	}
	counterSlot, postSlot := h[0], h[1]

	err = requireOwned(ctx, counterSlot)
	if nil != err {
		return err
	}
	err = requireOwned(ctx, postSlot)
	if nil != err {
		return err
	}

	counter, err := readCounter(counterSlot)
	if nil != err {
		return err
	}
	ctx.Logf("post count: %d", counter.PostCount)

	var post *entity.Post
	err = readSlot(postSlot, func(buffer []byte) error {
		post, err = entity.UnpackPost(buffer, entity.Strict)
		return err
	})
	if nil != err {
		return err
	}
	ctx.Logf("post: %q at %d", post.Content, post.Timestamp)

	result := make([]byte, 8, 8+space.Post(post.Content))
	binary.LittleEndian.PutUint64(result, counter.PostCount)
	ctx.SetReturnData(append(result, post.Pack()...))
	return nil
}

// UnpackQueryPosts - split query-posts return data
func UnpackQueryPosts(data []byte) (uint64, *entity.Post, error) {
	if len(data) < 8 {
		return 0, nil, fault.ErrTruncated
	}
	post, err := entity.UnpackPost(data[8:], entity.Strict)
	if nil != err {
		return 0, nil, err
	}
	return binary.LittleEndian.Uint64(data[:8]), post, nil
}
