// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/entity"
)

type postItem struct {
	Id        uint64 `json:"id"`
	Content   string `json:"content"`
	Timestamp uint64 `json:"timestamp"`
	Time      string `json:"time"`
}

type postsReply struct {
	Owner account.Identity `json:"owner"`
	Count uint64           `json:"count"`
	Posts []postItem       `json:"posts"`
}

func newPostItem(id uint64, post *entity.Post) postItem {
	return postItem{
		Id:        id,
		Content:   post.Content,
		Timestamp: post.Timestamp,
		Time:      time.Unix(int64(post.Timestamp), 0).UTC().Format(time.RFC3339),
	}
}

func runPost(c *cli.Context) error {

	m := getMetadata(c)

	content := c.String("content")
	if "" == content {
		return ErrRequiredContent
	}

	keyPair, err := m.signer()
	if nil != err {
		return err
	}

	id, receipt, err := m.social.Post(keyPair, content)
	err = m.reportReceipt(receipt, err)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "post: %d\n", id)
	}
	return showPosts(m, keyPair.Identity(), id)
}

func runPosts(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := m.resolve(c.String("owner"))
	if nil != err {
		return err
	}
	return showPosts(m, owner, c.Uint64("id"))
}

// id zero shows every post
func showPosts(m *metadata, owner account.Identity, id uint64) error {
	reply := postsReply{
		Owner: owner,
		Posts: []postItem{},
	}

	if 0 != id {
		count, post, receipt, err := m.social.QueryPosts(owner, id)
		if nil != err {
			return m.reportReceipt(receipt, err)
		}
		reply.Count = count
		reply.Posts = append(reply.Posts, newPostItem(id, post))
		return printJson(m.w, reply)
	}

	count, err := m.social.PostCount(owner)
	if nil != err {
		return err
	}
	posts, err := m.social.AllPosts(owner)
	if nil != err {
		return err
	}
	reply.Count = count
	for i, post := range posts {
		reply.Posts = append(reply.Posts, newPostItem(uint64(i+1), post))
	}
	return printJson(m.w, reply)
}
