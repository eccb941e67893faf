// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/account"
)

type addressReply struct {
	Owner   account.Identity  `json:"owner"`
	Program account.Identity  `json:"program"`
	Profile account.Identity  `json:"profile"`
	Counter account.Identity  `json:"counter"`
	Post    *account.Identity `json:"post,omitempty"`
}

func runAddress(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := m.resolve(c.String("owner"))
	if nil != err {
		return err
	}

	reply := addressReply{
		Owner:   owner,
		Program: m.social.Program(),
	}
	reply.Profile, err = m.social.ProfileAddress(owner)
	if nil != err {
		return err
	}
	reply.Counter, err = m.social.PostCounterAddress(owner)
	if nil != err {
		return err
	}
	if id := c.Uint64("id"); 0 != id {
		post, err := m.social.PostAddress(owner, id)
		if nil != err {
			return err
		}
		reply.Post = &post
	}

	return printJson(m.w, reply)
}
