// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/keypair"
	"github.com/bitmark-inc/socialstore/ledger"
)

type followsReply struct {
	Owner    account.Identity `json:"owner"`
	Count    uint16           `json:"count"`
	Followed []string         `json:"followed"`
	Names    []string         `json:"names,omitempty"`
}

func runFollow(c *cli.Context) error {
	return changeFollow(c, func(m *metadata, keyPair *keypair.KeyPair, target account.Identity) (*ledger.Receipt, error) {
		return m.social.Follow(keyPair, target)
	})
}

func runUnfollow(c *cli.Context) error {
	return changeFollow(c, func(m *metadata, keyPair *keypair.KeyPair, target account.Identity) (*ledger.Receipt, error) {
		return m.social.Unfollow(keyPair, target)
	})
}

type followFunc func(m *metadata, keyPair *keypair.KeyPair, target account.Identity) (*ledger.Receipt, error)

func changeFollow(c *cli.Context, change followFunc) error {

	m := getMetadata(c)

	name := c.String("target")
	if "" == name {
		return ErrRequiredTarget
	}
	target, err := m.resolve(name)
	if nil != err {
		return err
	}

	keyPair, err := m.signer()
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "%s: %s\n", c.Command.Name, target)
	}

	err = m.reportReceipt(change(m, keyPair, target))
	if nil != err {
		return err
	}
	return showFollows(m, keyPair.Identity())
}

func runFollows(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := m.resolve(c.String("owner"))
	if nil != err {
		return err
	}
	return showFollows(m, owner)
}

func showFollows(m *metadata, owner account.Identity) error {
	profile, receipt, err := m.social.QueryFollows(owner)
	if nil != err {
		return m.reportReceipt(receipt, err)
	}

	// reverse lookup of configured names
	names := make(map[account.Identity]string)
	for _, name := range m.config.IdentityNames() {
		if keyPair, err := m.config.Identity(name); nil == err {
			names[keyPair.Identity()] = name
		}
	}

	items := profile.Followed.Items()
	reply := followsReply{
		Owner: owner,
		Count: profile.FollowedCount,
		Followed: lo.Map(items, func(id account.Identity, _ int) string {
			return id.String()
		}),
		Names: lo.FilterMap(items, func(id account.Identity, _ int) (string, bool) {
			name, ok := names[id]
			return name, ok
		}),
	}
	return printJson(m.w, reply)
}
