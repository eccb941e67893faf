// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/space"
)

type initReply struct {
	Owner account.Identity            `json:"owner"`
	Slots map[string]account.Identity `json:"slots"`
}

func runInit(c *cli.Context) error {

	m := getMetadata(c)

	keyPair, err := m.signer()
	if nil != err {
		return err
	}

	seedTypes := []string{space.ProfileTag, space.PostTag}
	if s := c.String("seed-type"); "" != s {
		seedTypes = []string{s}
	}

	reply := initReply{
		Owner: keyPair.Identity(),
		Slots: make(map[string]account.Identity),
	}
	for _, seedType := range seedTypes {
		if m.verbose {
			fmt.Fprintf(m.e, "initialise: %s\n", seedType)
		}
		receipt, err := m.social.InitialiseUser(keyPair, seedType)
		err = m.reportReceipt(receipt, err)
		if nil != err {
			return fmt.Errorf("%s: %s", seedType, err)
		}
		switch seedType {
		case space.ProfileTag:
			reply.Slots[seedType], err = m.social.ProfileAddress(keyPair.Identity())
		default:
			reply.Slots[seedType], err = m.social.PostCounterAddress(keyPair.Identity())
		}
		if nil != err {
			return err
		}
	}

	return printJson(m.w, reply)
}
