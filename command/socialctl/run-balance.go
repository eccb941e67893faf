// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/account"
)

type balanceReply struct {
	Owner    account.Identity `json:"owner"`
	Lamports uint64           `json:"lamports"`
}

func runAirdrop(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := m.resolve(c.String("owner"))
	if nil != err {
		return err
	}
	amount := c.Uint64("amount")
	if 0 == amount {
		return fmt.Errorf("invalid amount: %d", amount)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "airdrop: %s  lamports: %d\n", owner, amount)
	}

	err = m.ledger.Airdrop(owner, amount)
	if nil != err {
		return err
	}
	return showBalance(m, owner)
}

func runBalance(c *cli.Context) error {

	m := getMetadata(c)

	owner, err := m.resolve(c.String("owner"))
	if nil != err {
		return err
	}
	return showBalance(m, owner)
}

func showBalance(m *metadata, owner account.Identity) error {
	lamports, err := m.ledger.Balance(owner)
	if nil != err {
		return err
	}
	return printJson(m.w, balanceReply{Owner: owner, Lamports: lamports})
}
