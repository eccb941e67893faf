// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/keypair"
	"github.com/bitmark-inc/socialstore/ledger"
)

const defaultAirdrop = 1000000000

// errors local to the command line
const (
	ErrRequiredContent = fault.InvalidError("content is required")
	ErrRequiredTarget  = fault.InvalidError("target is required")
)

func getMetadata(c *cli.Context) *metadata {
	return c.App.Metadata["config"].(*metadata)
}

// the signing key pair selected by --identity
func (m *metadata) signer() (*keypair.KeyPair, error) {
	keyPair, err := m.config.Identity(m.identity)
	if nil != err {
		return nil, fmt.Errorf("identity: %q: %s", m.identity, err)
	}
	return keyPair, nil
}

// a configured name or a base58 identity, blank selects the signer
func (m *metadata) resolve(nameOrIdentity string) (account.Identity, error) {
	if "" == nameOrIdentity {
		keyPair, err := m.signer()
		if nil != err {
			return account.Identity{}, err
		}
		return keyPair.Identity(), nil
	}
	if keyPair, err := m.config.Identity(nameOrIdentity); nil == err {
		return keyPair.Identity(), nil
	}
	return account.IdentityFromBase58(nameOrIdentity)
}

type receiptReply struct {
	Receipt *ledger.Receipt `json:"receipt"`
	Error   string          `json:"error,omitempty"`
}

// show program logs when a transaction failed, then return the error
func (m *metadata) reportReceipt(receipt *ledger.Receipt, err error) error {
	if nil != err && nil != receipt {
		for _, line := range receipt.Logs {
			fmt.Fprintf(m.e, "log: %s\n", line)
		}
	}
	if nil != err {
		return err
	}
	if m.verbose {
		return printJson(m.w, receiptReply{Receipt: receipt})
	}
	return nil
}
