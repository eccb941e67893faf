// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/configuration"
	"github.com/bitmark-inc/socialstore/ledger"
)

type identityInfo struct {
	Name     string `json:"name"`
	Identity string `json:"identity"`
	Default  bool   `json:"default,omitempty"`
}

type infoReply struct {
	Chain      string                     `json:"chain"`
	Program    string                     `json:"program"`
	Database   configuration.DatabaseType `json:"database"`
	Rent       ledger.Rent                `json:"rent"`
	Identities []identityInfo             `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := getMetadata(c)

	reply := infoReply{
		Chain:      m.config.Chain,
		Program:    m.config.Program,
		Database:   m.config.Database,
		Rent:       m.ledger.Rent(),
		Identities: make([]identityInfo, 0, len(m.config.Identities)),
	}

	for _, name := range m.config.IdentityNames() {
		keyPair, err := m.config.Identity(name)
		if nil != err {
			return err
		}
		reply.Identities = append(reply.Identities, identityInfo{
			Name:     name,
			Identity: keyPair.Identity().String(),
			Default:  name == m.config.DefaultIdentity,
		})
	}

	return printJson(m.w, reply)
}
