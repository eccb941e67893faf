// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/keypair"
)

func runGenerate(c *cli.Context) error {

	m := getMetadata(c)

	seed, err := keypair.NewSeed()
	if nil != err {
		return err
	}
	keyPair, err := keypair.FromSeed(seed)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "add to the identities table: [\"name\"] = %q\n", keyPair.Seed)
	}

	return printJson(m.w, keyPair.Raw())
}
