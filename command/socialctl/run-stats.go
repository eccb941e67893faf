// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/prometheus/common/expfmt"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/socialstore/inventory"
	"github.com/bitmark-inc/socialstore/metrics"
)

func runStats(c *cli.Context) error {

	m := getMetadata(c)

	_, err := inventory.Scan(m.ledger, m.social.Program())
	if nil != err {
		return err
	}
	return writeMetrics(m.w)
}

// all metric families in text exposition format
func writeMetrics(w io.Writer) error {
	families, err := metrics.Gather()
	if nil != err {
		return err
	}

	encoder := expfmt.NewEncoder(w, expfmt.FmtText)
	for _, family := range families {
		err := encoder.Encode(family)
		if nil != err {
			return err
		}
	}
	return nil
}
