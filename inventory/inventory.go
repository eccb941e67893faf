// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package inventory - classify stored accounts by what they hold
package inventory

import (
	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/entity"
	"github.com/bitmark-inc/socialstore/ledger"
	"github.com/bitmark-inc/socialstore/metrics"
)

// KindSystem - an account owned by the system program
const KindSystem = "system"

// Kinds - every kind returned by Classify
var Kinds = []string{
	KindSystem,
	entity.KindCounter,
	entity.KindProfile,
	entity.KindPost,
	entity.KindUnknown,
}

// Valid - true for a name in Kinds
func Valid(kind string) bool {
	for _, k := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Classify - kind of an account and its decoded record
//
// the record is nil unless the account is owned by program and decodes
// as a social entity
func Classify(program account.Identity, a *ledger.Account) (string, interface{}) {
	switch a.Owner {
	case ledger.SystemProgram:
		return KindSystem, nil
	case program:
		record, err := entity.Detect(a.Data)
		if nil != err {
			return entity.KindUnknown, nil
		}
		return entity.Kind(record), record
	default:
		return entity.KindUnknown, nil
	}
}

// Tally - totals for one kind
type Tally struct {
	Count    int    `json:"count"`
	Lamports uint64 `json:"lamports"`
}

// Scan - tally every stored account and publish the totals as metrics
func Scan(l *ledger.Ledger, program account.Identity) (map[string]Tally, error) {
	tallies := make(map[string]Tally, len(Kinds))
	for _, kind := range Kinds {
		tallies[kind] = Tally{}
	}

	err := l.Accounts(func(_ account.Identity, a *ledger.Account) error {
		kind, _ := Classify(program, a)
		t := tallies[kind]
		t.Count += 1
		t.Lamports += a.Lamports
		tallies[kind] = t
		return nil
	})
	if nil != err {
		return nil, err
	}

	for kind, t := range tallies {
		metrics.Slots(kind, t.Count, t.Lamports)
	}
	return tallies, nil
}
