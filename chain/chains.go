// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chain - names of the ledgers a database can belong to
package chain

// names of all chains
const (
	Live    = "live"
	Testing = "testing"
	Local   = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Live, Testing, Local:
		return true
	default:
		return false
	}
}

// CanAirdrop - true if lamports may be created from nothing
func CanAirdrop(name string) bool {
	switch name {
	case Testing, Local:
		return true
	default:
		return false
	}
}
