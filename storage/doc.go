// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk slot store
//
// a single LevelDB database split into pools, each pool is defined by
// a prefix byte obtained from the prefix tag in the Pools struct.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++       = concatenation of byte data
// 3. address  = 32 byte slot, payer or program identity
// 4. txId     = SHA3-256 of the first transaction signature
//
// Accounts:
//
//	A ++ address   - slot record
//	                 data: lamports(u64 BE) ++ owner(32) ++ data
//
// Signatures:
//
//	G ++ txId      - processed transaction
//	                 data: unix time(u64 BE)
//
// Version:
//
//	0x00 ++ "VERSION"  - database layout version (u32 BE)
//
// All writes are staged in a transaction batch and become visible in
// the database only on Commit; staged values are readable through the
// pools while the transaction is open.
package storage
