// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - local host runtime for slot programs
//
// a transaction names one program, an ordered list of account handles
// and opaque instruction data.  Execute verifies the signatures,
// loads every handle into an AccountInfo, runs the program and then
// checks:
//
//	non-writable accounts are unchanged
//	account data changed only where the program owns the account
//	the total of lamports is unchanged
//
// before committing every modified account in one storage batch.  Any
// failure discards the batch so a transaction is all or nothing.
//
// The system program (all-zero identity) is built in and provides the
// create account primitive used through Context.CreateAccount.
package ledger
