// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances shared by the ledger, the social
// program and the commands
//
// Every error is a single typed constant so callers compare with ==.
// The type gives the class: AuthorityError, ExistsError,
// InvalidError, LengthError, NotFoundError, ProcessError and
// RecordError each have an IsErr... test.
//
// Panics go through a dedicated "PANIC" log channel which is flushed
// before the process dies.
package fault
