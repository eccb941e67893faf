// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
)

// SystemProgram - identity of the built in system program
var SystemProgram = account.Identity{}

// Account - stored state of one address
type Account struct {
	Lamports uint64           `json:"lamports"`
	Owner    account.Identity `json:"owner"`
	Data     []byte           `json:"data"`
}

const accountHeaderSize = 8 + account.IdentitySize

// IsAllocated - true if the address already holds anything
func (a *Account) IsAllocated() bool {
	return 0 != a.Lamports || 0 != len(a.Data) || SystemProgram != a.Owner
}

// Pack - lamports(u64 BE) ++ owner ++ data
func (a *Account) Pack() []byte {
	buffer := make([]byte, accountHeaderSize, accountHeaderSize+len(a.Data))
	binary.BigEndian.PutUint64(buffer[:8], a.Lamports)
	copy(buffer[8:], a.Owner[:])
	return append(buffer, a.Data...)
}

// UnpackAccount - decode a stored account record
func UnpackAccount(buffer []byte) (*Account, error) {
	if len(buffer) < accountHeaderSize {
		return nil, fault.ErrTruncated
	}
	a := &Account{
		Lamports: binary.BigEndian.Uint64(buffer[:8]),
		Data:     make([]byte, len(buffer)-accountHeaderSize),
	}
	copy(a.Owner[:], buffer[8:accountHeaderSize])
	copy(a.Data, buffer[accountHeaderSize:])
	return a, nil
}
