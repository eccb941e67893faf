// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
)

// AccountInfo - a handle passed to a program
//
// the data may be viewed by any number of readers or by one writer
// but never both at once
type AccountInfo struct {
	Address    account.Identity
	IsSigner   bool
	IsWritable bool

	sync.Mutex
	lamports uint64
	owner    account.Identity
	data     []byte
	readers  int
	writer   bool
}

// DataRef - a borrowed view of account data, Release when done
type DataRef struct {
	info     *AccountInfo
	mutable  bool
	released bool
}

// NewAccountInfo - handle for an account record
func NewAccountInfo(address account.Identity, signer bool, writable bool, a *Account) *AccountInfo {
	return &AccountInfo{
		Address:    address,
		IsSigner:   signer,
		IsWritable: writable,
		lamports:   a.Lamports,
		owner:      a.Owner,
		data:       a.Data,
	}
}

// Lamports - current balance
func (info *AccountInfo) Lamports() uint64 {
	info.Lock()
	defer info.Unlock()
	return info.lamports
}

// Owner - program that may modify the data
func (info *AccountInfo) Owner() account.Identity {
	info.Lock()
	defer info.Unlock()
	return info.owner
}

// DataLen - allocated bytes
func (info *AccountInfo) DataLen() int {
	info.Lock()
	defer info.Unlock()
	return len(info.data)
}

// BorrowData - shared read view, fails while a writer holds the data
func (info *AccountInfo) BorrowData() (*DataRef, error) {
	info.Lock()
	defer info.Unlock()

	if info.writer {
		return nil, fault.ErrAlreadyBorrowed
	}
	info.readers += 1
	return &DataRef{info: info}, nil
}

// BorrowMutData - exclusive write view, fails while any view is open
func (info *AccountInfo) BorrowMutData() (*DataRef, error) {
	info.Lock()
	defer info.Unlock()

	if !info.IsWritable {
		return nil, fault.ErrReadonlyModified
	}
	if info.writer || info.readers > 0 {
		return nil, fault.ErrAlreadyBorrowed
	}
	info.writer = true
	return &DataRef{info: info, mutable: true}, nil
}

// Bytes - the borrowed data, only valid until Release
func (ref *DataRef) Bytes() []byte {
	return ref.info.data
}

// Release - give up the view, extra calls are ignored
func (ref *DataRef) Release() {
	if ref.released {
		return
	}
	ref.released = true

	info := ref.info
	info.Lock()
	defer info.Unlock()
	if ref.mutable {
		info.writer = false
	} else {
		info.readers -= 1
	}
}

// snapshot of the current state for storing
func (info *AccountInfo) account() *Account {
	info.Lock()
	defer info.Unlock()
	return &Account{
		Lamports: info.lamports,
		Owner:    info.owner,
		Data:     info.data,
	}
}

func (info *AccountInfo) borrowed() bool {
	info.Lock()
	defer info.Unlock()
	return info.writer || info.readers > 0
}
