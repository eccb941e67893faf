// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
	"github.com/bitmark-inc/socialstore/ledger"
)

func TestAccountRecord(t *testing.T) {
	a := ledger.Account{
		Lamports: 0x0102,
		Owner:    account.Identity{0x11, 0x22},
		Data:     []byte{9, 8, 7},
	}
	packed := a.Pack()
	assert.Equal(t, 8+32+3, len(packed), "wrong packed length")
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 1, 2, 0x11, 0x22}, packed[:10], "wrong header")

	unpacked, err := ledger.UnpackAccount(packed)
	assert.Nil(t, err, "unpack error")
	assert.Equal(t, &a, unpacked, "account differs")
	assert.True(t, unpacked.IsAllocated(), "account not allocated")

	_, err = ledger.UnpackAccount(packed[:39])
	assert.Equal(t, fault.ErrTruncated, err, "short record accepted")

	empty := ledger.Account{}
	assert.False(t, empty.IsAllocated(), "empty account allocated")
}

func TestMinimumBalance(t *testing.T) {
	rent := ledger.DefaultRent
	assert.Equal(t, uint64(890880), rent.MinimumBalance(0), "empty")
	assert.Equal(t, uint64(946560), rent.MinimumBalance(8), "post counter")
	assert.Equal(t, uint64(1009200), rent.MinimumBalance(17), "short post")
	assert.Equal(t, uint64(45476640), rent.MinimumBalance(6406), "profile")
}

func TestBorrowDiscipline(t *testing.T) {
	info := ledger.NewAccountInfo(account.Identity{1}, false, true, &ledger.Account{Data: []byte{1, 2}})

	r1, err := info.BorrowData()
	assert.Nil(t, err, "first reader")
	r2, err := info.BorrowData()
	assert.Nil(t, err, "second reader")

	_, err = info.BorrowMutData()
	assert.Equal(t, fault.ErrAlreadyBorrowed, err, "writer while reading")

	r1.Release()
	r1.Release()
	_, err = info.BorrowMutData()
	assert.Equal(t, fault.ErrAlreadyBorrowed, err, "writer while one reader left")

	r2.Release()
	w, err := info.BorrowMutData()
	assert.Nil(t, err, "writer after release")
	w.Bytes()[0] = 7

	_, err = info.BorrowData()
	assert.Equal(t, fault.ErrAlreadyBorrowed, err, "reader while writing")
	_, err = info.BorrowMutData()
	assert.Equal(t, fault.ErrAlreadyBorrowed, err, "second writer")

	w.Release()
	r, err := info.BorrowData()
	assert.Nil(t, err, "reader after writer")
	assert.Equal(t, []byte{7, 2}, r.Bytes(), "write lost")
	r.Release()

	readonly := ledger.NewAccountInfo(account.Identity{2}, false, false, &ledger.Account{})
	_, err = readonly.BorrowMutData()
	assert.Equal(t, fault.ErrReadonlyModified, err, "writer on read-only handle")
}
