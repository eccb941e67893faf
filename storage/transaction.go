// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

// Transaction - staged writes across pools
//
// reads through the transaction see staged values
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	Has(*PoolHandle, []byte) bool
	Commit() error
	Abort()
}

type transaction struct {
	access Access
}

func (t *transaction) Put(p *PoolHandle, key []byte, value []byte) {
	p.put(key, value)
}

func (t *transaction) Delete(p *PoolHandle, key []byte) {
	p.remove(key)
}

func (t *transaction) Get(p *PoolHandle, key []byte) []byte {
	return p.Get(key)
}

func (t *transaction) Has(p *PoolHandle, key []byte) bool {
	return p.Has(key)
}

func (t *transaction) Commit() error {
	return t.access.Commit()
}

func (t *transaction) Abort() {
	t.access.Abort()
}
