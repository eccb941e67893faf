// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"encoding/binary"

	"github.com/bitmark-inc/socialstore/fault"
)

// Mode - how much validation to apply when decoding
type Mode int

// decoding modes
const (
	Strict Mode = iota
	Trusting
)

func (mode Mode) String() string {
	switch mode {
	case Strict:
		return "strict"
	case Trusting:
		return "trusting"
	default:
		return "unknown"
	}
}

// sequential little-endian reader over a record
type reader struct {
	buffer []byte
	n      int
}

func (r *reader) remaining() int {
	return len(r.buffer) - r.n
}

func (r *reader) next(count uint64) ([]byte, error) {
	if count > uint64(r.remaining()) {
		return nil, fault.ErrTruncated
	}
	b := r.buffer[r.n : r.n+int(count)]
	r.n += int(count)
	return b, nil
}

func (r *reader) uint16() (uint16, error) {
	b, err := r.next(2)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *reader) uint32() (uint32, error) {
	b, err := r.next(4)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) uint64() (uint64, error) {
	b, err := r.next(8)
	if nil != err {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// strict mode rejects anything left over
func (r *reader) finish(mode Mode) error {
	if Strict == mode && 0 != r.remaining() {
		return fault.ErrMalformed
	}
	return nil
}

// WriteInto - store a packed record at the start of a slot
//
// the rest of the slot is cleared so stale entries never survive a
// shrinking record
func WriteInto(slot []byte, packed []byte) error {
	if len(packed) > len(slot) {
		return fault.ErrCapacityExceeded
	}
	n := copy(slot, packed)
	for i := n; i < len(slot); i += 1 {
		slot[i] = 0
	}
	return nil
}
