// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - maximum possible number of bytes in Varint64
const Varint64MaximumBytes = 9

// ToVarint64 - convert a 64 bit unsigned integer to Varint64
//
// seven bits per byte, least significant group first, the top bit
// of each byte flags a continuation; the ninth byte carries a full
// eight bits so the encoding never exceeds Varint64MaximumBytes
func ToVarint64(value uint64) []byte {
	result := make([]byte, 0, Varint64MaximumBytes)
	for len(result) < Varint64MaximumBytes-1 {
		if value < 0x80 {
			return append(result, byte(value))
		}
		result = append(result, byte(value)|0x80)
		value >>= 7
	}
	return append(result, byte(value))
}

// FromVarint64 - decode a Varint64 from the start of a buffer
//
// returns the value and the number of bytes consumed,
// or 0, 0 if the buffer is truncated
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	for i, b := range buffer {
		shift := uint(7 * i)
		if Varint64MaximumBytes-1 == i {
			return result | uint64(b)<<shift, i + 1
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			return result, i + 1
		}
	}
	return 0, 0
}

// ClippedVarint64 - decode a Varint64 that must lie in minimum..maximum
//
// returns 0, 0 on any error
func ClippedVarint64(buffer []byte, minimum int, maximum int) (int, int) {
	if minimum < 0 || maximum < 0 || minimum >= maximum {
		return 0, 0
	}

	value, count := FromVarint64(buffer)
	if 0 == count || value > uint64(maximum) || value < uint64(minimum) {
		return 0, 0
	}
	return int(value), count
}
