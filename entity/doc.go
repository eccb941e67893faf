// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package entity - binary layout of the social records
//
// all integers are little-endian, vectors and strings carry a u32
// length prefix:
//
//	UserProfile  u16 followed_count ++ u32 n ++ n * 32 byte identity
//	PostCounter  u64 post_count
//	Post         u32 n ++ n bytes utf-8 content ++ u64 timestamp
//
// Strict decoding requires the buffer to hold exactly one record with
// consistent counts and valid text.  Trusting decoding is used on
// pre-sized slots written by this program and ignores trailing bytes;
// a buffer too short for the declared lengths still fails.
package entity
