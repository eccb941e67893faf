// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package social - follow lists and post logs held in program derived slots
//
// The processor keeps no state of its own. Every value lives in a slot
// whose address is derived from the owner identity and a tag:
//
//	owner ++ "profile"          the followed identities, pre-sized for 200
//	owner ++ "post"             the post counter
//	owner ++ "post" ++ byte(n)  post number n
//
// Handle lists are positional:
//
//	initialise      owner (signer, writable), slot (writable), system program
//	follow          owner (signer), profile (writable)
//	unfollow        owner (signer), profile (writable)
//	query-follows   profile
//	post            owner (signer, writable), counter (writable), new post (writable), system program
//	query-posts     counter, post
//
// Queries place their result in the transaction return data: the
// packed profile for query-follows; u64 count ++ packed post for
// query-posts.
package social
