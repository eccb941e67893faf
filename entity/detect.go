// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"github.com/bitmark-inc/socialstore/space"
)

// Detect - decode a slot without knowing which tag created it
//
// the slot length identifies counters and profiles; anything else
// must be a strictly valid post
func Detect(buffer []byte) (interface{}, error) {
	switch len(buffer) {
	case space.PostCounterSize:
		return UnpackPostCounter(buffer, Strict)
	case space.Profile(space.MaxFollowers):
		profile, err := UnpackUserProfile(buffer, Trusting)
		if nil == err {
			return profile, nil
		}
	}
	return UnpackPost(buffer, Strict)
}

// names returned by Kind
const (
	KindCounter = "counter"
	KindProfile = "profile"
	KindPost    = "post"
	KindUnknown = "unknown"
)

// Kind - name of a record returned by Detect
func Kind(record interface{}) string {
	switch record.(type) {
	case *PostCounter:
		return KindCounter
	case *UserProfile:
		return KindProfile
	case *Post:
		return KindPost
	default:
		return KindUnknown
	}
}
