// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package entity

import (
	"encoding/json"

	"github.com/bitmark-inc/socialstore/account"
	"github.com/bitmark-inc/socialstore/fault"
)

// FollowList - ordered identities with a capacity fixed at creation
type FollowList struct {
	items []account.Identity
}

// NewFollowList - empty list able to hold capacity identities
func NewFollowList(capacity int) FollowList {
	return FollowList{
		items: make([]account.Identity, 0, capacity),
	}
}

// Len - number of identities held
func (list FollowList) Len() int {
	return len(list.items)
}

// Cap - maximum number of identities
func (list FollowList) Cap() int {
	return cap(list.items)
}

// Items - copy of the identities in order
func (list FollowList) Items() []account.Identity {
	items := make([]account.Identity, len(list.items))
	copy(items, list.items)
	return items
}

// Contains - true if identity is present
func (list FollowList) Contains(identity account.Identity) bool {
	for _, item := range list.items {
		if item == identity {
			return true
		}
	}
	return false
}

// Append - add to the end, never growing past the capacity
func (list *FollowList) Append(identity account.Identity) error {
	if list.Len() >= list.Cap() {
		return fault.ErrCapacityExceeded
	}
	list.items = append(list.items, identity)
	return nil
}

// Remove - delete every occurrence, returns the number removed
func (list *FollowList) Remove(identity account.Identity) int {
	kept := list.items[:0]
	for _, item := range list.items {
		if item != identity {
			kept = append(kept, item)
		}
	}
	removed := len(list.items) - len(kept)
	list.items = kept
	return removed
}

// MarshalJSON - list as a JSON array of Base58 identities
func (list FollowList) MarshalJSON() ([]byte, error) {
	return json.Marshal(list.items)
}
