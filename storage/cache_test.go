// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, found := c.Get(key)
	assert.False(t, found, "key already exists")

	c.Set(dbPut, key, expected)
	actual, found := c.Get(key)
	assert.True(t, found, "key not found")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestCacheDelete(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "a", []byte{'b'})
	c.Set(dbDelete, "a", nil)

	actual, found := c.Get("a")
	assert.True(t, found, "staged delete not found")
	assert.Nil(t, actual, "staged delete has a value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte{'a'})
	c.Clear()

	_, found := c.Get("test")
	assert.False(t, found, "cache not cleared")
}
