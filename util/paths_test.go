// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/socialstore/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/social/local.leveldb", util.EnsureAbsolute("/var/lib/social", "local.leveldb"), "relative name")
	assert.Equal(t, "/tmp/x.leveldb", util.EnsureAbsolute("/var/lib/social", "/tmp/./x.leveldb"), "absolute name")
}

func TestEnsureFileExists(t *testing.T) {
	name := filepath.Join(t.TempDir(), "exists")
	assert.False(t, util.EnsureFileExists(name), "missing file found")

	assert.Nil(t, os.WriteFile(name, []byte("x"), 0600), "write error")
	assert.True(t, util.EnsureFileExists(name), "file not found")
}

func TestBase58(t *testing.T) {
	buffer := make([]byte, 32)
	for i := range buffer {
		buffer[i] = 0x11
	}
	text := util.ToBase58(buffer)
	assert.Equal(t, "29d2S7vB453rNYFdR5Ycwt7y9haRT5fwVwL9zTmBhfV2", text, "wrong encoding")
	assert.Equal(t, buffer, util.FromBase58(text), "wrong decoding")
	assert.Equal(t, []byte{}, util.FromBase58("0OIl"), "invalid text decoded")
}

func TestDirectories(t *testing.T) {
	base := t.TempDir()
	assert.Nil(t, util.EnsureDirectory(base), "temporary directory")

	nested := filepath.Join(base, "a", "b")
	assert.NotNil(t, util.EnsureDirectory(nested), "missing directory")
	assert.Nil(t, util.MakeDirectories(nested, filepath.Join(base, "log")), "make error")
	assert.Nil(t, util.EnsureDirectory(nested), "nested directory")

	file := filepath.Join(base, "file")
	assert.Nil(t, os.WriteFile(file, nil, 0600), "write error")
	assert.NotNil(t, util.EnsureDirectory(file), "file accepted as directory")
}
