// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureAbsolute - a relative filePath is taken to be inside directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - true if name exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// EnsureDirectory - error unless name is an existing directory
func EnsureDirectory(name string) error {
	fileInfo, err := os.Stat(name)
	if nil != err {
		return err
	}
	if !fileInfo.IsDir() {
		return fmt.Errorf("path: %q is not a directory", name)
	}
	return nil
}

// MakeDirectories - create each directory and any missing parents
func MakeDirectories(directories ...string) error {
	for _, d := range directories {
		if err := os.MkdirAll(d, 0700); nil != err {
			return err
		}
	}
	return nil
}
