// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/avlmap/fault"
)

// EnsureAbsolute - ensure the path is absolute
// if not, prepend the directory to make absolute path
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}

// EnsureFileExists - check if file exists
func EnsureFileExists(name string) bool {
	_, err := os.Stat(name)
	return nil == err
}

// DataDirectory - resolve the data directory named by a configuration file
//
// "." is the directory holding the configuration file, a relative
// name is taken from that directory too; the result must be an
// existing directory
func DataDirectory(configurationFileName string, dataDirectory string) (string, error) {
	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return "", err
	}
	base, _ := filepath.Split(configurationFileName)

	if "" == dataDirectory || "~" == dataDirectory {
		return "", fault.ErrNotFoundDataDirectory
	}
	dataDirectory = EnsureAbsolute(base, dataDirectory)

	fileInfo, err := os.Stat(dataDirectory)
	if nil != err {
		return "", err
	}
	if !fileInfo.IsDir() {
		return "", fault.ErrNotFoundDataDirectory
	}
	return dataDirectory, nil
}
