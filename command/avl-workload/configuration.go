// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/configuration"
	"github.com/bitmark-inc/avlmap/fault"
	"github.com/bitmark-inc/avlmap/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avl-workload.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultSeed       = 1
	defaultInserts    = 10000
	defaultDeletes    = 5000
	defaultKeySpace   = 100000
	defaultCheckEvery = 1000
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

// WorkloadType - parameters of a random run
type WorkloadType struct {
	Seed       int64 `gluamapper:"seed" json:"seed"`
	Inserts    int   `gluamapper:"inserts" json:"inserts"`
	Deletes    int   `gluamapper:"deletes" json:"deletes"`
	KeySpace   int64 `gluamapper:"key_space" json:"key_space"`
	CheckEvery int   `gluamapper:"check_every" json:"check_every"`
	PrintTree  bool  `gluamapper:"print_tree" json:"print_tree"`
}

// Configuration - the whole configuration file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Workload      WorkloadType         `gluamapper:"workload" json:"workload"`
	Script        []string             `gluamapper:"script" json:"script"`
	PrintTree     bool                 `gluamapper:"print_tree" json:"print_tree"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	// the mapper fills the existing level map, so never hand it the shared defaults
	levels := make(LoglevelMap, len(defaultLogLevels))
	for tag, level := range defaultLogLevels {
		levels[tag] = level
	}

	options := &Configuration{

		DataDirectory: defaultDataDirectory,

		Workload: WorkloadType{
			Seed:       defaultSeed,
			Inserts:    defaultInserts,
			Deletes:    defaultDeletes,
			KeySpace:   defaultKeySpace,
			CheckEvery: defaultCheckEvery,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if !util.EnsureFileExists(configurationFileName) {
		return nil, fault.ErrNotFoundConfigFile
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	dataDirectory, err := util.DataDirectory(configurationFileName, options.DataDirectory)
	if nil != err {
		return nil, err
	}
	options.DataDirectory = dataDirectory

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	options.Logging.Directory = util.EnsureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	return options, nil
}
