// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bitmark-inc/avlmap/fault"
)

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "help", "h", "?":
		fmt.Fprintf(os.Stderr, "usage: %s [--help] [--verbose] [--version] --config-file=FILE [--define=NAME=VALUE…] [command]\n", program)
		fmt.Fprintf(os.Stderr, "where:\n")
		fmt.Fprintf(os.Stderr, "  help                       - display this message\n")
		fmt.Fprintf(os.Stderr, "  version                    - display the program version\n")
		fmt.Fprintf(os.Stderr, "  run                        - random inserts and deletes, JSON summary (default)\n")
		fmt.Fprintf(os.Stderr, "  script                     - execute the configuration script operations\n")
		fmt.Fprintf(os.Stderr, "\n")

	default:
		return false
	}
	return true
}

// split NAME=VALUE definitions into Lua globals
func getVariables(definitions []string) (map[string]string, error) {
	variables := make(map[string]string)
	for _, d := range definitions {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			return nil, fault.ErrMissingArgument
		}
		variables[s[0]] = s[1]
	}
	return variables, nil
}
