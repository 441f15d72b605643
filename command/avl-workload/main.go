// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlmap/avl"
	"github.com/bitmark-inc/avlmap/fault"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'd'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables, err := getVariables(options["define"])
	if nil != err {
		exitwithstatus.Message("%s: define error: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	if len(options["verbose"]) > 0 {
		printJson(os.Stderr, theConfiguration, true)
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// invariant failures inside the tree are logged before the panic
	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	command := "run"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}
	if 0 != len(arguments) {
		exitwithstatus.Message("%s: %s: %s", program, command, fault.ErrTooManyArguments)
	}

	switch command {
	case "run":
		summary, tree, err := runWorkload(logger.New("workload"), theConfiguration.Workload)
		if nil != err {
			fault.Criticalf("run error: %s", err)
			exitwithstatus.Message("%s: run error: %s", program, err)
		}
		if theConfiguration.Workload.PrintTree {
			tree.Fprint(os.Stdout, true)
		}
		if err := printJson(os.Stdout, summary, true); nil != err {
			exitwithstatus.Message("%s: output error: %s", program, err)
		}

	case "script":
		tree := avl.New[avl.StringKey, string]()
		err := runScript(logger.New("script"), tree, theConfiguration.Script, os.Stdout)
		if nil != err {
			log.Errorf("script error: %s", err)
			exitwithstatus.Message("%s: script error: %s", program, err)
		}
		if theConfiguration.PrintTree {
			tree.Fprint(os.Stdout, true)
		}

	default:
		log.Errorf("unknown command: %q", command)
		exitwithstatus.Message("%s: %s: %q", program, fault.ErrUnknownCommand, command)
	}
}
