// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/verify"
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
		{Long: "rounds", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
		{Long: "seed", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 's'},
		{Long: "workers", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'w'},
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

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// command-line overrides
	if len(options["rounds"]) > 0 {
		rounds, err := strconv.Atoi(options["rounds"][0])
		if nil != err || rounds < 1 {
			exitwithstatus.Message("%s: invalid rounds: %q", program, options["rounds"][0])
		}
		theConfiguration.Verify.Rounds = rounds
	}
	if len(options["seed"]) > 0 {
		seed, err := strconv.ParseInt(options["seed"][0], 10, 64)
		if nil != err {
			exitwithstatus.Message("%s: invalid seed: %q", program, options["seed"][0])
		}
		theConfiguration.Verify.Seed = seed
	}
	if len(options["workers"]) > 0 {
		workers, err := strconv.Atoi(options["workers"][0])
		if nil != err || workers < 1 {
			exitwithstatus.Message("%s: invalid workers: %q", program, options["workers"][0])
		}
		theConfiguration.Verify.Workers = workers
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

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

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if err != nil {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	log.Infof("rounds: %d  count: %d  range: %d  queries: %d  workers: %d  seed: %d",
		theConfiguration.Verify.Rounds,
		theConfiguration.Verify.Count,
		theConfiguration.Verify.Range,
		theConfiguration.Verify.Queries,
		theConfiguration.Verify.Workers,
		theConfiguration.Verify.Seed,
	)

	reporter := verify.NewLogReporter(logger.New("verify"))
	summary, err := verify.Run(theConfiguration.Verify, reporter)

	log.Infof("rounds: %d  failures: %d  elements: %d  maximum height: %d  operations: %d",
		summary.Rounds, summary.Failures, summary.Elements, summary.MaximumHeight, summary.Operations)
	fmt.Printf("rounds: %d  failures: %d  elements: %d  maximum height: %d\n",
		summary.Rounds, summary.Failures, summary.Elements, summary.MaximumHeight)

	fault.ExitIfError("verification", err)
}
