// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diemtools/txbuilder/internal/log"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultDebugLevel = "info"
)

// config defines the configuration options for scriptctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion  bool     `short:"V" long:"version" description:"Display version information and exit"`
	ListCommands bool     `short:"l" long:"listcommands" description:"List all of the supported commands and exit"`
	DebugLevel   string   `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical, off} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	LogFile      string   `long:"logfile" description:"Also write log output to this file, rotating it as it grows"`
	TypeArgs     []string `short:"t" long:"typearg" description:"Type argument for encode, for example 0x1::XDX::XDX (may be repeated)"`
	Verbose      bool     `short:"v" long:"verbose" description:"Dump decoded script calls in full"`
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}

	// NOTE: The os.ExpandEnv doesn't work with Windows-style %VARIABLE%,
	// but the variables can still be expanded via POSIX-style $VARIABLE.
	return filepath.Clean(os.ExpandEnv(path))
}

// loadConfig initializes and parses the config using command line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Parse CLI options and overwrite/add any specified options
//  3. Validate the debug level and set up logging
//
// The returned arguments are the command followed by its parameters.
func loadConfig(args []string) (*config, []string, error) {
	// Default config.
	cfg := config{
		DebugLevel: defaultDebugLevel,
	}

	// Parse command line options.
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] <command> <args...>"
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, "")
			fmt.Fprintln(os.Stderr, listCmdMessage)
		}
		return nil, nil, err
	}

	// Special show command to list supported subsystems and exit.
	if cfg.DebugLevel == "show" {
		return &cfg, remainingArgs, nil
	}

	// Parse, validate, and set debug log level(s).
	funcName := "loadConfig"
	if err := log.ParseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err)
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, nil, err
	}

	// Initialize the log rotator only when a log file was requested.
	if cfg.LogFile != "" {
		cfg.LogFile = cleanAndExpandPath(cfg.LogFile)
		if err := log.InitLogRotator(cfg.LogFile); err != nil {
			err := fmt.Errorf("%s: %v", funcName, err)
			fmt.Fprintln(os.Stderr, err)
			return nil, nil, err
		}
	}

	return &cfg, remainingArgs, nil
}
