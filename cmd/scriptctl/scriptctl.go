// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/diemtools/txbuilder/diemtypes"
	"github.com/diemtools/txbuilder/internal/log"
	"github.com/diemtools/txbuilder/internal/version"
	"github.com/diemtools/txbuilder/stdlib"
)

const (
	showHelpMessage = "Specify -h to show available options"
	listCmdMessage  = "Specify -l to list available commands"
)

// errUsage is returned by command handlers when they were invoked with the
// wrong number of parameters.
var errUsage = errors.New("invalid parameters")

// command describes one scriptctl command.
type command struct {
	usage   string
	help    string
	minArgs int
	maxArgs int // negative for no limit
	handler func(cfg *config, args []string, w io.Writer) error
}

// commands houses every command supported by scriptctl.
var commands = map[string]command{
	"list": {
		usage:   "list",
		help:    "Show every script template with its arguments and code hash",
		handler: handleList,
	},
	"encode": {
		usage: "encode <script> [args...]",
		help: "Build a script and print its BCS encoding as hex; " +
			"type arguments are given with -t",
		minArgs: 1,
		maxArgs: -1,
		handler: handleEncode,
	},
	"decode": {
		usage:   "decode <hex>",
		help:    "Recognize a BCS encoded script and print its arguments",
		minArgs: 1,
		maxArgs: 1,
		handler: handleDecode,
	},
	"hash": {
		usage:   "hash <hex code>",
		help:    "Print the code hash of script bytecode and the template it belongs to",
		minArgs: 1,
		maxArgs: 1,
		handler: handleHash,
	},
}

// listCommands lists all of the supported commands along with their one-line
// usage.
func listCommands(w io.Writer) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(w, "Commands:")
	for _, name := range names {
		c := commands[name]
		fmt.Fprintf(w, "  %-28s %s\n", c.usage, c.help)
	}
}

// commandUsage display the usage for a specific command.
func commandUsage(method string) {
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s\n", commands[method].usage)
}

// usage displays the general usage when the help flag is not displayed and
// and an invalid command was specified.  The commandUsage function is used
// instead when a valid command was specified.
func usage(errorMessage string) {
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	fmt.Fprintln(os.Stderr, errorMessage)
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintf(os.Stderr, "  %s [OPTIONS] <command> <args...>\n\n",
		appName)
	fmt.Fprintln(os.Stderr, showHelpMessage)
	fmt.Fprintln(os.Stderr, listCmdMessage)
}

// runCommand dispatches the command named by args[0].
func runCommand(cfg *config, args []string, w io.Writer) error {
	method := args[0]
	c, ok := commands[method]
	if !ok {
		return fmt.Errorf("unrecognized command '%s'", method)
	}

	params := args[1:]
	if len(params) < c.minArgs || (c.maxArgs >= 0 && len(params) > c.maxArgs) {
		return errUsage
	}

	log.SctlLog.Debugf("Running %s with %d %s", method, len(params),
		log.PickNoun(uint64(len(params)), "parameter", "parameters"))
	return c.handler(cfg, params, w)
}

// handleList handles the list command.
func handleList(_ *config, _ []string, w io.Writer) error {
	for _, t := range stdlib.Templates() {
		hash := t.Hash()
		fmt.Fprintf(w, "%x  %s\n", hash[:], t)
	}
	return nil
}

// handleEncode handles the encode command.
func handleEncode(cfg *config, args []string, w io.Writer) error {
	name, values := args[0], args[1:]
	t, ok := stdlib.LookupByName(name)
	if !ok {
		return fmt.Errorf("unknown script %q -- use the list command to "+
			"show the available scripts", name)
	}

	if len(cfg.TypeArgs) != t.TypeArity() || len(values) != len(t.Params) {
		return fmt.Errorf("%s takes %d type %s and %d %s: %v", t.Name,
			t.TypeArity(), log.PickNoun(uint64(t.TypeArity()),
				"argument", "arguments"),
			len(t.Params), log.PickNoun(uint64(len(t.Params)),
				"argument", "arguments"), t)
	}

	tyArgs := make([]diemtypes.TypeTag, 0, len(cfg.TypeArgs))
	for _, s := range cfg.TypeArgs {
		tag, err := diemtypes.ParseTypeTag(s)
		if err != nil {
			return err
		}
		tyArgs = append(tyArgs, tag)
	}

	scriptArgs := make([]diemtypes.TransactionArgument, 0, len(values))
	for i, s := range values {
		arg, err := diemtypes.ParseTransactionArgument(t.Params[i].Kind, s)
		if err != nil {
			return fmt.Errorf("%s: %w", t.Params[i].Name, err)
		}
		scriptArgs = append(scriptArgs, arg)
	}

	call, err := stdlib.NewScriptCall(t.ID, tyArgs, scriptArgs)
	if err != nil {
		return err
	}
	script := stdlib.EncodeScript(call)
	serialized, err := script.BcsSerialize()
	if err != nil {
		return err
	}

	log.SctlLog.Debugf("Encoded %v script into %d bytes", t.ID,
		len(serialized))
	fmt.Fprintln(w, hex.EncodeToString(serialized))
	return nil
}

// handleDecode handles the decode command.
func handleDecode(cfg *config, args []string, w io.Writer) error {
	serialized, err := decodeHexParam(args[0])
	if err != nil {
		return err
	}
	script, err := diemtypes.BcsDeserializeScript(serialized)
	if err != nil {
		return fmt.Errorf("malformed script: %w", err)
	}

	call, err := stdlib.DecodeScript(&script)
	if err != nil {
		return err
	}

	t := stdlib.LookupByID(call.ScriptID())
	fmt.Fprintln(w, t.Name)
	for i, tag := range script.TyArgs {
		fmt.Fprintf(w, "  %s: %v\n", t.TypeParams[i], tag)
	}
	for i, arg := range script.Args {
		fmt.Fprintf(w, "  %s: %v\n", t.Params[i].Name, arg)
	}
	if cfg.Verbose {
		spew.Fdump(w, call)
	}
	return nil
}

// handleHash handles the hash command.
func handleHash(_ *config, args []string, w io.Writer) error {
	code, err := decodeHexParam(args[0])
	if err != nil {
		return err
	}

	hash := diemtypes.HashScriptCode(code)
	name := "unknown"
	if t, ok := stdlib.LookupByHash(hash); ok {
		name = t.Name
	}
	fmt.Fprintf(w, "%x  %s\n", hash[:], name)
	return nil
}

// decodeHexParam decodes a hex parameter with an optional 0x prefix.
func decodeHexParam(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex parameter: %v", err)
	}
	return b, nil
}

func main() {
	cfg, args, err := loadConfig(os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	defer log.CloseLogRotator()

	switch {
	case cfg.ShowVersion:
		appName := filepath.Base(os.Args[0])
		appName = strings.TrimSuffix(appName, filepath.Ext(appName))
		fmt.Printf("%s version %s\n", appName, version.String())
		return

	case cfg.DebugLevel == "show":
		fmt.Println("Supported subsystems", log.SupportedSubsystems())
		return

	case cfg.ListCommands:
		listCommands(os.Stdout)
		return
	}

	if len(args) < 1 {
		usage("No command specified")
		log.CloseLogRotator()
		os.Exit(1)
	}

	err = runCommand(cfg, args, os.Stdout)
	switch {
	case err == errUsage:
		fmt.Fprintf(os.Stderr, "%s command: %v\n", args[0], err)
		commandUsage(args[0])

	case err != nil:
		fmt.Fprintf(os.Stderr, "%s command: %v\n", args[0], err)
		if _, ok := commands[args[0]]; !ok {
			fmt.Fprintln(os.Stderr, listCmdMessage)
		}
	}
	if err != nil {
		log.CloseLogRotator()
		os.Exit(1)
	}
}
