// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"
	"testing"

	"github.com/diemtools/txbuilder/diemtypes"
	"github.com/diemtools/txbuilder/stdlib"
	"github.com/stretchr/testify/require"
)

// TestLoadConfig tests option parsing.
func TestLoadConfig(t *testing.T) {
	cfg, args, err := loadConfig([]string{"-t", "0x1::XDX::XDX", "-t",
		"u64", "-v", "-d", "STDL=trace", "encode", "preburn", "100"})
	require.NoError(t, err)
	require.Equal(t, []string{"0x1::XDX::XDX", "u64"}, cfg.TypeArgs)
	require.True(t, cfg.Verbose)
	require.Equal(t, []string{"encode", "preburn", "100"}, args)

	_, _, err = loadConfig([]string{"-d", "loud", "list"})
	require.Error(t, err)

	cfg, _, err = loadConfig([]string{"-l"})
	require.NoError(t, err)
	require.True(t, cfg.ListCommands)

	// Leave logging at its default for the other tests.
	_, _, err = loadConfig([]string{"-d", "info"})
	require.NoError(t, err)
}

// TestEncodeDecode runs the encode command and feeds its output to the decode
// command.
func TestEncodeDecode(t *testing.T) {
	cfg := &config{TypeArgs: []string{"0x1::XUS::XUS"}}

	var out bytes.Buffer
	err := runCommand(cfg, []string{"encode", "peer_to_peer_with_metadata",
		"0xbb", "1234", `b"invoice"`, "0x"}, &out)
	require.NoError(t, err)
	encoded := strings.TrimSpace(out.String())

	// The output must be a script that decodes to the same call.
	raw, err := hex.DecodeString(encoded)
	require.NoError(t, err)
	script, err := diemtypes.BcsDeserializeScript(raw)
	require.NoError(t, err)
	call, err := stdlib.DecodeScript(&script)
	require.NoError(t, err)
	p2p, ok := call.(*stdlib.PeerToPeerWithMetadata)
	require.True(t, ok)
	require.Equal(t, uint64(1234), p2p.Amount)
	require.Equal(t, []byte("invoice"), p2p.Metadata)
	require.Equal(t, diemtypes.AccountAddress{15: 0xbb}, p2p.Payee)

	out.Reset()
	err = runCommand(&config{}, []string{"decode", "0x" + encoded}, &out)
	require.NoError(t, err)
	want := "peer_to_peer_with_metadata\n" +
		"  currency: 0x00000000000000000000000000000001::XUS::XUS\n" +
		"  payee: 0x000000000000000000000000000000bb\n" +
		"  amount: 1234\n" +
		"  metadata: 0x696e766f696365\n" +
		"  metadata_signature: 0x\n"
	require.Equal(t, want, out.String())

	out.Reset()
	err = runCommand(&config{Verbose: true}, []string{"decode", encoded},
		&out)
	require.NoError(t, err)
	require.Contains(t, out.String(), "PeerToPeerWithMetadata")
}

// TestEncodeErrors tests the encode command rejects bad input.
func TestEncodeErrors(t *testing.T) {
	xdx := []string{"0x1::XDX::XDX"}
	tests := []struct {
		name     string
		typeArgs []string
		args     []string
	}{
		{"unknown script", nil, []string{"mint", "1"}},
		{"missing type argument", nil, []string{"preburn", "1"}},
		{"missing argument", xdx, []string{"preburn"}},
		{"bad type argument", []string{"u16"}, []string{"preburn", "1"}},
		{"bad argument", xdx, []string{"preburn", "lots"}},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		cfg := &config{TypeArgs: test.typeArgs}
		args := append([]string{"encode"}, test.args...)
		var out bytes.Buffer
		err := runCommand(cfg, args, &out)
		require.Error(t, err, test.name)
		require.Empty(t, out.String(), test.name)
	}
}

// TestDecodeErrors tests the decode command reports unrecognized scripts.
func TestDecodeErrors(t *testing.T) {
	unknown := diemtypes.Script{Code: []byte{0x01, 0x02}}
	raw, err := unknown.BcsSerialize()
	require.NoError(t, err)

	var out bytes.Buffer
	err = runCommand(&config{}, []string{"decode", hex.EncodeToString(raw)},
		&out)
	require.True(t, stdlib.IsErrorCode(err, stdlib.ErrUnknownScript))

	err = runCommand(&config{}, []string{"decode", "zz"}, &out)
	require.Error(t, err)

	err = runCommand(&config{}, []string{"decode", "0500"}, &out)
	require.Error(t, err)
}

// TestHashAndList tests the hash and list commands agree on template hashes.
func TestHashAndList(t *testing.T) {
	tmpl, ok := stdlib.LookupByName("preburn")
	require.True(t, ok)
	hash := tmpl.Hash()

	var out bytes.Buffer
	err := runCommand(&config{}, []string{"hash",
		hex.EncodeToString(tmpl.Code)}, &out)
	require.NoError(t, err)
	require.Equal(t, fmt.Sprintf("%x  preburn\n", hash[:]), out.String())

	out.Reset()
	err = runCommand(&config{}, []string{"hash", "00"}, &out)
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(out.String(), "  unknown\n"))

	out.Reset()
	require.NoError(t, runCommand(&config{}, []string{"list"}, &out))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(stdlib.Templates()))
	require.Contains(t, out.String(),
		fmt.Sprintf("%x  preburn<token>(amount:U64)\n", hash[:]))
}

// TestRunCommandUsage tests parameter count checking and unknown commands.
func TestRunCommandUsage(t *testing.T) {
	var out bytes.Buffer
	require.Equal(t, errUsage, runCommand(&config{}, []string{"list", "x"},
		&out))
	require.Equal(t, errUsage, runCommand(&config{}, []string{"decode"},
		&out))
	require.Equal(t, errUsage, runCommand(&config{}, []string{"hash", "a",
		"b"}, &out))
	require.Error(t, runCommand(&config{}, []string{"frobnicate"}, &out))

	out.Reset()
	listCommands(&out)
	for name := range commands {
		require.Contains(t, out.String(), commands[name].usage)
	}
}
