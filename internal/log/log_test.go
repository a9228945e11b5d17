// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"testing"

	"github.com/btcsuite/btclog"
	"github.com/diemtools/txbuilder/diemtypes"
	"github.com/diemtools/txbuilder/stdlib"
	"github.com/stretchr/testify/require"
)

// TestParseAndSetDebugLevels tests the accepted debug level specifications.
func TestParseAndSetDebugLevels(t *testing.T) {
	tests := []struct {
		spec  string
		valid bool
		want  map[string]btclog.Level
	}{
		{"debug", true, map[string]btclog.Level{
			"SCTL": btclog.LevelDebug,
			"STDL": btclog.LevelDebug,
			"TYPS": btclog.LevelDebug,
		}},
		{"STDL=trace,TYPS=warn", true, map[string]btclog.Level{
			"SCTL": btclog.LevelInfo,
			"STDL": btclog.LevelTrace,
			"TYPS": btclog.LevelWarn,
		}},
		{"SCTL=off", true, map[string]btclog.Level{
			"SCTL": btclog.LevelOff,
			"STDL": btclog.LevelInfo,
			"TYPS": btclog.LevelInfo,
		}},
		{"loud", false, nil},
		{"STDL", false, nil},
		{"STDL=loud", false, nil},
		{"XXXX=debug", false, nil},
		{"STDL=debug,TYPS", false, nil},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		SetLogLevels("info")

		err := ParseAndSetDebugLevels(test.spec)
		if !test.valid {
			require.Error(t, err, test.spec)
			continue
		}
		require.NoError(t, err, test.spec)
		for subsystem, want := range test.want {
			got, ok := LevelOf(subsystem)
			require.True(t, ok)
			require.Equal(t, want, got, "%s %s", test.spec, subsystem)
		}
	}
}

// TestSupportedSubsystems ensures every subsystem is listed in order.
func TestSupportedSubsystems(t *testing.T) {
	require.Equal(t, []string{"SCTL", "STDL", "TYPS"}, SupportedSubsystems())

	_, ok := LevelOf("BTCD")
	require.False(t, ok)
}

// TestLibraryLoggersWired ensures the library packages log through the
// subsystem loggers.
func TestLibraryLoggersWired(t *testing.T) {
	var buf bytes.Buffer
	UseBackendWriter(&buf)
	defer UseBackendWriter(logWriter{})

	SetLogLevels("trace")
	defer SetLogLevels("info")

	_, err := stdlib.DecodeScript(&diemtypes.Script{Code: []byte{0x01}})
	require.True(t, stdlib.IsErrorCode(err, stdlib.ErrUnknownScript))
	require.Contains(t, buf.String(), "[TRC] STDL: Rejected script")

	_, err = diemtypes.BcsDeserializeScript([]byte{0x05})
	require.Error(t, err)
	require.Contains(t, buf.String(), "[TRC] TYPS: Rejected script encoding")
}

// TestPickNoun tests the singular and plural selection.
func TestPickNoun(t *testing.T) {
	require.Equal(t, "argument", PickNoun(1, "argument", "arguments"))
	require.Equal(t, "arguments", PickNoun(0, "argument", "arguments"))
	require.Equal(t, "arguments", PickNoun(2, "argument", "arguments"))
}
