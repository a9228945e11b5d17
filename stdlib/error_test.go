// Copyright (c) 2014 Conformal Systems LLC.
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"errors"
	"fmt"
	"testing"

	"github.com/diemtools/txbuilder/diemtypes"
	"github.com/stretchr/testify/require"
)

// TestErrorCodeStringer tests the stringized output for the ErrorCode type.
func TestErrorCodeStringer(t *testing.T) {
	tests := []struct {
		in   ErrorCode
		want string
	}{
		{ErrMissingRequiredField, "ErrMissingRequiredField"},
		{ErrUnknownScript, "ErrUnknownScript"},
		{ErrArgumentCountMismatch, "ErrArgumentCountMismatch"},
		{ErrArgumentTypeMismatch, "ErrArgumentTypeMismatch"},
		{ErrUnknownScriptName, "ErrUnknownScriptName"},
		{0xffff, "Unknown ErrorCode (65535)"},
	}

	// Detect additional error codes that don't have the stringer added.
	if len(tests)-1 != int(numErrorCodes) {
		t.Errorf("It appears an error code was added without adding an " +
			"associated stringer test")
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.String()
		if result != test.want {
			t.Errorf("String #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{
		{
			Error{Description: "some error"},
			"some error",
		},
		{
			Error{Description: "human-readable error"},
			"human-readable error",
		},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("Error #%d\n got: %s want: %s", i, result,
				test.want)
			continue
		}
	}
}

// TestIsErrorCode ensures error codes are found through wrapping.
func TestIsErrorCode(t *testing.T) {
	err := scriptError(ErrUnknownScript, "unknown")
	wrapped := fmt.Errorf("decode: %w", err)

	require.True(t, IsErrorCode(err, ErrUnknownScript))
	require.True(t, IsErrorCode(wrapped, ErrUnknownScript))
	require.False(t, IsErrorCode(wrapped, ErrArgumentCountMismatch))
	require.False(t, IsErrorCode(errors.New("other"), ErrUnknownScript))
	require.False(t, IsErrorCode(nil, ErrUnknownScript))
}

// TestErrorDetails ensures the detail constructors fill the fields relevant
// to their code.
func TestErrorDetails(t *testing.T) {
	tmpl := LookupByID(PeerToPeerWithMetadataScript)

	e := typeMismatchError(tmpl, 1, diemtypes.BoolArgument(true))
	require.Equal(t, ErrArgumentTypeMismatch, e.ErrorCode)
	require.Equal(t, PeerToPeerWithMetadataScript, e.Script)
	require.Equal(t, "amount", e.Field)
	require.Equal(t, 1, e.Position)
	require.Equal(t, diemtypes.KindU64, e.ExpectedKind)
	require.Equal(t, diemtypes.KindBool, e.ActualKind)
	require.Contains(t, e.Error(), "peer_to_peer_with_metadata")

	amount := diemtypes.U64Argument(1)
	e = typeMismatchError(tmpl, 1, &amount)
	require.Equal(t, diemtypes.ArgKind(0), e.ActualKind)
	require.Contains(t, e.Error(), "*diemtypes.U64Argument")

	e = countMismatchError(tmpl, 0, 5)
	require.Equal(t, ErrArgumentCountMismatch, e.ErrorCode)
	require.Equal(t, 1, e.ExpectedTypeArgs)
	require.Equal(t, 0, e.ActualTypeArgs)
	require.Equal(t, 4, e.ExpectedArgs)
	require.Equal(t, 5, e.ActualArgs)

	e = missingFieldError(tmpl, "currency", 0)
	require.Equal(t, ErrMissingRequiredField, e.ErrorCode)
	require.Equal(t, "currency", e.Field)

	code := []byte{0xde, 0xad}
	hash := diemtypes.HashScriptCode(code)
	e = unknownScriptError(code)
	require.Equal(t, ErrUnknownScript, e.ErrorCode)
	require.Contains(t, e.Error(), fmt.Sprintf("%x", hash[:]))
}
