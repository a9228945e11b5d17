// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"bytes"
	"testing"

	"github.com/diemtools/txbuilder/diemtypes"
	"github.com/stretchr/testify/require"
)

// TestCatalogue ensures every template is present, well formed and
// distinguishable by its bytecode.
func TestCatalogue(t *testing.T) {
	all := Templates()
	require.Len(t, all, int(numScripts))

	seen := make(map[string]ScriptID)
	for i, tmpl := range all {
		require.NotNil(t, tmpl, "template %d", i)
		require.Equal(t, ScriptID(i), tmpl.ID)
		require.NotEmpty(t, tmpl.Name)
		require.NotEmpty(t, tmpl.Code)
		require.Equal(t, len(tmpl.TypeParams), tmpl.TypeArity())
		require.Len(t, tmpl.ArgSchema(), len(tmpl.Params))

		if dup, ok := seen[string(tmpl.Code)]; ok {
			t.Fatalf("%s shares bytecode with %s", tmpl.Name, dup)
		}
		seen[string(tmpl.Code)] = tmpl.ID

		for _, p := range tmpl.Params {
			require.NotEmpty(t, p.Name)
			require.Contains(t, diemtypes.ArgKinds(), p.Kind)
		}
	}
}

// TestLookup ensures a template is found by each of its keys and by nothing
// else.
func TestLookup(t *testing.T) {
	for _, tmpl := range Templates() {
		got, ok := LookupByCode(tmpl.Code)
		require.True(t, ok, tmpl.Name)
		require.Same(t, tmpl, got)

		got, ok = LookupByName(tmpl.Name)
		require.True(t, ok, tmpl.Name)
		require.Same(t, tmpl, got)

		got, ok = LookupByHash(tmpl.Hash())
		require.True(t, ok, tmpl.Name)
		require.Same(t, tmpl, got)

		require.Same(t, tmpl, LookupByID(tmpl.ID))
		require.Equal(t, tmpl.Name, tmpl.ID.String())

		// Any change to the bytecode must miss.
		code := bytes.Clone(tmpl.Code)
		code[len(code)-1] ^= 0xff
		_, ok = LookupByCode(code)
		require.False(t, ok, tmpl.Name)
		_, ok = LookupByCode(tmpl.Code[:len(tmpl.Code)-1])
		require.False(t, ok, tmpl.Name)
	}

	_, ok := LookupByCode(nil)
	require.False(t, ok)
	_, ok = LookupByName("mint")
	require.False(t, ok)
}

// TestLookupByIDInvalid ensures an unknown ScriptID is reported as a
// programming error.
func TestLookupByIDInvalid(t *testing.T) {
	require.Equal(t, "Invalid", numScripts.String())
	require.Equal(t, "Invalid", ScriptID(0xff).String())
	require.Panics(t, func() { LookupByID(numScripts) })
}

// TestTemplateString ensures the signature form of a template.
func TestTemplateString(t *testing.T) {
	tests := []struct {
		id   ScriptID
		want string
	}{
		{PreburnScript, "preburn<token>(amount:U64)"},
		{CreateRecoveryAddressScript, "create_recovery_address()"},
		{PeerToPeerWithMetadataScript, "peer_to_peer_with_metadata" +
			"<currency>(payee:Address, amount:U64, metadata:U8Vector, " +
			"metadata_signature:U8Vector)"},
		{UpdateDualAttestationLimitScript, "update_dual_attestation_limit" +
			"(sliding_nonce:U64, new_micro_xdx_limit:U64)"},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		require.Equal(t, test.want, LookupByID(test.id).String())
	}
}

// TestTemplateCodeMagic ensures every template is Move bytecode.
func TestTemplateCodeMagic(t *testing.T) {
	magic := []byte{0xa1, 0x1c, 0xeb, 0x0b}
	for _, tmpl := range Templates() {
		require.True(t, bytes.HasPrefix(tmpl.Code, magic), tmpl.Name)
	}
}
