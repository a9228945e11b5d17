// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/diemtools/txbuilder/bcs"
	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.  It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

// TestScriptWire tests the BCS encoding of scripts against known bytes.
func TestScriptWire(t *testing.T) {
	tests := []struct {
		name string
		in   Script
		buf  []byte
	}{{
		name: "empty",
		in: Script{
			Code:   []byte{},
			TyArgs: []TypeTag{},
			Args:   []TransactionArgument{},
		},
		buf: []byte{0x00, 0x00, 0x00},
	}, {
		name: "primitive",
		in: Script{
			Code:   []byte{0x01, 0x02},
			TyArgs: []TypeTag{BoolTag},
			Args:   []TransactionArgument{U64Argument(1)},
		},
		buf: hexToBytes("020102" + "0100" + "01" + "01" +
			"0100000000000000"),
	}, {
		name: "currency",
		in: Script{
			Code:   []byte{0xff},
			TyArgs: []TypeTag{CurrencyTag("XDX")},
			Args: []TransactionArgument{
				AddressArgument(CoreCodeAddress),
				U8VectorArgument{0xca, 0xfe},
				BoolArgument(true),
				U128Argument(uint128.New(2, 1)),
			},
		},
		buf: hexToBytes("01ff" + "01" + "07" +
			"00000000000000000000000000000001" + "03584458" +
			"03584458" + "00" + "04" +
			"03" + "00000000000000000000000000000001" +
			"04" + "02cafe" +
			"05" + "01" +
			"02" + "02000000000000000100000000000000"),
	}, {
		name: "nested",
		in: Script{
			Code: []byte{0x00},
			TyArgs: []TypeTag{
				VectorTag{Elem: VectorTag{Elem: U8Tag}},
				SignerTag,
			},
			Args: []TransactionArgument{},
		},
		buf: hexToBytes("0100" + "02" + "060601" + "05" + "00"),
	}}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		got, err := test.in.BcsSerialize()
		require.NoError(t, err, test.name)
		if !bytes.Equal(got, test.buf) {
			t.Errorf("BcsSerialize %s\n got: %s want: %s", test.name,
				spew.Sdump(got), spew.Sdump(test.buf))
			continue
		}

		script, err := BcsDeserializeScript(test.buf)
		require.NoError(t, err, test.name)
		require.Equal(t, test.in, script, test.name)

		var rt Script
		require.NoError(t, rt.Deserialize(bytes.NewReader(test.buf)))
		require.Equal(t, test.in, rt, test.name)
	}
}

// TestScriptWireErrors tests malformed script encodings are rejected.
func TestScriptWireErrors(t *testing.T) {
	deep := strings.Repeat("06", maxTypeTagDepth+2) + "01"

	tests := []struct {
		name string
		buf  string
		err  error
	}{
		{"trailing", "000000" + "00", bcs.ErrTrailingBytes},
		{"truncated code", "0501", io.ErrUnexpectedEOF},
		{"missing args", "0000", io.EOF},
		{"unknown tag", "00" + "0108" + "00", ErrInvalidTypeTag},
		{"u8 argument", "00" + "00" + "01" + "0007", ErrUnsupportedArgument},
		{"unknown argument", "00" + "00" + "01" + "0600", ErrInvalidArgument},
		{"bad bool", "00" + "00" + "01" + "0502", bcs.ErrInvalidBool},
		{"non-canonical length", "8000" + "00" + "00", bcs.ErrNonCanonicalUleb128},
		{"deep type", "00" + "01" + deep + "00", bcs.ErrContainerDepth},
		{"bad identifier", "00" + "01" + "07" +
			"00000000000000000000000000000001" + "0131" + "0131" + "00" +
			"00", ErrInvalidIdentifier},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		_, err := BcsDeserializeScript(hexToBytes(test.buf))
		require.Truef(t, errors.Is(err, test.err), "%s: got %v want %v",
			test.name, err, test.err)
	}
}

// TestSerializeInvalid ensures values outside the closed variant sets can't
// be serialized.
func TestSerializeInvalid(t *testing.T) {
	script := Script{TyArgs: []TypeTag{nil}}
	_, err := script.BcsSerialize()
	require.ErrorIs(t, err, ErrInvalidTypeTag)

	script = Script{TyArgs: []TypeTag{PrimitiveTag(42)}}
	_, err = script.BcsSerialize()
	require.ErrorIs(t, err, ErrInvalidTypeTag)

	script = Script{Args: []TransactionArgument{nil}}
	_, err = script.BcsSerialize()
	require.ErrorIs(t, err, ErrInvalidArgument)

	amount := U64Argument(100)
	script = Script{Args: []TransactionArgument{&amount}}
	_, err = script.BcsSerialize()
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// TestTypeTagWire tests single type tag encoding including pointer forms.
func TestTypeTagWire(t *testing.T) {
	xdx := CurrencyTag("XDX")
	want, err := BcsSerializeTypeTag(xdx)
	require.NoError(t, err)

	got, err := BcsSerializeTypeTag(&xdx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	tag, err := BcsDeserializeTypeTag(want)
	require.NoError(t, err)
	require.Equal(t, TypeTag(xdx), tag)

	_, err = BcsDeserializeTypeTag(append(want, 0x00))
	require.ErrorIs(t, err, bcs.ErrTrailingBytes)
}

// TestTransactionArgumentWire tests single argument encoding.
func TestTransactionArgumentWire(t *testing.T) {
	tests := []struct {
		in  TransactionArgument
		buf string
	}{
		{U64Argument(0x0102), "010201000000000000"},
		{U128Argument(uint128.From64(1)), "02" + "01000000000000000000000000000000"},
		{AddressArgument(CoreCodeAddress), "03" + "00000000000000000000000000000001"},
		{U8VectorArgument{}, "0400"},
		{BoolArgument(false), "0500"},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		buf, err := BcsSerializeTransactionArgument(test.in)
		require.NoError(t, err)
		require.Equal(t, test.buf, hex.EncodeToString(buf))

		arg, err := BcsDeserializeTransactionArgument(buf)
		require.NoError(t, err)
		require.Equal(t, test.in, arg)
	}

	_, err := BcsDeserializeTransactionArgument(hexToBytes("050000"))
	require.ErrorIs(t, err, bcs.ErrTrailingBytes)

	// Variant indices that only match a kind in their low byte must be
	// rejected rather than read as that kind.
	wide := []string{
		"8102" + "6400000000000000", // 257
		"8502" + "01",               // 261
		"81808008" + "00",           // 1<<24 + 1
	}
	for _, in := range wide {
		_, err := BcsDeserializeTransactionArgument(hexToBytes(in))
		require.ErrorIsf(t, err, ErrInvalidArgument, "%s", in)
	}
}

// TestScriptHash ensures the script hash is the SHA3-256 digest of the code.
func TestScriptHash(t *testing.T) {
	// SHA3-256 of the empty string.
	want := hexToBytes("a7ffc6f8bf1ed76651c14756a061d662" +
		"f580ff4de43b49fa82d80a4b80f8434a")

	script := Script{}
	hash := script.Hash()
	require.Equal(t, want, hash[:])
}
