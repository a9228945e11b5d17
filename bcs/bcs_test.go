// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"lukechampine.com/uint128"
)

// TestUleb128 tests serialize and deserialize of ULEB128 integers.
func TestUleb128(t *testing.T) {
	tests := []struct {
		in  uint64
		buf []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{0x7f, []byte{0x7f}},
		{0x80, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{0x3fff, []byte{0xff, 0x7f}},
		{0x4000, []byte{0x80, 0x80, 0x01}},
		{math.MaxUint32, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{math.MaxUint64, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0x01}},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		var buf bytes.Buffer
		err := WriteUleb128(&buf, test.in)
		require.NoErrorf(t, err, "WriteUleb128 #%d", i)
		require.Equalf(t, test.buf, buf.Bytes(), "WriteUleb128 #%d", i)

		val, err := ReadUleb128(bytes.NewReader(test.buf), math.MaxUint64)
		require.NoErrorf(t, err, "ReadUleb128 #%d", i)
		require.Equalf(t, test.in, val, "ReadUleb128 #%d", i)
	}
}

// TestUleb128Errors ensures malformed ULEB128 input is rejected.
func TestUleb128Errors(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		max  uint64
		err  error
	}{
		{"empty", nil, math.MaxUint64, io.EOF},
		{"unterminated", []byte{0x80}, math.MaxUint64, io.EOF},
		{"trailing zero group", []byte{0x80, 0x00}, math.MaxUint64,
			ErrNonCanonicalUleb128},
		{"redundant group", []byte{0x81, 0x80, 0x00}, math.MaxUint64,
			ErrNonCanonicalUleb128},
		{"exceeds max", []byte{0x80, 0x80, 0x80, 0x80, 0x10},
			math.MaxUint32, ErrOverflow},
		{"exceeds 64 bits", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
			0xff, 0xff, 0xff, 0x02}, math.MaxUint64, ErrOverflow},
	}

	for _, test := range tests {
		_, err := ReadUleb128(bytes.NewReader(test.buf), test.max)
		require.Truef(t, errors.Is(err, test.err),
			"%s: got %v, want %v", test.name, err, test.err)
	}
}

// TestFixedWidth tests the fixed width integer and bool encodings.
func TestFixedWidth(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteU8(&buf, 0xab))
	require.NoError(t, WriteU64(&buf, 0x0102030405060708))
	require.NoError(t, WriteU128(&buf, uint128.New(1, 2)))
	require.NoError(t, WriteBool(&buf, true))
	require.NoError(t, WriteBool(&buf, false))

	want := []byte{
		0xab,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
		0x01, 0, 0, 0, 0, 0, 0, 0, 0x02, 0, 0, 0, 0, 0, 0, 0,
		0x01,
		0x00,
	}
	require.Equal(t, want, buf.Bytes())

	r := bytes.NewReader(buf.Bytes())
	u8, err := ReadU8(r)
	require.NoError(t, err)
	require.Equal(t, uint8(0xab), u8)

	u64, err := ReadU64(r)
	require.NoError(t, err)
	require.Equal(t, uint64(0x0102030405060708), u64)

	u128, err := ReadU128(r)
	require.NoError(t, err)
	require.True(t, u128.Equals(uint128.New(1, 2)))

	b, err := ReadBool(r)
	require.NoError(t, err)
	require.True(t, b)

	b, err = ReadBool(r)
	require.NoError(t, err)
	require.False(t, b)

	require.Zero(t, r.Len())
}

// TestReadBoolInvalid ensures only 0 and 1 decode as booleans.
func TestReadBoolInvalid(t *testing.T) {
	_, err := ReadBool(bytes.NewReader([]byte{0x02}))
	require.ErrorIs(t, err, ErrInvalidBool)
}

// TestBytes tests serialize and deserialize of byte vectors.
func TestBytes(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		buf  []byte
	}{
		{"empty", []byte{}, []byte{0x00}},
		{"short", []byte{0xde, 0xad}, []byte{0x02, 0xde, 0xad}},
		{"long prefix", bytes.Repeat([]byte{0x11}, 200),
			append([]byte{0xc8, 0x01}, bytes.Repeat([]byte{0x11}, 200)...)},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		require.NoErrorf(t, WriteBytes(&buf, test.in), test.name)
		require.Equalf(t, test.buf, buf.Bytes(), test.name)

		got, err := ReadBytes(bytes.NewReader(test.buf))
		require.NoErrorf(t, err, test.name)
		require.Equalf(t, test.in, got, test.name)
	}

	// Truncated payloads must fail.
	_, err := ReadBytes(bytes.NewReader([]byte{0x03, 0x01}))
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)

	// Length prefixes above the sequence limit must fail before any
	// allocation happens.
	var buf bytes.Buffer
	require.NoError(t, WriteUleb128(&buf, MaxSequenceLength+1))
	_, err = ReadBytes(&buf)
	require.ErrorIs(t, err, ErrSequenceTooLong)

	// Vectors larger than the up front allocation are read in full, and a
	// forged prefix with little data behind it fails cleanly.
	large := bytes.Repeat([]byte{0x42}, maxInitialAlloc+10)
	buf.Reset()
	require.NoError(t, WriteBytes(&buf, large))
	got, err := ReadBytes(&buf)
	require.NoError(t, err)
	require.Equal(t, large, got)

	buf.Reset()
	require.NoError(t, WriteLen(&buf, MaxSequenceLength))
	buf.Write([]byte{0x01, 0x02})
	_, err = ReadBytes(&buf)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

// TestString tests the string helpers.
func TestString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteString(&buf, "XDX"))
	require.Equal(t, []byte{0x03, 'X', 'D', 'X'}, buf.Bytes())

	s, err := ReadString(&buf)
	require.NoError(t, err)
	require.Equal(t, "XDX", s)
}

// TestVariantIndex ensures discriminants are limited to the u32 range.
func TestVariantIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVariantIndex(&buf, 7))
	idx, err := ReadVariantIndex(&buf)
	require.NoError(t, err)
	require.Equal(t, uint32(7), idx)

	buf.Reset()
	require.NoError(t, WriteUleb128(&buf, math.MaxUint32+1))
	_, err = ReadVariantIndex(&buf)
	require.ErrorIs(t, err, ErrOverflow)
}
