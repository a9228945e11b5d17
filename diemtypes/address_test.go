// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParseAccountAddress tests the accepted text forms of an address.
func TestParseAccountAddress(t *testing.T) {
	full := AccountAddress{0x0a, 0x55, 0x0c, 0x18, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3e}

	tests := []struct {
		in   string
		want AccountAddress
		err  error
	}{
		{"0x1", CoreCodeAddress, nil},
		{"1", CoreCodeAddress, nil},
		{"0x01", CoreCodeAddress, nil},
		{"0X1", CoreCodeAddress, nil},
		{"0x0a550c180000000000000000000000003e", AccountAddress{}, ErrInvalidAddress},
		{"0x0a550c1800000000000000000000003e", full, nil},
		{"0A550C1800000000000000000000003E", full, nil},
		{"", AccountAddress{}, ErrInvalidAddress},
		{"0x", AccountAddress{}, ErrInvalidAddress},
		{"0xzz", AccountAddress{}, ErrInvalidAddress},
	}

	t.Logf("Running %d tests", len(tests))
	for i, test := range tests {
		got, err := ParseAccountAddress(test.in)
		if test.err != nil {
			require.ErrorIsf(t, err, test.err, "#%d %q", i, test.in)
			continue
		}
		require.NoErrorf(t, err, "#%d %q", i, test.in)
		require.Equalf(t, test.want, got, "#%d %q", i, test.in)
	}
}

// TestAccountAddressString ensures addresses print in full and parse back.
func TestAccountAddressString(t *testing.T) {
	require.Equal(t, "0x00000000000000000000000000000001",
		CoreCodeAddress.String())

	addr := AccountAddress{0: 0xff, 7: 0x10, 15: 0xee}
	got, err := ParseAccountAddress(addr.String())
	require.NoError(t, err)
	require.Equal(t, addr, got)
}

// TestIdentifierValid tests Move identifier validation.
func TestIdentifierValid(t *testing.T) {
	tests := []struct {
		in   Identifier
		want bool
	}{
		{"XDX", true},
		{"Diem", true},
		{"_private", true},
		{"coin1", true},
		{"snake_case_2", true},
		{"", false},
		{"_", false},
		{"1coin", false},
		{"has space", false},
		{"dash-ed", false},
		{"colon::", false},
	}

	t.Logf("Running %d tests", len(tests))
	for _, test := range tests {
		require.Equalf(t, test.want, test.in.Valid(), "%q", test.in)
	}
}
