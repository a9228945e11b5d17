// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AccountAddressLength is the number of bytes in an account address.
const AccountAddressLength = 16

// AccountAddress identifies an account on chain.
type AccountAddress [AccountAddressLength]uint8

// CoreCodeAddress is the address the Move standard library is published
// under (0x1).
var CoreCodeAddress = AccountAddress{15: 0x01}

// String returns the address as 0x followed by 32 lower case hex digits.
func (a AccountAddress) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// ParseAccountAddress decodes a hex encoded address.  The 0x prefix is
// optional and short forms such as 0x1 are left padded with zeros.
func ParseAccountAddress(s string) (AccountAddress, error) {
	var addr AccountAddress

	digits := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(digits) == 0 {
		return addr, fmt.Errorf("%w: empty address", ErrInvalidAddress)
	}
	if len(digits) > AccountAddressLength*2 {
		return addr, fmt.Errorf("%w: %q is longer than %d bytes",
			ErrInvalidAddress, s, AccountAddressLength)
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}

	b, err := hex.DecodeString(digits)
	if err != nil {
		return addr, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	copy(addr[AccountAddressLength-len(b):], b)
	return addr, nil
}

// Identifier is a Move module, struct or function name.
type Identifier string

// Valid reports whether the identifier is a well formed Move identifier.
func (id Identifier) Valid() bool {
	if len(id) == 0 || id == "_" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
