// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"lukechampine.com/uint128"
)

// ArgKind identifies the variant of a TransactionArgument.  The values are the
// BCS discriminants used on the wire.  Discriminant 0 is the on-chain u8
// argument, which no script in the catalogue accepts and which is therefore
// not represented here.
type ArgKind uint8

// Kinds of transaction argument.
const (
	KindU64      ArgKind = 1
	KindU128     ArgKind = 2
	KindAddress  ArgKind = 3
	KindU8Vector ArgKind = 4
	KindBool     ArgKind = 5
)

// argKindStrings maps each ArgKind to the name of its variant.
var argKindStrings = map[ArgKind]string{
	KindU64:      "U64",
	KindU128:     "U128",
	KindAddress:  "Address",
	KindU8Vector: "U8Vector",
	KindBool:     "Bool",
}

// String returns the ArgKind as the name of its variant.
func (k ArgKind) String() string {
	if s, ok := argKindStrings[k]; ok {
		return s
	}
	return fmt.Sprintf("Unknown ArgKind (%d)", uint8(k))
}

// ArgKinds lists every supported argument kind in discriminant order.
func ArgKinds() []ArgKind {
	return []ArgKind{KindU64, KindU128, KindAddress, KindU8Vector, KindBool}
}

// TransactionArgument is one positional value argument to a script.  The
// concrete types implementing it are U64Argument, U128Argument,
// AddressArgument, U8VectorArgument and BoolArgument.
//
// Pointers to those types also satisfy the interface through their method
// sets but are not valid arguments.  Use KindOf to obtain the kind of an
// argument that may come from a caller.
type TransactionArgument interface {
	// Kind returns the variant of the argument.
	Kind() ArgKind

	// isTransactionArgument restricts implementations to this package.
	isTransactionArgument()
}

// U64Argument is an unsigned 64-bit integer argument.
type U64Argument uint64

// U128Argument is an unsigned 128-bit integer argument.
type U128Argument uint128.Uint128

// AddressArgument is an account address argument.
type AddressArgument AccountAddress

// U8VectorArgument is a byte vector argument.
type U8VectorArgument []byte

// BoolArgument is a boolean argument.
type BoolArgument bool

func (U64Argument) Kind() ArgKind      { return KindU64 }
func (U128Argument) Kind() ArgKind     { return KindU128 }
func (AddressArgument) Kind() ArgKind  { return KindAddress }
func (U8VectorArgument) Kind() ArgKind { return KindU8Vector }
func (BoolArgument) Kind() ArgKind     { return KindBool }

func (U64Argument) isTransactionArgument()      {}
func (U128Argument) isTransactionArgument()     {}
func (AddressArgument) isTransactionArgument()  {}
func (U8VectorArgument) isTransactionArgument() {}
func (BoolArgument) isTransactionArgument()     {}

func (a U64Argument) String() string  { return strconv.FormatUint(uint64(a), 10) }
func (a U128Argument) String() string { return uint128.Uint128(a).String() }
func (a AddressArgument) String() string {
	return AccountAddress(a).String()
}
func (a U8VectorArgument) String() string { return "0x" + hex.EncodeToString(a) }
func (a BoolArgument) String() string     { return strconv.FormatBool(bool(a)) }

// KindOf returns the kind of arg when it is one of the value types of this
// package, and 0 otherwise, including for nil and for pointers to the value
// types.
func KindOf(arg TransactionArgument) ArgKind {
	switch arg.(type) {
	case U64Argument:
		return KindU64
	case U128Argument:
		return KindU128
	case AddressArgument:
		return KindAddress
	case U8VectorArgument:
		return KindU8Vector
	case BoolArgument:
		return KindBool
	}
	return 0
}

// EqualArguments reports whether a and b are the same variant holding the
// same value.
func EqualArguments(a, b TransactionArgument) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if KindOf(a) == 0 || KindOf(a) != KindOf(b) {
		return false
	}
	if av, ok := a.(U8VectorArgument); ok {
		bv, ok := b.(U8VectorArgument)
		return ok && bytes.Equal(av, bv)
	}
	return a == b
}

// ParseTransactionArgument parses the text form of an argument of the given
// kind.  Integers are decimal, addresses are hex, byte vectors are either hex
// with a 0x prefix or b"..." for raw text, and booleans are true or false.
func ParseTransactionArgument(kind ArgKind, s string) (TransactionArgument, error) {
	switch kind {
	case KindU64:
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: u64 %q: %v", ErrInvalidArgument,
				s, err)
		}
		return U64Argument(v), nil

	case KindU128:
		v, err := uint128.FromString(s)
		if err != nil {
			return nil, fmt.Errorf("%w: u128 %q: %v", ErrInvalidArgument,
				s, err)
		}
		return U128Argument(v), nil

	case KindAddress:
		addr, err := ParseAccountAddress(s)
		if err != nil {
			return nil, err
		}
		return AddressArgument(addr), nil

	case KindU8Vector:
		if strings.HasPrefix(s, `b"`) && strings.HasSuffix(s, `"`) &&
			len(s) >= 3 {

			return U8VectorArgument(s[2 : len(s)-1]), nil
		}
		if !strings.HasPrefix(s, "0x") {
			return nil, fmt.Errorf("%w: byte vector %q must be 0x "+
				"prefixed hex or b\"...\"", ErrInvalidArgument, s)
		}
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, fmt.Errorf("%w: byte vector %q: %v",
				ErrInvalidArgument, s, err)
		}
		return U8VectorArgument(b), nil

	case KindBool:
		v, err := strconv.ParseBool(s)
		if err != nil || (s != "true" && s != "false") {
			return nil, fmt.Errorf("%w: bool %q", ErrInvalidArgument, s)
		}
		return BoolArgument(v), nil
	}

	return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, kind)
}
