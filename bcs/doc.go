// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package bcs implements the primitive encodings of the Binary Canonical
Serialization format used on the Diem wire.

Integers are little endian, lengths and enum discriminants are ULEB128,
booleans are a single 0 or 1 byte and byte vectors carry a length prefix.
Decoding is strict: every value has exactly one accepted encoding, so
non-canonical ULEB128 groups, out of range booleans and overlong sequences are
rejected.

Composite types are assembled by the packages that own them by calling the
Write and Read functions in field order.
*/
package bcs
