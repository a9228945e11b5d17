// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package diemtypes provides the wire level values exchanged with a Diem node
when submitting or inspecting transaction scripts.

A Script is opaque Move bytecode plus two positional argument lists: type
arguments (TypeTag) and value arguments (TransactionArgument).  Both argument
types are closed sets of variants implemented as sealed interfaces.

The package also carries the Binary Canonical Serialization of these types and
the text forms used by command line tools:

	tag, _ := diemtypes.ParseTypeTag("0x1::XDX::XDX")
	script := diemtypes.Script{
		Code:   code,
		TyArgs: []diemtypes.TypeTag{tag},
		Args:   []diemtypes.TransactionArgument{diemtypes.U64Argument(100)},
	}
	raw, err := script.BcsSerialize()

Type tags carry slices, so use EqualTypeTags and EqualArguments to compare
values instead of ==.
*/
package diemtypes
