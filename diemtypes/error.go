// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import "errors"

var (
	// ErrInvalidAddress is returned when an account address can not be
	// parsed.
	ErrInvalidAddress = errors.New("invalid account address")

	// ErrInvalidIdentifier is returned when a module or struct name is not a
	// valid Move identifier.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrInvalidTypeTag is returned when a type tag can not be parsed or
	// carries an unknown variant.
	ErrInvalidTypeTag = errors.New("invalid type tag")

	// ErrInvalidArgument is returned when a transaction argument can not be
	// parsed or carries an unknown variant.
	ErrInvalidArgument = errors.New("invalid transaction argument")

	// ErrUnsupportedArgument is returned when decoding an argument variant
	// that exists on chain but has no representation in this package.
	ErrUnsupportedArgument = errors.New("unsupported transaction argument")
)
