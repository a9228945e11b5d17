// Copyright (c) 2014 Conformal Systems LLC.
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"errors"
	"fmt"

	"github.com/diemtools/txbuilder/diemtypes"
)

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.
const (
	// ErrMissingRequiredField indicates that a script call was built
	// without one of its fields, for example a nil type argument.
	ErrMissingRequiredField ErrorCode = iota

	// ErrUnknownScript indicates that the bytecode of a script does not
	// exactly match any template in the catalogue.
	ErrUnknownScript

	// ErrArgumentCountMismatch indicates that a script with known bytecode
	// carries the wrong number of type arguments or value arguments.
	ErrArgumentCountMismatch

	// ErrArgumentTypeMismatch indicates that a value argument of a script
	// with known bytecode is not of the kind the template expects at that
	// position.
	ErrArgumentTypeMismatch

	// ErrUnknownScriptName indicates that no template has the requested
	// name.
	ErrUnknownScriptName

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrMissingRequiredField:  "ErrMissingRequiredField",
	ErrUnknownScript:         "ErrUnknownScript",
	ErrArgumentCountMismatch: "ErrArgumentCountMismatch",
	ErrArgumentTypeMismatch:  "ErrArgumentTypeMismatch",
	ErrUnknownScriptName:     "ErrUnknownScriptName",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a script that could not be built or recognized.  The
// caller can use errors.As to access the ErrorCode field and the details
// relevant to it.
//
// Script is set for every code except ErrUnknownScript and
// ErrUnknownScriptName.  Field and Position name the offending parameter for
// ErrMissingRequiredField and ErrArgumentTypeMismatch, the latter also setting
// ExpectedKind and ActualKind.  The count fields are set for
// ErrArgumentCountMismatch.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue

	Script   ScriptID
	Field    string
	Position int

	ExpectedKind diemtypes.ArgKind
	ActualKind   diemtypes.ArgKind

	ExpectedTypeArgs int
	ActualTypeArgs   int
	ExpectedArgs     int
	ActualArgs       int
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// scriptError creates an Error given a set of arguments.
func scriptError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// IsErrorCode returns whether or not the provided error is a script error
// with the provided error code.
func IsErrorCode(err error, c ErrorCode) bool {
	var e Error
	return errors.As(err, &e) && e.ErrorCode == c
}

// missingFieldError creates the error for a nil type argument.
func missingFieldError(t *Template, field string, position int) Error {
	str := fmt.Sprintf("%s: missing required field %s", t.Name, field)
	e := scriptError(ErrMissingRequiredField, str)
	e.Script = t.ID
	e.Field = field
	e.Position = position
	return e
}

// unknownScriptError creates the error for bytecode not in the catalogue.
func unknownScriptError(code []byte) Error {
	hash := diemtypes.HashScriptCode(code)
	str := fmt.Sprintf("unknown script: %d bytes of code with hash %x",
		len(code), hash[:])
	return scriptError(ErrUnknownScript, str)
}

// countMismatchError creates the error for a script with the wrong number
// of arguments.
func countMismatchError(t *Template, tyArgs, args int) Error {
	str := fmt.Sprintf("%s: expected %d type arguments and %d arguments, "+
		"got %d type arguments and %d arguments", t.Name, t.TypeArity(),
		len(t.Params), tyArgs, args)
	e := scriptError(ErrArgumentCountMismatch, str)
	e.Script = t.ID
	e.ExpectedTypeArgs = t.TypeArity()
	e.ActualTypeArgs = tyArgs
	e.ExpectedArgs = len(t.Params)
	e.ActualArgs = args
	return e
}

// typeMismatchError creates the error for an argument of the wrong kind.
func typeMismatchError(t *Template, position int,
	arg diemtypes.TransactionArgument) Error {

	expected := t.Params[position].Kind
	actual := diemtypes.KindOf(arg)
	got := actual.String()
	if actual == 0 {
		got = fmt.Sprintf("%T", arg)
	}
	str := fmt.Sprintf("%s: argument %d (%s) expected %v, got %s", t.Name,
		position, t.Params[position].Name, expected, got)
	e := scriptError(ErrArgumentTypeMismatch, str)
	e.Script = t.ID
	e.Field = t.Params[position].Name
	e.Position = position
	e.ExpectedKind = expected
	e.ActualKind = actual
	return e
}
