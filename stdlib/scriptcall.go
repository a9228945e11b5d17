// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"fmt"

	"github.com/diemtools/txbuilder/diemtypes"
)

// ScriptCall is a structured call of one template of the catalogue.  It is
// implemented only by the pointer types declared in this package, one per
// template, so a type switch over a ScriptCall is exhaustive over the
// catalogue.
type ScriptCall interface {
	// ScriptID returns the template the call belongs to.
	ScriptID() ScriptID

	// typeArgs returns the type-tag fields in declared order.
	typeArgs() []diemtypes.TypeTag

	// args returns the value fields, wrapped as transaction arguments, in
	// declared order.
	args() []diemtypes.TransactionArgument
}

// Validate ensures every required field of call is present.  Value fields
// always hold a value in Go, so only type-tag fields can be missing.  A call
// that passes Validate always encodes to a script DecodeScript accepts.
func Validate(call ScriptCall) error {
	t := LookupByID(call.ScriptID())
	for i, tag := range call.typeArgs() {
		if isNilTypeTag(tag) {
			return missingFieldError(t, t.TypeParams[i], i)
		}
	}
	return nil
}

// NewScriptCall builds the call for template id from positional type
// arguments and value arguments.  The arguments are checked the same way
// DecodeScript checks a script, and nil entries are reported as
// ErrMissingRequiredField.
func NewScriptCall(id ScriptID, tyArgs []diemtypes.TypeTag,
	args []diemtypes.TransactionArgument) (ScriptCall, error) {

	if id >= numScripts {
		str := fmt.Sprintf("unknown script id %d", uint8(id))
		return nil, scriptError(ErrUnknownScriptName, str)
	}
	t := templates[id]

	if len(tyArgs) != t.TypeArity() || len(args) != len(t.Params) {
		return nil, countMismatchError(t, len(tyArgs), len(args))
	}
	for i, tag := range tyArgs {
		if isNilTypeTag(tag) {
			return nil, missingFieldError(t, t.TypeParams[i], i)
		}
	}
	for i, arg := range args {
		if arg == nil {
			return nil, missingFieldError(t, t.Params[i].Name, i)
		}
	}
	if err := checkArgKinds(t, args); err != nil {
		return nil, err
	}
	return t.decode(tyArgs, args), nil
}

// NewScriptCallByName is like NewScriptCall but selects the template by its
// Move script name.
func NewScriptCallByName(name string, tyArgs []diemtypes.TypeTag,
	args []diemtypes.TransactionArgument) (ScriptCall, error) {

	t, ok := LookupByName(name)
	if !ok {
		str := fmt.Sprintf("unknown script name %q", name)
		return nil, scriptError(ErrUnknownScriptName, str)
	}
	return NewScriptCall(t.ID, tyArgs, args)
}

// isNilTypeTag reports whether tag is nil, including typed nil pointers.
func isNilTypeTag(tag diemtypes.TypeTag) bool {
	switch t := tag.(type) {
	case nil:
		return true
	case *diemtypes.StructTag:
		return t == nil
	case *diemtypes.VectorTag:
		return t == nil
	}
	return false
}
