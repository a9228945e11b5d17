// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"github.com/davecgh/go-spew/spew"
	"github.com/diemtools/txbuilder/diemtypes"
)

// DecodeScript recognizes script as one of the templates of the catalogue and
// returns the corresponding call.
//
// The bytecode must match a template exactly, otherwise ErrUnknownScript is
// returned, as it is for a nil script.  A recognized script must then carry
// exactly as many type arguments and value arguments as the template declares
// (ErrArgumentCountMismatch), and every value argument must be of the kind the
// template expects at its position (ErrArgumentTypeMismatch).  Type arguments
// are accepted as they are.  No partially decoded call is ever returned.
func DecodeScript(script *diemtypes.Script) (ScriptCall, error) {
	if script == nil {
		err := scriptError(ErrUnknownScript, "unknown script: nil script")
		log.Tracef("Rejected script: %v", err)
		return nil, err
	}

	t, ok := LookupByCode(script.Code)
	if !ok {
		err := unknownScriptError(script.Code)
		log.Tracef("Rejected script: %v", err)
		return nil, err
	}

	if len(script.TyArgs) != t.TypeArity() ||
		len(script.Args) != len(t.Params) {

		err := countMismatchError(t, len(script.TyArgs), len(script.Args))
		log.Tracef("Rejected script: %v", err)
		return nil, err
	}

	if err := checkArgKinds(t, script.Args); err != nil {
		log.Tracef("Rejected script: %v", err)
		return nil, err
	}

	call := t.decode(script.TyArgs, script.Args)
	log.Tracef("Decoded %v script: %v", t.ID, newLogClosure(func() string {
		return spew.Sdump(call)
	}))
	return call, nil
}

// checkArgKinds ensures every argument is the value type of the kind the
// template expects at its position.  Anything else, including nil and pointers
// to the value types, is reported with ActualKind 0.  The caller must have
// checked the argument count.
func checkArgKinds(t *Template, args []diemtypes.TransactionArgument) error {
	for i, arg := range args {
		if diemtypes.KindOf(arg) != t.Params[i].Kind {
			return typeMismatchError(t, i, arg)
		}
	}
	return nil
}

// The accessors below unwrap arguments whose concrete type checkArgKinds has
// already verified.

func u64Arg(arg diemtypes.TransactionArgument) uint64 {
	return uint64(arg.(diemtypes.U64Argument))
}

func bytesArg(arg diemtypes.TransactionArgument) []byte {
	return []byte(arg.(diemtypes.U8VectorArgument))
}

func addressArg(arg diemtypes.TransactionArgument) diemtypes.AccountAddress {
	return diemtypes.AccountAddress(arg.(diemtypes.AddressArgument))
}

func boolArg(arg diemtypes.TransactionArgument) bool {
	return bool(arg.(diemtypes.BoolArgument))
}
