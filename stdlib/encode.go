// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"github.com/diemtools/txbuilder/diemtypes"
)

// EncodeScript returns the script for call: the template bytecode followed by
// the call's type-tag fields and value fields in declared order.
//
// The returned script owns its copy of the bytecode.  Byte vector arguments
// share memory with the fields of call.  Encoding never fails; callers
// building calls from untrusted input should check them with Validate first.
func EncodeScript(call ScriptCall) diemtypes.Script {
	t := LookupByID(call.ScriptID())

	code := make([]byte, len(t.Code))
	copy(code, t.Code)

	return diemtypes.Script{
		Code:   code,
		TyArgs: call.typeArgs(),
		Args:   call.args(),
	}
}
