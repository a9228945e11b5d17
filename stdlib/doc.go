// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package stdlib builds and recognizes the transaction scripts of the Diem
standard library.

The package carries a closed catalogue of script templates.  Each template is
a bytecode blob identifying one script together with the names of its type
parameters and the names and kinds of its value arguments.

The blobs in bytecode.go are stand-in Move binaries built from the module,
function and argument signature of each script.  They are not the compiled
scripts of a Diem release, so a script produced by Diem tooling decodes as
ErrUnknownScript until its release blob replaces the stand-in.  Only the
bytecode table needs to change for that.  Every template has
a matching ScriptCall type, for example Preburn or PeerToPeerWithMetadata,
whose fields are the arguments of the script in declared order.

Building a script

EncodeScript turns a call into a diemtypes.Script.  It never fails:

	script := stdlib.EncodeScript(&stdlib.Preburn{
		Token:  diemtypes.CurrencyTag("XDX"),
		Amount: 100,
	})

Calls assembled from untrusted input can be checked with Validate, or built
positionally with NewScriptCall which applies the same checks as decoding.

Recognizing a script

DecodeScript maps a script back to its call.  The bytecode is looked up first
and must match a template exactly.  The number of arguments is checked next,
then the kind of every value argument.  Failures are reported as an Error
whose ErrorCode is ErrUnknownScript, ErrArgumentCountMismatch or
ErrArgumentTypeMismatch respectively:

	call, err := stdlib.DecodeScript(&script)
	if stdlib.IsErrorCode(err, stdlib.ErrUnknownScript) {
		// Not a standard library script.
	}
	switch c := call.(type) {
	case *stdlib.Preburn:
		fmt.Println(c.Amount)
	}

Decoding an encoded call yields an equal call, and the templates are built
once at package initialization so every function here is safe for concurrent
use.
*/
package stdlib
