// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"golang.org/x/crypto/sha3"
)

// HashSize is the size of a script code hash.
const HashSize = 32

// ScriptHash is the SHA3-256 digest of a script's bytecode.  Script allow
// lists on chain are keyed by this value.
type ScriptHash [HashSize]byte

// HashScriptCode returns the SHA3-256 digest of code.
func HashScriptCode(code []byte) ScriptHash {
	return ScriptHash(sha3.Sum256(code))
}

// Script is a transaction script: opaque Move bytecode together with its type
// arguments and value arguments.
type Script struct {
	Code   []byte
	TyArgs []TypeTag
	Args   []TransactionArgument
}

// Hash returns the SHA3-256 digest of the script bytecode.
func (s *Script) Hash() ScriptHash {
	return HashScriptCode(s.Code)
}
