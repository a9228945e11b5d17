// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stdlib

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/diemtools/txbuilder/diemtypes"
)

// Param describes one positional value argument of a template.
type Param struct {
	Name string
	Kind diemtypes.ArgKind
}

// String returns the parameter as name:Kind.
func (p Param) String() string {
	return p.Name + ":" + p.Kind.String()
}

// templateDef is the static definition of a template as written in the
// catalogue.
type templateDef struct {
	name       string
	code       []byte
	typeParams []string
	params     []Param
	decode     func([]diemtypes.TypeTag, []diemtypes.TransactionArgument) ScriptCall
}

// Template is one entry of the catalogue: the exact bytecode of a script and
// the schema of its arguments.  Templates are created once at package
// initialization and must not be modified.
type Template struct {
	ID   ScriptID
	Name string

	// Code is the script bytecode.  It is shared by every caller; use
	// EncodeScript to obtain a Script that owns its copy.
	Code []byte

	// TypeParams names the type arguments in order.
	TypeParams []string

	// Params describes the value arguments in order.
	Params []Param

	hash   diemtypes.ScriptHash
	decode func([]diemtypes.TypeTag, []diemtypes.TransactionArgument) ScriptCall
}

// TypeArity returns the number of type arguments the template takes.
func (t *Template) TypeArity() int {
	return len(t.TypeParams)
}

// ArgSchema returns the expected kind of each value argument in order.
func (t *Template) ArgSchema() []diemtypes.ArgKind {
	kinds := make([]diemtypes.ArgKind, len(t.Params))
	for i, p := range t.Params {
		kinds[i] = p.Kind
	}
	return kinds
}

// Hash returns the SHA3-256 digest of the template bytecode.
func (t *Template) Hash() diemtypes.ScriptHash {
	return t.hash
}

// String returns the template signature, for example
// preburn<token>(amount:U64).
func (t *Template) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	if len(t.TypeParams) > 0 {
		sb.WriteByte('<')
		sb.WriteString(strings.Join(t.TypeParams, ", "))
		sb.WriteByte('>')
	}
	sb.WriteByte('(')
	for i, p := range t.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

var (
	// templates houses every template indexed by ScriptID.
	templates [numScripts]*Template

	// templatesByCode indexes the templates by their exact bytecode.  The
	// key is the bytecode converted to a string, which compares and
	// hashes byte by byte.
	templatesByCode = make(map[string]*Template, numScripts)

	// templatesByName indexes the templates by their Move script name.
	templatesByName = make(map[string]*Template, numScripts)

	// templatesByHash indexes the templates by the SHA3-256 digest of their
	// bytecode.
	templatesByHash = make(map[diemtypes.ScriptHash]*Template, numScripts)
)

func init() {
	buildCatalogue()
}

// buildCatalogue creates the lookup tables from the catalogue definitions.
// It panics if two templates share bytecode or a name, since decoding could
// not tell them apart.
func buildCatalogue() {
	for i := range catalogue {
		id := ScriptID(i)
		def := &catalogue[i]
		if def.name == "" || len(def.code) == 0 || def.decode == nil {
			panic(fmt.Sprintf("stdlib: incomplete template %d", i))
		}

		t := &Template{
			ID:         id,
			Name:       def.name,
			Code:       def.code,
			TypeParams: def.typeParams,
			Params:     def.params,
			hash:       diemtypes.HashScriptCode(def.code),
			decode:     def.decode,
		}

		if dup, ok := templatesByCode[string(t.Code)]; ok {
			panic(fmt.Sprintf("stdlib: templates %s and %s share "+
				"bytecode", dup.Name, t.Name))
		}
		if dup, ok := templatesByName[t.Name]; ok {
			panic(fmt.Sprintf("stdlib: duplicate template name %s "+
				"(%d and %d)", t.Name, dup.ID, t.ID))
		}

		templates[id] = t
		templatesByCode[string(t.Code)] = t
		templatesByName[t.Name] = t
		templatesByHash[t.hash] = t
	}
}

// String returns the Move script name of the template, or "Invalid" for a
// value outside the catalogue.
func (id ScriptID) String() string {
	if id >= numScripts {
		return "Invalid"
	}
	return catalogue[id].name
}

// LookupByID returns the template for id.  Every ScriptID defined by this
// package has a template; passing any other value is a programming error and
// panics.
func LookupByID(id ScriptID) *Template {
	if id >= numScripts {
		panic(fmt.Sprintf("stdlib: unknown script id %d", uint8(id)))
	}
	return templates[id]
}

// LookupByCode returns the template whose bytecode is exactly code.
func LookupByCode(code []byte) (*Template, bool) {
	t, ok := templatesByCode[string(code)]
	return t, ok
}

// LookupByName returns the template with the given Move script name, for
// example "peer_to_peer_with_metadata".
func LookupByName(name string) (*Template, bool) {
	t, ok := templatesByName[name]
	return t, ok
}

// LookupByHash returns the template whose bytecode has the given SHA3-256
// digest.
func LookupByHash(hash diemtypes.ScriptHash) (*Template, bool) {
	t, ok := templatesByHash[hash]
	return t, ok
}

// Templates returns every template in ScriptID order.  The returned slice is
// freshly allocated but the templates themselves are shared.
func Templates() []*Template {
	all := make([]*Template, numScripts)
	copy(all, templates[:])
	return all
}

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded bytecode constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}
