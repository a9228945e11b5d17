// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"fmt"
	"strings"
)

// TypeTag describes a Move type used as a type argument to a script.  The
// concrete types implementing it are PrimitiveTag, VectorTag and StructTag.
//
// Struct tags contain a slice, so type tags must be compared with
// EqualTypeTags rather than ==.
type TypeTag interface {
	fmt.Stringer

	// variantIndex returns the BCS discriminant of the tag.
	variantIndex() uint32
}

// PrimitiveTag is a builtin Move type.  Its value is the BCS discriminant.
type PrimitiveTag uint8

// Builtin Move types.
const (
	BoolTag PrimitiveTag = iota
	U8Tag
	U64Tag
	U128Tag
	AddressTag
	SignerTag
)

// maxTypeTagDepth bounds the nesting of vector and struct tags.
const maxTypeTagDepth = 500

// BCS discriminants of the composite type tags.
const (
	vectorTagIndex uint32 = 6
	structTagIndex uint32 = 7
)

// primitiveTagNames houses the Move source names of the builtin types.
var primitiveTagNames = map[PrimitiveTag]string{
	BoolTag:    "bool",
	U8Tag:      "u8",
	U64Tag:     "u64",
	U128Tag:    "u128",
	AddressTag: "address",
	SignerTag:  "signer",
}

// String returns the Move source name of the type.
func (t PrimitiveTag) String() string {
	if s, ok := primitiveTagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Unknown PrimitiveTag (%d)", uint8(t))
}

func (t PrimitiveTag) variantIndex() uint32 { return uint32(t) }

// VectorTag is the type vector<Elem>.
type VectorTag struct {
	Elem TypeTag
}

// String returns the Move source form of the vector type.
func (t VectorTag) String() string {
	return "vector<" + typeTagString(t.Elem) + ">"
}

func (t VectorTag) variantIndex() uint32 { return vectorTagIndex }

// StructTag names a struct published under a module, together with its
// instantiated type parameters.
type StructTag struct {
	Address    AccountAddress
	Module     Identifier
	Name       Identifier
	TypeParams []TypeTag
}

// String returns the fully qualified form 0x...::Module::Name<T, ...>.
func (t StructTag) String() string {
	var sb strings.Builder
	sb.WriteString(t.Address.String())
	sb.WriteString("::")
	sb.WriteString(string(t.Module))
	sb.WriteString("::")
	sb.WriteString(string(t.Name))
	if len(t.TypeParams) > 0 {
		sb.WriteByte('<')
		for i, p := range t.TypeParams {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(typeTagString(p))
		}
		sb.WriteByte('>')
	}
	return sb.String()
}

func (t StructTag) variantIndex() uint32 { return structTagIndex }

// CurrencyTag returns the struct tag for a currency published by the core
// code address, for example CurrencyTag("XDX") is 0x1::XDX::XDX.
func CurrencyTag(code Identifier) StructTag {
	return StructTag{
		Address:    CoreCodeAddress,
		Module:     code,
		Name:       code,
		TypeParams: []TypeTag{},
	}
}

// typeTagString guards against nil elements when printing.
func typeTagString(t TypeTag) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}

// EqualTypeTags reports whether a and b describe the same type.  Pointers to
// struct and vector tags compare equal to the values they point to.
func EqualTypeTags(a, b TypeTag) bool {
	a, b = derefTypeTag(a), derefTypeTag(b)
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	switch at := a.(type) {
	case PrimitiveTag:
		bt, ok := b.(PrimitiveTag)
		return ok && at == bt

	case VectorTag:
		bt, ok := b.(VectorTag)
		return ok && EqualTypeTags(at.Elem, bt.Elem)

	case StructTag:
		bt, ok := b.(StructTag)
		if !ok || at.Address != bt.Address || at.Module != bt.Module ||
			at.Name != bt.Name ||
			len(at.TypeParams) != len(bt.TypeParams) {

			return false
		}
		for i := range at.TypeParams {
			if !EqualTypeTags(at.TypeParams[i], bt.TypeParams[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// derefTypeTag maps pointer forms of the composite tags to their values.
func derefTypeTag(t TypeTag) TypeTag {
	switch tt := t.(type) {
	case *StructTag:
		if tt == nil {
			return nil
		}
		return *tt
	case *VectorTag:
		if tt == nil {
			return nil
		}
		return *tt
	}
	return t
}

// ParseTypeTag parses the textual form produced by the String methods, for
// example "u64", "vector<u8>" or "0x1::XDX::XDX".
func ParseTypeTag(s string) (TypeTag, error) {
	p := typeTagParser{input: s}
	tag, err := p.parseTypeTag(0)
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, p.errorf("unexpected trailing input %q",
			p.input[p.pos:])
	}
	return tag, nil
}

// typeTagParser is a small recursive descent parser over the type tag
// grammar.
type typeTagParser struct {
	input string
	pos   int
}

func (p *typeTagParser) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %q at offset %d: %s", ErrInvalidTypeTag,
		p.input, p.pos, fmt.Sprintf(format, args...))
}

func (p *typeTagParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *typeTagParser) consume(tok string) bool {
	p.skipSpace()
	if strings.HasPrefix(p.input[p.pos:], tok) {
		p.pos += len(tok)
		return true
	}
	return false
}

// word returns the next run of identifier characters.
func (p *typeTagParser) word() string {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' {

			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *typeTagParser) parseTypeTag(depth int) (TypeTag, error) {
	if depth > maxTypeTagDepth {
		return nil, p.errorf("type nesting deeper than %d",
			maxTypeTagDepth)
	}

	start := p.pos
	w := p.word()
	switch w {
	case "":
		return nil, p.errorf("expected type")
	case "bool":
		return BoolTag, nil
	case "u8":
		return U8Tag, nil
	case "u64":
		return U64Tag, nil
	case "u128":
		return U128Tag, nil
	case "address":
		return AddressTag, nil
	case "signer":
		return SignerTag, nil
	case "vector":
		if !p.consume("<") {
			return nil, p.errorf("expected '<' after vector")
		}
		elem, err := p.parseTypeTag(depth + 1)
		if err != nil {
			return nil, err
		}
		if !p.consume(">") {
			return nil, p.errorf("expected '>' closing vector")
		}
		return VectorTag{Elem: elem}, nil
	}

	if !strings.HasPrefix(w, "0x") {
		p.pos = start
		return nil, p.errorf("expected type, got %q", w)
	}
	addr, err := ParseAccountAddress(w)
	if err != nil {
		p.pos = start
		return nil, p.errorf("expected type, got %q", w)
	}
	tag := StructTag{Address: addr, TypeParams: []TypeTag{}}

	if !p.consume("::") {
		return nil, p.errorf("expected '::' after address")
	}
	tag.Module = Identifier(p.word())
	if !tag.Module.Valid() {
		return nil, p.errorf("invalid module name %q", tag.Module)
	}
	if !p.consume("::") {
		return nil, p.errorf("expected '::' after module")
	}
	tag.Name = Identifier(p.word())
	if !tag.Name.Valid() {
		return nil, p.errorf("invalid struct name %q", tag.Name)
	}

	if p.consume("<") {
		for {
			param, err := p.parseTypeTag(depth + 1)
			if err != nil {
				return nil, err
			}
			tag.TypeParams = append(tag.TypeParams, param)
			if p.consume(",") {
				continue
			}
			if p.consume(">") {
				break
			}
			return nil, p.errorf("expected ',' or '>' in type " +
				"parameters")
		}
	}
	return tag, nil
}
