// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package diemtypes

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/diemtools/txbuilder/bcs"
	"lukechampine.com/uint128"
)

// Serialize encodes the script to w using BCS.
func (s *Script) Serialize(w io.Writer) error {
	if err := bcs.WriteBytes(w, s.Code); err != nil {
		return err
	}
	if err := bcs.WriteLen(w, len(s.TyArgs)); err != nil {
		return err
	}
	for _, tag := range s.TyArgs {
		if err := writeTypeTag(w, tag, 0); err != nil {
			return err
		}
	}
	if err := bcs.WriteLen(w, len(s.Args)); err != nil {
		return err
	}
	for _, arg := range s.Args {
		if err := writeTransactionArgument(w, arg); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize decodes a script from r into the receiver.
func (s *Script) Deserialize(r io.Reader) error {
	code, err := bcs.ReadBytes(r)
	if err != nil {
		return err
	}

	count, err := bcs.ReadLen(r)
	if err != nil {
		return err
	}
	tyArgs := make([]TypeTag, 0, minInt(count, maxPrealloc))
	for i := 0; i < count; i++ {
		tag, err := readTypeTag(r, 0)
		if err != nil {
			return fmt.Errorf("type argument %d: %w", i, err)
		}
		tyArgs = append(tyArgs, tag)
	}

	count, err = bcs.ReadLen(r)
	if err != nil {
		return err
	}
	args := make([]TransactionArgument, 0, minInt(count, maxPrealloc))
	for i := 0; i < count; i++ {
		arg, err := readTransactionArgument(r)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i, err)
		}
		args = append(args, arg)
	}

	s.Code = code
	s.TyArgs = tyArgs
	s.Args = args
	return nil
}

// BcsSerialize returns the BCS encoding of the script.
func (s *Script) BcsSerialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BcsDeserializeScript decodes a script from its BCS encoding.  The input must
// contain exactly one script.
func BcsDeserializeScript(input []byte) (Script, error) {
	var s Script
	r := bytes.NewReader(input)
	if err := s.Deserialize(r); err != nil {
		log.Tracef("Rejected script encoding of %d bytes: %v", len(input),
			err)
		return Script{}, err
	}
	if r.Len() != 0 {
		return Script{}, fmt.Errorf("%w: %d bytes", bcs.ErrTrailingBytes,
			r.Len())
	}
	return s, nil
}

// BcsSerializeTypeTag returns the BCS encoding of a type tag.
func BcsSerializeTypeTag(tag TypeTag) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTypeTag(&buf, tag, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BcsDeserializeTypeTag decodes a single type tag.
func BcsDeserializeTypeTag(input []byte) (TypeTag, error) {
	r := bytes.NewReader(input)
	tag, err := readTypeTag(r, 0)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", bcs.ErrTrailingBytes,
			r.Len())
	}
	return tag, nil
}

// BcsSerializeTransactionArgument returns the BCS encoding of an argument.
func BcsSerializeTransactionArgument(arg TransactionArgument) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeTransactionArgument(&buf, arg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BcsDeserializeTransactionArgument decodes a single argument.
func BcsDeserializeTransactionArgument(input []byte) (TransactionArgument, error) {
	r := bytes.NewReader(input)
	arg, err := readTransactionArgument(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d bytes", bcs.ErrTrailingBytes,
			r.Len())
	}
	return arg, nil
}

// maxPrealloc caps slice capacity reserved from untrusted length prefixes.
const maxPrealloc = 64

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func writeTypeTag(w io.Writer, tag TypeTag, depth int) error {
	if depth > maxTypeTagDepth {
		return bcs.ErrContainerDepth
	}

	switch t := derefTypeTag(tag).(type) {
	case PrimitiveTag:
		if _, ok := primitiveTagNames[t]; !ok {
			return fmt.Errorf("%w: %v", ErrInvalidTypeTag, t)
		}
		return bcs.WriteVariantIndex(w, t.variantIndex())

	case VectorTag:
		if err := bcs.WriteVariantIndex(w, vectorTagIndex); err != nil {
			return err
		}
		return writeTypeTag(w, t.Elem, depth+1)

	case StructTag:
		if err := bcs.WriteVariantIndex(w, structTagIndex); err != nil {
			return err
		}
		return writeStructTag(w, &t, depth+1)

	case nil:
		return fmt.Errorf("%w: nil", ErrInvalidTypeTag)
	}
	return fmt.Errorf("%w: unsupported type %T", ErrInvalidTypeTag, tag)
}

func writeStructTag(w io.Writer, t *StructTag, depth int) error {
	if _, err := w.Write(t.Address[:]); err != nil {
		return err
	}
	if err := bcs.WriteString(w, string(t.Module)); err != nil {
		return err
	}
	if err := bcs.WriteString(w, string(t.Name)); err != nil {
		return err
	}
	if err := bcs.WriteLen(w, len(t.TypeParams)); err != nil {
		return err
	}
	for _, p := range t.TypeParams {
		if err := writeTypeTag(w, p, depth); err != nil {
			return err
		}
	}
	return nil
}

func readTypeTag(r io.Reader, depth int) (TypeTag, error) {
	if depth > maxTypeTagDepth {
		return nil, bcs.ErrContainerDepth
	}

	idx, err := bcs.ReadVariantIndex(r)
	if err != nil {
		return nil, err
	}

	switch {
	case idx <= uint32(SignerTag):
		return PrimitiveTag(idx), nil

	case idx == vectorTagIndex:
		elem, err := readTypeTag(r, depth+1)
		if err != nil {
			return nil, err
		}
		return VectorTag{Elem: elem}, nil

	case idx == structTagIndex:
		return readStructTag(r, depth+1)
	}
	return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidTypeTag, idx)
}

func readStructTag(r io.Reader, depth int) (TypeTag, error) {
	var t StructTag
	if _, err := io.ReadFull(r, t.Address[:]); err != nil {
		return nil, err
	}

	module, err := bcs.ReadString(r)
	if err != nil {
		return nil, err
	}
	t.Module = Identifier(module)
	if !t.Module.Valid() {
		return nil, fmt.Errorf("%w: module %q", ErrInvalidIdentifier,
			module)
	}

	name, err := bcs.ReadString(r)
	if err != nil {
		return nil, err
	}
	t.Name = Identifier(name)
	if !t.Name.Valid() {
		return nil, fmt.Errorf("%w: struct %q", ErrInvalidIdentifier,
			name)
	}

	count, err := bcs.ReadLen(r)
	if err != nil {
		return nil, err
	}
	t.TypeParams = make([]TypeTag, 0, minInt(count, maxPrealloc))
	for i := 0; i < count; i++ {
		p, err := readTypeTag(r, depth)
		if err != nil {
			return nil, err
		}
		t.TypeParams = append(t.TypeParams, p)
	}
	return t, nil
}

func writeTransactionArgument(w io.Writer, arg TransactionArgument) error {
	kind := KindOf(arg)
	if kind == 0 {
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidArgument, arg)
	}
	if err := bcs.WriteVariantIndex(w, uint32(kind)); err != nil {
		return err
	}

	switch a := arg.(type) {
	case U64Argument:
		return bcs.WriteU64(w, uint64(a))
	case U128Argument:
		return bcs.WriteU128(w, uint128.Uint128(a))
	case AddressArgument:
		_, err := w.Write(a[:])
		return err
	case U8VectorArgument:
		return bcs.WriteBytes(w, a)
	case BoolArgument:
		return bcs.WriteBool(w, bool(a))
	}
	return nil
}

func readTransactionArgument(r io.Reader) (TransactionArgument, error) {
	idx, err := bcs.ReadVariantIndex(r)
	if err != nil {
		return nil, err
	}

	// Variants are a single byte wide.  Larger indices must not be
	// truncated onto a valid kind.
	if idx > math.MaxUint8 {
		return nil, fmt.Errorf("%w: unknown variant %d",
			ErrInvalidArgument, idx)
	}

	switch ArgKind(idx) {
	case KindU64:
		v, err := bcs.ReadU64(r)
		if err != nil {
			return nil, err
		}
		return U64Argument(v), nil

	case KindU128:
		v, err := bcs.ReadU128(r)
		if err != nil {
			return nil, err
		}
		return U128Argument(v), nil

	case KindAddress:
		var a AddressArgument
		if _, err := io.ReadFull(r, a[:]); err != nil {
			return nil, err
		}
		return a, nil

	case KindU8Vector:
		b, err := bcs.ReadBytes(r)
		if err != nil {
			return nil, err
		}
		return U8VectorArgument(b), nil

	case KindBool:
		v, err := bcs.ReadBool(r)
		if err != nil {
			return nil, err
		}
		return BoolArgument(v), nil
	}

	if idx == 0 {
		return nil, fmt.Errorf("%w: u8", ErrUnsupportedArgument)
	}
	return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidArgument, idx)
}
