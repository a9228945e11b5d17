// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bcs

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"lukechampine.com/uint128"
)

const (
	// MaxSequenceLength is the largest length prefix accepted for byte
	// vectors and sequences.
	MaxSequenceLength = (1 << 31) - 1

	// MaxContainerDepth is the maximum nesting of containers (enums and
	// structs) a decoder accepts.
	MaxContainerDepth = 500

	// maxUleb128Bytes is the maximum number of bytes a ULEB128 encoded
	// uint64 can occupy.
	maxUleb128Bytes = 10

	// maxInitialAlloc is the largest byte vector allocated up front from
	// its length prefix alone.
	maxInitialAlloc = 1 << 16
)

var (
	// ErrNonCanonicalUleb128 is returned when a ULEB128 value is encoded
	// with more bytes than necessary.
	ErrNonCanonicalUleb128 = errors.New("non-canonical uleb128 encoding")

	// ErrOverflow is returned when a decoded integer does not fit the
	// requested range.
	ErrOverflow = errors.New("integer overflow")

	// ErrInvalidBool is returned when a boolean byte is neither 0 nor 1.
	ErrInvalidBool = errors.New("invalid bool")

	// ErrSequenceTooLong is returned when a length prefix exceeds
	// MaxSequenceLength.
	ErrSequenceTooLong = errors.New("sequence length exceeds maximum")

	// ErrTrailingBytes is returned when input remains after a value has
	// been fully decoded.
	ErrTrailingBytes = errors.New("trailing bytes after value")

	// ErrContainerDepth is returned when nesting exceeds MaxContainerDepth.
	ErrContainerDepth = errors.New("container depth limit exceeded")
)

// WriteUleb128 serializes val to w as an unsigned LEB128 integer.
func WriteUleb128(w io.Writer, val uint64) error {
	var buf [maxUleb128Bytes]byte
	n := 0
	for {
		b := byte(val & 0x7f)
		val >>= 7
		if val == 0 {
			buf[n] = b
			n++
			break
		}
		buf[n] = b | 0x80
		n++
	}
	_, err := w.Write(buf[:n])
	return err
}

// ReadUleb128 reads an unsigned LEB128 integer from r.  Values larger than
// max and encodings with redundant trailing groups are rejected.
func ReadUleb128(r io.Reader, max uint64) (uint64, error) {
	var b [1]byte
	var val uint64
	for shift := uint(0); shift < 64; shift += 7 {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return 0, err
		}
		digit := uint64(b[0] & 0x7f)
		if shift == 63 && digit > 1 {
			return 0, ErrOverflow
		}
		val |= digit << shift
		if b[0]&0x80 == 0 {
			if shift > 0 && digit == 0 {
				return 0, ErrNonCanonicalUleb128
			}
			if val > max {
				return 0, fmt.Errorf("%w: %d > %d", ErrOverflow,
					val, max)
			}
			return val, nil
		}
	}
	return 0, ErrOverflow
}

// WriteLen serializes a sequence length prefix.
func WriteLen(w io.Writer, l int) error {
	if l < 0 || uint64(l) > MaxSequenceLength {
		return ErrSequenceTooLong
	}
	return WriteUleb128(w, uint64(l))
}

// ReadLen reads a sequence length prefix.
func ReadLen(r io.Reader) (int, error) {
	l, err := ReadUleb128(r, math.MaxUint64)
	if err != nil {
		return 0, err
	}
	if l > MaxSequenceLength {
		return 0, ErrSequenceTooLong
	}
	return int(l), nil
}

// WriteVariantIndex serializes the discriminant of an enum value.
func WriteVariantIndex(w io.Writer, idx uint32) error {
	return WriteUleb128(w, uint64(idx))
}

// ReadVariantIndex reads the discriminant of an enum value.
func ReadVariantIndex(r io.Reader) (uint32, error) {
	idx, err := ReadUleb128(r, math.MaxUint32)
	if err != nil {
		return 0, err
	}
	return uint32(idx), nil
}

// WriteU8 writes a single byte to w.
func WriteU8(w io.Writer, val uint8) error {
	_, err := w.Write([]byte{val})
	return err
}

// ReadU8 reads a single byte from r.
func ReadU8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// WriteU64 writes the little endian representation of val to w.
func WriteU64(w io.Writer, val uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], val)
	_, err := w.Write(b[:])
	return err
}

// ReadU64 reads a little endian uint64 from r.
func ReadU64(r io.Reader) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// WriteU128 writes the little endian representation of val to w.
func WriteU128(w io.Writer, val uint128.Uint128) error {
	var b [16]byte
	val.PutBytes(b[:])
	_, err := w.Write(b[:])
	return err
}

// ReadU128 reads a little endian 128-bit unsigned integer from r.
func ReadU128(r io.Reader) (uint128.Uint128, error) {
	var b [16]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return uint128.Zero, err
	}
	return uint128.FromBytes(b[:]), nil
}

// WriteBool writes val to w as a single 0 or 1 byte.
func WriteBool(w io.Writer, val bool) error {
	if val {
		return WriteU8(w, 1)
	}
	return WriteU8(w, 0)
}

// ReadBool reads a boolean from r.  Any byte other than 0 or 1 is an error.
func ReadBool(r io.Reader) (bool, error) {
	b, err := ReadU8(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("%w: %#02x", ErrInvalidBool, b)
}

// WriteBytes serializes b to w as a length prefix followed by the bytes
// themselves.
func WriteBytes(w io.Writer, b []byte) error {
	if err := WriteLen(w, len(b)); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

// ReadBytes reads a length prefixed byte vector from r.  The returned slice
// is always non-nil.
func ReadBytes(r io.Reader) ([]byte, error) {
	l, err := ReadLen(r)
	if err != nil {
		return nil, err
	}
	if l <= maxInitialAlloc {
		buf := make([]byte, l)
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, err
		}
		return buf, nil
	}

	// Allocation beyond maxInitialAlloc follows the data actually read.
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, int64(l)); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteString serializes s as a byte vector.
func WriteString(w io.Writer, s string) error {
	if err := WriteLen(w, len(s)); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

// ReadString reads a byte vector from r and returns it as a string.
func ReadString(r io.Reader) (string, error) {
	b, err := ReadBytes(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
