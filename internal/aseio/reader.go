package aseio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Sentinel errors for malformed chunk data.
var (
	// ErrTruncated is returned when a read needs more bytes than remain.
	ErrTruncated = errors.New("asefile: truncated chunk data")

	// ErrInvalidUTF8 is returned when a string's bytes are not valid UTF-8.
	ErrInvalidUTF8 = errors.New("asefile: string is not valid UTF-8")

	// ErrStringTooLong is returned when a string does not fit the WORD
	// length prefix of the wire format.
	ErrStringTooLong = errors.New("asefile: string too long for length prefix")
)

// Reader is a cursor over an immutable byte slice.
//
// Every read advances the cursor and fails with ErrTruncated when fewer
// bytes remain than the primitive needs. A Reader never reads past the end
// of the slice it was created with, and string reads copy their bytes out
// rather than aliasing the input.
type Reader struct {
	data []byte
	off  int
}

// NewReader creates a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// take returns the next n bytes and advances the cursor.
func (r *Reader) take(n int) ([]byte, error) {
	if rem := r.Remaining(); rem < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncated, n, r.off, rem)
	}
	b := r.data[r.off : r.off+n]
	r.off += n
	return b, nil
}

// Byte reads an unsigned 8-bit value.
func (r *Reader) Byte() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Word reads an unsigned 16-bit little-endian value.
func (r *Reader) Word() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// DWord reads an unsigned 32-bit little-endian value.
func (r *Reader) DWord() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// Long reads a signed 32-bit little-endian two's-complement value.
func (r *Reader) Long() (int32, error) {
	v, err := r.DWord()
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// String reads a WORD length prefix followed by that many UTF-8 bytes.
// The returned string is a copy and does not alias the input slice.
func (r *Reader) String() (string, error) {
	n, err := r.Word()
	if err != nil {
		return "", err
	}
	start := r.off
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d bytes at offset %d", ErrInvalidUTF8, n, start)
	}
	return string(b), nil
}

// SkipReserved advances the cursor past n reserved padding bytes without
// interpreting them.
func (r *Reader) SkipReserved(n int) error {
	_, err := r.take(n)
	return err
}
