package aseio

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Writer builds a chunk payload by appending little-endian primitives.
// The zero value is ready to use.
type Writer struct {
	buf []byte
}

// Bytes returns the accumulated payload.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Byte appends an unsigned 8-bit value.
func (w *Writer) Byte(v uint8) {
	w.buf = append(w.buf, v)
}

// Word appends an unsigned 16-bit little-endian value.
func (w *Writer) Word(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// DWord appends an unsigned 32-bit little-endian value.
func (w *Writer) DWord(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// Long appends a signed 32-bit little-endian two's-complement value.
func (w *Writer) Long(v int32) {
	w.DWord(uint32(v))
}

// String appends a WORD length prefix followed by the bytes of s.
// The bytes are written as-is; decoding validates UTF-8.
func (w *Writer) String(s string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s))
	}
	w.Word(uint16(len(s)))
	w.buf = append(w.buf, s...)
	return nil
}

// Reserved appends n zero bytes of format padding.
func (w *Writer) Reserved(n int) {
	w.buf = append(w.buf, make([]byte, n)...)
}
