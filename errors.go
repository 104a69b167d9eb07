package asefile

import (
	"errors"

	"github.com/B-Reif/asefile/internal/aseio"
)

// Errors re-exported from internal/aseio.
var (
	// ErrTruncated is returned when a chunk's bytes end before its
	// declared content does.
	ErrTruncated = aseio.ErrTruncated

	// ErrInvalidUTF8 is returned when a length-prefixed string's bytes
	// are not valid UTF-8.
	ErrInvalidUTF8 = aseio.ErrInvalidUTF8

	// ErrStringTooLong is returned when encoding a string that does not
	// fit the wire format's 16-bit length prefix.
	ErrStringTooLong = aseio.ErrStringTooLong
)

// Errors specific to chunk decoding and validation.
var (
	// ErrBadPaletteIndices is returned when a palette chunk's last color
	// index precedes its first.
	ErrBadPaletteIndices = errors.New("asefile: bad palette color indices")

	// ErrIndexOutOfRange is returned when an indexed pixel references a
	// palette index with no corresponding entry.
	ErrIndexOutOfRange = errors.New("asefile: palette index out of range")

	// ErrUnsupportedChunk is returned by DecodeChunk for chunk types this
	// package does not decode.
	ErrUnsupportedChunk = errors.New("asefile: unsupported chunk type")
)
