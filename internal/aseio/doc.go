// Package aseio provides the little-endian primitives that Aseprite chunk
// decoders and encoders are built from.
//
// A Reader is a cursor over one chunk's payload bytes; a Writer is its
// append-only mirror. Both operate on the scalar vocabulary of the file
// format: BYTE (u8), WORD (u16), DWORD (u32), LONG (i32), and STRING
// (WORD length prefix followed by UTF-8 bytes).
package aseio
