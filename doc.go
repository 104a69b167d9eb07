// Package asefile decodes chunk records from Aseprite sprite files into
// strongly-typed values.
//
// The package operates on chunk payloads that a caller has already isolated
// from the container: a dispatcher walking the file's frames hands each
// decoder one chunk's bytes, with the chunk header stripped and the length
// known. Two chunk families are decoded here:
//   - Palette chunks (0x2019): the sprite's color table, a sparse mapping
//     from color index to RGBA entry with optional names
//   - Slice chunks (0x2022): named regions with per-frame geometry and
//     flag-gated nine-slice and pivot sub-records
//
// All integers are little-endian on the wire. Decoding is all-or-nothing:
// truncated buffers, invalid UTF-8 strings, and inverted palette index
// ranges abort the chunk with a descriptive error, and no partial values
// are returned.
//
// # Quick Start
//
// Decode a palette chunk and validate indexed pixels against it:
//
//	palette, err := asefile.DecodePalette(payload)
//	if err != nil {
//	    return err
//	}
//	err = palette.ValidateIndexedPixels(pixels)
//
// Dispatch by chunk id when walking a frame:
//
//	chunk, err := asefile.DecodeChunk(asefile.ChunkTypeSlice, payload)
//
// # Concurrency
//
// Decoded values are immutable and safe to share. Each decode call owns its
// own cursor, so independent chunks may be decoded in parallel; DecodeChunks
// does this for a batch of payloads:
//
//	d := asefile.NewDecoder(asefile.WithWorkers(4))
//	chunks, err := d.DecodeChunks(raw)
package asefile
