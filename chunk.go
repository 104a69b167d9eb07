package asefile

import "fmt"

// ChunkType identifies a chunk record within an Aseprite frame.
type ChunkType uint16

// Chunk ids defined by the file format. This package decodes the palette
// and slice families; the rest are listed so callers dispatching over a
// frame's chunks can name what they skip.
const (
	ChunkTypeOldPalette256 ChunkType = 0x0004
	ChunkTypeOldPalette64  ChunkType = 0x0011
	ChunkTypeLayer         ChunkType = 0x2004
	ChunkTypeCel           ChunkType = 0x2005
	ChunkTypeCelExtra      ChunkType = 0x2006
	ChunkTypeColorProfile  ChunkType = 0x2007
	ChunkTypeExternalFiles ChunkType = 0x2008
	ChunkTypeMask          ChunkType = 0x2016
	ChunkTypePath          ChunkType = 0x2017
	ChunkTypeTags          ChunkType = 0x2018
	ChunkTypePalette       ChunkType = 0x2019
	ChunkTypeUserData      ChunkType = 0x2020
	ChunkTypeSlice         ChunkType = 0x2022
	ChunkTypeTileset       ChunkType = 0x2023
)

// String returns the human-readable name of the chunk type.
func (t ChunkType) String() string {
	switch t {
	case ChunkTypeOldPalette256:
		return "old palette (256)"
	case ChunkTypeOldPalette64:
		return "old palette (64)"
	case ChunkTypeLayer:
		return "layer"
	case ChunkTypeCel:
		return "cel"
	case ChunkTypeCelExtra:
		return "cel extra"
	case ChunkTypeColorProfile:
		return "color profile"
	case ChunkTypeExternalFiles:
		return "external files"
	case ChunkTypeMask:
		return "mask"
	case ChunkTypePath:
		return "path"
	case ChunkTypeTags:
		return "tags"
	case ChunkTypePalette:
		return "palette"
	case ChunkTypeUserData:
		return "user data"
	case ChunkTypeSlice:
		return "slice"
	case ChunkTypeTileset:
		return "tileset"
	default:
		return fmt.Sprintf("ChunkType(0x%04x)", uint16(t))
	}
}

// Chunk is a decoded chunk record.
type Chunk interface {
	ChunkType() ChunkType
}

// Interface compliance.
var (
	_ Chunk = (*ColorPalette)(nil)
	_ Chunk = (*Slice)(nil)
)

// DecodeChunk decodes a chunk payload of the given type.
//
// The payload must already be isolated to one chunk by the caller; this
// package never locates chunk boundaries itself. Types outside the palette
// and slice families fail with ErrUnsupportedChunk.
func (d *Decoder) DecodeChunk(t ChunkType, data []byte) (Chunk, error) {
	switch t {
	case ChunkTypePalette:
		return d.DecodePalette(data)
	case ChunkTypeSlice:
		return d.DecodeSlice(data)
	default:
		return nil, fmt.Errorf("%w: %s (0x%04x)", ErrUnsupportedChunk, t, uint16(t))
	}
}
