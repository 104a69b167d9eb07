package asefile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeChunk(t *testing.T) {
	t.Parallel()

	t.Run("palette", func(t *testing.T) {
		t.Parallel()

		buf := buildPaletteChunk(t, 0, []testPaletteEntry{
			{rgba: [4]uint8{255, 0, 0, 255}},
		})
		c, err := DecodeChunk(ChunkTypePalette, buf)
		require.NoError(t, err)
		assert.Equal(t, ChunkTypePalette, c.ChunkType())

		p, ok := c.(*ColorPalette)
		require.True(t, ok)
		assert.Equal(t, uint32(1), p.NumColors())
	})

	t.Run("slice", func(t *testing.T) {
		t.Parallel()

		buf := buildSliceChunk(t, "hitbox", 0, testSliceKeys(1, false, false))
		c, err := DecodeChunk(ChunkTypeSlice, buf)
		require.NoError(t, err)
		assert.Equal(t, ChunkTypeSlice, c.ChunkType())

		s, ok := c.(*Slice)
		require.True(t, ok)
		assert.Equal(t, "hitbox", s.Name)
	})
}

func TestDecodeChunkUnsupported(t *testing.T) {
	t.Parallel()

	_, err := DecodeChunk(ChunkTypeCel, []byte{1, 2, 3})
	require.ErrorIs(t, err, ErrUnsupportedChunk)
	assert.ErrorContains(t, err, "cel")
	assert.ErrorContains(t, err, "0x2005")
}

func TestChunkTypeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		typ  ChunkType
		want string
	}{
		{ChunkTypeOldPalette256, "old palette (256)"},
		{ChunkTypeLayer, "layer"},
		{ChunkTypeCel, "cel"},
		{ChunkTypeTags, "tags"},
		{ChunkTypePalette, "palette"},
		{ChunkTypeUserData, "user data"},
		{ChunkTypeSlice, "slice"},
		{ChunkTypeTileset, "tileset"},
		{ChunkType(0x9999), "ChunkType(0x9999)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.typ.String())
	}
}
