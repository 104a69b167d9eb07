package asefile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaletteRoundTrip(t *testing.T) {
	t.Parallel()

	original := buildPaletteChunk(t, 8, []testPaletteEntry{
		{rgba: [4]uint8{255, 0, 0, 255}},
		{rgba: [4]uint8{0, 255, 0, 128}, name: "Grass", hasName: true},
		{rgba: [4]uint8{0, 0, 255, 0}, name: "", hasName: true},
		{rgba: [4]uint8{7, 7, 7, 7}, name: "héllo ✓", hasName: true},
	})

	p, err := DecodePalette(original)
	require.NoError(t, err)

	encoded, err := EncodePalette(p)
	require.NoError(t, err)
	assert.Equal(t, original, encoded)

	again, err := DecodePalette(encoded)
	require.NoError(t, err)
	assert.Equal(t, p, again)
}

func TestSliceRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		flags     uint32
		with9     bool
		withPivot bool
	}{
		{"plain", 0, false, false},
		{"nine patch", sliceFlagNinePatch, true, false},
		{"pivot", sliceFlagHasPivot, false, true},
		{"nine patch and pivot", sliceFlagNinePatch | sliceFlagHasPivot, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			original := buildSliceChunk(t, "walk/feet", tt.flags, testSliceKeys(3, tt.with9, tt.withPivot))

			s, err := DecodeSlice(original)
			require.NoError(t, err)

			encoded, err := EncodeSlice(s)
			require.NoError(t, err)
			assert.Equal(t, original, encoded)

			again, err := DecodeSlice(encoded)
			require.NoError(t, err)
			assert.Equal(t, s, again)
		})
	}
}

func TestEncodePaletteEmpty(t *testing.T) {
	t.Parallel()

	_, err := EncodePalette(&ColorPalette{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "empty palette")
}

func TestEncodePaletteNonContiguous(t *testing.T) {
	t.Parallel()

	p := &ColorPalette{entries: map[uint32]ColorPaletteEntry{
		0: {id: 0, rgba8: [4]uint8{1, 1, 1, 255}},
		2: {id: 2, rgba8: [4]uint8{2, 2, 2, 255}},
	}}

	_, err := EncodePalette(p)
	require.Error(t, err)
	assert.ErrorContains(t, err, "not contiguous")
	assert.ErrorContains(t, err, "[0, 2]")
}

func TestEncodeSliceMixedKeys(t *testing.T) {
	t.Parallel()

	t.Run("slice9 differs", func(t *testing.T) {
		t.Parallel()

		keys := testSliceKeys(2, true, false)
		keys[1].Slice9 = nil
		_, err := EncodeSlice(&Slice{Name: "mixed", Keys: keys})
		require.Error(t, err)
		assert.ErrorContains(t, err, "slice key 1")
		assert.ErrorContains(t, err, "slice9 presence differs across keys")
	})

	t.Run("pivot differs", func(t *testing.T) {
		t.Parallel()

		keys := testSliceKeys(3, false, false)
		keys[2].Pivot = &SlicePivot{X: 1, Y: 1}
		_, err := EncodeSlice(&Slice{Name: "mixed", Keys: keys})
		require.Error(t, err)
		assert.ErrorContains(t, err, "slice key 2")
		assert.ErrorContains(t, err, "pivot presence differs across keys")
	})
}

func TestEncodeSliceNoKeys(t *testing.T) {
	t.Parallel()

	encoded, err := EncodeSlice(&Slice{Name: "empty"})
	require.NoError(t, err)

	// Bytes 4..8 are the flags word; with no keys there is nothing to
	// gate, so it encodes as zero.
	assert.Equal(t, []byte{0, 0, 0, 0}, encoded[4:8])

	s, err := DecodeSlice(encoded)
	require.NoError(t, err)
	assert.Equal(t, "empty", s.Name)
	assert.Empty(t, s.Keys)
}

func TestEncodeSliceNameTooLong(t *testing.T) {
	t.Parallel()

	_, err := EncodeSlice(&Slice{Name: strings.Repeat("a", 1<<16)})
	require.ErrorIs(t, err, ErrStringTooLong)
	assert.ErrorContains(t, err, "slice name")
}

func TestEncodePaletteNameTooLong(t *testing.T) {
	t.Parallel()

	p := &ColorPalette{entries: map[uint32]ColorPaletteEntry{
		3: {id: 3, rgba8: [4]uint8{9, 9, 9, 255}, name: strings.Repeat("b", 1<<16), hasName: true},
	}}

	_, err := EncodePalette(p)
	require.ErrorIs(t, err, ErrStringTooLong)
	assert.ErrorContains(t, err, "palette entry 3 name")
}
