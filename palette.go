package asefile

import (
	"fmt"
	"image/color"

	"github.com/B-Reif/asefile/internal/aseio"
)

// paletteFlagHasName gates the optional name string of a palette entry.
const paletteFlagHasName = 1 << 0

// paletteEntryMinLen is the smallest possible entry: flags word + RGBA bytes.
const paletteEntryMinLen = 6

// ColorPalette is the color palette embedded in the file.
//
// Entries are keyed by their color index. The format does not guarantee the
// indices to be contiguous from zero, so the palette is a sparse mapping
// rather than a dense array. A ColorPalette is immutable after decode and
// safe for concurrent readers.
type ColorPalette struct {
	entries map[uint32]ColorPaletteEntry
}

// ColorPaletteEntry is a single entry in a ColorPalette.
type ColorPaletteEntry struct {
	id      uint32
	rgba8   [4]uint8
	name    string
	hasName bool
}

// IndexedPixel is an indexed-mode pixel value: an index into the sprite's
// color palette rather than a direct color.
type IndexedPixel uint8

// ChunkType returns ChunkTypePalette.
func (p *ColorPalette) ChunkType() ChunkType {
	return ChunkTypePalette
}

// NumColors returns the total number of colors in the palette.
func (p *ColorPalette) NumColors() uint32 {
	return uint32(len(p.entries))
}

// Color looks up the entry at the given index.
//
// The file format does not guarantee the color indices to cover
// 0..NumColors(), so a lookup inside that range can still miss.
func (p *ColorPalette) Color(index uint32) (ColorPaletteEntry, bool) {
	e, ok := p.entries[index]
	return e, ok
}

// ValidateIndexedPixels verifies that every pixel value references an
// existing palette entry. It fails on the first violation, naming the
// offending index and the palette's entry count, and never mutates the
// palette or the pixel data.
func (p *ColorPalette) ValidateIndexedPixels(pixels []IndexedPixel) error {
	for _, px := range pixels {
		if _, ok := p.entries[uint32(px)]; !ok {
			return fmt.Errorf("%w: index %d (palette has %d entries)", ErrIndexOutOfRange, px, p.NumColors())
		}
	}
	return nil
}

// ID returns the index this entry occupies in the palette.
func (e ColorPaletteEntry) ID() uint32 {
	return e.id
}

// RawRGBA8 returns the four 8-bit channel values as an array, in
// red, green, blue, alpha order.
func (e ColorPaletteEntry) RawRGBA8() [4]uint8 {
	return e.rgba8
}

// Red returns the red channel of the color.
func (e ColorPaletteEntry) Red() uint8 {
	return e.rgba8[0]
}

// Green returns the green channel of the color.
func (e ColorPaletteEntry) Green() uint8 {
	return e.rgba8[1]
}

// Blue returns the blue channel of the color.
func (e ColorPaletteEntry) Blue() uint8 {
	return e.rgba8[2]
}

// Alpha returns the alpha value of the color (0 = fully transparent,
// 255 = fully opaque).
func (e ColorPaletteEntry) Alpha() uint8 {
	return e.rgba8[3]
}

// Name returns the entry's label and whether one was present in the chunk.
// Names are usually absent in practice.
func (e ColorPaletteEntry) Name() (string, bool) {
	return e.name, e.hasName
}

// NRGBA returns the entry as a non-alpha-premultiplied color.
func (e ColorPaletteEntry) NRGBA() color.NRGBA {
	return color.NRGBA{R: e.rgba8[0], G: e.rgba8[1], B: e.rgba8[2], A: e.rgba8[3]}
}

// DecodePalette decodes a palette chunk payload.
//
// The chunk's first/last color indices determine how many entries follow;
// a chunk whose last index precedes its first fails with
// ErrBadPaletteIndices carrying both values. Decoding is all-or-nothing.
func (d *Decoder) DecodePalette(data []byte) (*ColorPalette, error) {
	r := aseio.NewReader(data)

	// Total entry count is informational only; storage is sized from the
	// index range below.
	if _, err := r.DWord(); err != nil {
		return nil, fmt.Errorf("palette header: %w", err)
	}
	first, err := r.DWord()
	if err != nil {
		return nil, fmt.Errorf("palette header: %w", err)
	}
	last, err := r.DWord()
	if err != nil {
		return nil, fmt.Errorf("palette header: %w", err)
	}
	if err := r.SkipReserved(8); err != nil {
		return nil, fmt.Errorf("palette header: %w", err)
	}

	if last < first {
		return nil, fmt.Errorf("%w: first=%d last=%d", ErrBadPaletteIndices, first, last)
	}

	// Widened math: last=0xFFFFFFFF must not overflow the count.
	count := uint64(last) - uint64(first) + 1
	if need := count * paletteEntryMinLen; need > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: %d palette entries need at least %d bytes, have %d",
			ErrTruncated, count, need, r.Remaining())
	}

	entries := make(map[uint32]ColorPaletteEntry, count)
	for i := uint64(0); i < count; i++ {
		id := first + uint32(i)
		entry, err := decodePaletteEntry(r, id)
		if err != nil {
			return nil, fmt.Errorf("palette entry %d: %w", id, err)
		}
		// Ids derive from the entry position, so one chunk cannot produce
		// duplicates; if it ever did, the last write would win silently.
		entries[id] = entry
	}

	p := &ColorPalette{entries: entries}
	d.log().Debug("decoded palette chunk", "colors", len(entries), "first", first, "last", last)
	return p, nil
}

func decodePaletteEntry(r *aseio.Reader, id uint32) (ColorPaletteEntry, error) {
	entry := ColorPaletteEntry{id: id}

	flags, err := r.Word()
	if err != nil {
		return ColorPaletteEntry{}, err
	}
	for ch := range entry.rgba8 {
		entry.rgba8[ch], err = r.Byte()
		if err != nil {
			return ColorPaletteEntry{}, err
		}
	}
	if flags&paletteFlagHasName != 0 {
		entry.name, err = r.String()
		if err != nil {
			return ColorPaletteEntry{}, err
		}
		entry.hasName = true
	}
	return entry, nil
}
