package asefile

import (
	"errors"
	"fmt"
	"math"

	"github.com/B-Reif/asefile/internal/aseio"
)

// EncodePalette encodes a palette using the palette chunk byte layout.
//
// The layout can only express a contiguous index range, so the palette's
// ids must cover [first, last] without gaps and must not be empty.
func EncodePalette(p *ColorPalette) ([]byte, error) {
	if len(p.entries) == 0 {
		return nil, errors.New("asefile: cannot encode an empty palette")
	}

	first, last := uint32(math.MaxUint32), uint32(0)
	for id := range p.entries {
		if id < first {
			first = id
		}
		if id > last {
			last = id
		}
	}
	if uint64(last)-uint64(first)+1 != uint64(len(p.entries)) {
		return nil, fmt.Errorf("asefile: palette ids not contiguous: %d entries spanning [%d, %d]",
			len(p.entries), first, last)
	}

	var w aseio.Writer
	w.DWord(uint32(len(p.entries)))
	w.DWord(first)
	w.DWord(last)
	w.Reserved(8)

	for id := first; ; id++ {
		e := p.entries[id]
		var flags uint16
		if e.hasName {
			flags |= paletteFlagHasName
		}
		w.Word(flags)
		w.Byte(e.rgba8[0])
		w.Byte(e.rgba8[1])
		w.Byte(e.rgba8[2])
		w.Byte(e.rgba8[3])
		if e.hasName {
			if err := w.String(e.name); err != nil {
				return nil, fmt.Errorf("palette entry %d name: %w", id, err)
			}
		}
		if id == last {
			break
		}
	}
	return w.Bytes(), nil
}

// EncodeSlice encodes a slice using the slice chunk byte layout.
//
// The chunk-level flags are derived from the first key's optional
// sub-records; every key must agree on slice9 and pivot presence. A slice
// with no keys encodes with zero flags.
func EncodeSlice(s *Slice) ([]byte, error) {
	var flags uint32
	if len(s.Keys) > 0 {
		if s.Keys[0].Slice9 != nil {
			flags |= sliceFlagNinePatch
		}
		if s.Keys[0].Pivot != nil {
			flags |= sliceFlagHasPivot
		}
	}
	for i, key := range s.Keys {
		if (key.Slice9 != nil) != (flags&sliceFlagNinePatch != 0) {
			return nil, fmt.Errorf("asefile: slice key %d: slice9 presence differs across keys", i)
		}
		if (key.Pivot != nil) != (flags&sliceFlagHasPivot != 0) {
			return nil, fmt.Errorf("asefile: slice key %d: pivot presence differs across keys", i)
		}
	}

	var w aseio.Writer
	w.DWord(uint32(len(s.Keys)))
	w.DWord(flags)
	w.Reserved(4)
	if err := w.String(s.Name); err != nil {
		return nil, fmt.Errorf("slice name: %w", err)
	}

	for _, key := range s.Keys {
		w.DWord(key.FromFrame)
		w.Long(key.Origin.X)
		w.Long(key.Origin.Y)
		w.DWord(key.Size.Width)
		w.DWord(key.Size.Height)
		if key.Slice9 != nil {
			w.Long(key.Slice9.CenterX)
			w.Long(key.Slice9.CenterY)
			w.DWord(key.Slice9.CenterWidth)
			w.DWord(key.Slice9.CenterHeight)
		}
		if key.Pivot != nil {
			w.Long(key.Pivot.X)
			w.Long(key.Pivot.Y)
		}
	}
	return w.Bytes(), nil
}
