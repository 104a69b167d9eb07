package asefile

import (
	"fmt"

	"github.com/B-Reif/asefile/internal/aseio"
)

// Slice chunk flag bits. Flags are read once per chunk and gate the optional
// sub-records of every key.
const (
	sliceFlagNinePatch = 1 << 0
	sliceFlagHasPivot  = 1 << 1
)

// Fixed key record sizes, in bytes.
const (
	sliceKeyBaseLen = 20 // from_frame + origin + size
	slice9Len       = 16
	slicePivotLen   = 8
)

// Slice is a named region of the sprite with per-frame geometry and
// optional UserData.
type Slice struct {
	// Name of the slice. Not guaranteed to be unique across a document.
	Name string

	// Keys describe the shape and position of the slice over the
	// animation, in on-disk (chronological) order.
	Keys []SliceKey

	// UserData is attached by a separate chunk-merging step after decode;
	// a freshly decoded Slice always has a nil UserData.
	UserData *UserData
}

// SliceKey describes the position and shape of a Slice starting at a given
// frame. A key stays active until the next key in the sequence or the end of
// the animation.
type SliceKey struct {
	// FromFrame is the frame index from which this key becomes active.
	FromFrame uint32

	// Origin of the slice in sprite space.
	Origin SliceOrigin

	// Size of the slice in pixels.
	Size SliceSize

	// Slice9 is the nine-slice scaling metadata, nil unless the chunk's
	// nine-patch flag is set.
	Slice9 *Slice9

	// Pivot is the pivot-point metadata, nil unless the chunk's pivot
	// flag is set.
	Pivot *SlicePivot
}

// Slice9 divides a Slice into nine regions for nine-slice scaling. The
// center rectangle is relative to the slice's own bounds.
type Slice9 struct {
	CenterX      int32
	CenterY      int32
	CenterWidth  uint32
	CenterHeight uint32
}

// SliceOrigin is a Slice's position relative to the sprite canvas.
type SliceOrigin struct {
	X int32
	Y int32
}

// SliceSize is the size of a Slice in pixels. A width or height of 0 means
// the slice is hidden from its key's frame onward.
type SliceSize struct {
	Width  uint32
	Height uint32
}

// SlicePivot is a pivot offset relative to the Slice's origin.
type SlicePivot struct {
	X int32
	Y int32
}

// UserData is metadata a user attached to a slice. It is populated by the
// user-data chunk that follows the slice chunk, merged in a separate step.
type UserData struct {
	Text  string
	Color [4]uint8
}

// ChunkType returns ChunkTypeSlice.
func (s *Slice) ChunkType() ChunkType {
	return ChunkTypeSlice
}

// DecodeSlice decodes a slice chunk payload.
//
// The chunk-level flags gate the slice9 and pivot sub-records uniformly
// across every key. Decoding is all-or-nothing: a failure partway through
// any key aborts the whole chunk.
func (d *Decoder) DecodeSlice(data []byte) (*Slice, error) {
	r := aseio.NewReader(data)

	numKeys, err := r.DWord()
	if err != nil {
		return nil, fmt.Errorf("slice header: %w", err)
	}
	flags, err := r.DWord()
	if err != nil {
		return nil, fmt.Errorf("slice header: %w", err)
	}
	if err := r.SkipReserved(4); err != nil {
		return nil, fmt.Errorf("slice header: %w", err)
	}
	name, err := r.String()
	if err != nil {
		return nil, fmt.Errorf("slice name: %w", err)
	}

	hasSlice9 := flags&sliceFlagNinePatch != 0
	hasPivot := flags&sliceFlagHasPivot != 0

	keyLen := sliceKeyBaseLen
	if hasSlice9 {
		keyLen += slice9Len
	}
	if hasPivot {
		keyLen += slicePivotLen
	}
	if need := uint64(numKeys) * uint64(keyLen); need > uint64(r.Remaining()) {
		return nil, fmt.Errorf("%w: %d slice keys need %d bytes, have %d",
			ErrTruncated, numKeys, need, r.Remaining())
	}

	keys := make([]SliceKey, 0, numKeys)
	for i := uint32(0); i < numKeys; i++ {
		key, err := decodeSliceKey(r, hasSlice9, hasPivot)
		if err != nil {
			return nil, fmt.Errorf("slice key %d: %w", i, err)
		}
		keys = append(keys, key)
	}

	s := &Slice{Name: name, Keys: keys}
	d.log().Debug("decoded slice chunk", "name", name, "keys", len(keys), "slice9", hasSlice9, "pivot", hasPivot)
	return s, nil
}

func decodeSliceKey(r *aseio.Reader, hasSlice9, hasPivot bool) (SliceKey, error) {
	var key SliceKey
	var err error

	key.FromFrame, err = r.DWord()
	if err != nil {
		return SliceKey{}, err
	}
	key.Origin, err = decodeSliceOrigin(r)
	if err != nil {
		return SliceKey{}, err
	}
	key.Size, err = decodeSliceSize(r)
	if err != nil {
		return SliceKey{}, err
	}
	if hasSlice9 {
		s9, err := decodeSlice9(r)
		if err != nil {
			return SliceKey{}, err
		}
		key.Slice9 = &s9
	}
	if hasPivot {
		pivot, err := decodeSlicePivot(r)
		if err != nil {
			return SliceKey{}, err
		}
		key.Pivot = &pivot
	}
	return key, nil
}

func decodeSliceOrigin(r *aseio.Reader) (SliceOrigin, error) {
	var o SliceOrigin
	var err error
	if o.X, err = r.Long(); err != nil {
		return SliceOrigin{}, err
	}
	if o.Y, err = r.Long(); err != nil {
		return SliceOrigin{}, err
	}
	return o, nil
}

func decodeSliceSize(r *aseio.Reader) (SliceSize, error) {
	var s SliceSize
	var err error
	if s.Width, err = r.DWord(); err != nil {
		return SliceSize{}, err
	}
	if s.Height, err = r.DWord(); err != nil {
		return SliceSize{}, err
	}
	return s, nil
}

func decodeSlice9(r *aseio.Reader) (Slice9, error) {
	var s9 Slice9
	var err error
	if s9.CenterX, err = r.Long(); err != nil {
		return Slice9{}, err
	}
	if s9.CenterY, err = r.Long(); err != nil {
		return Slice9{}, err
	}
	if s9.CenterWidth, err = r.DWord(); err != nil {
		return Slice9{}, err
	}
	if s9.CenterHeight, err = r.DWord(); err != nil {
		return Slice9{}, err
	}
	return s9, nil
}

func decodeSlicePivot(r *aseio.Reader) (SlicePivot, error) {
	var p SlicePivot
	var err error
	if p.X, err = r.Long(); err != nil {
		return SlicePivot{}, err
	}
	if p.Y, err = r.Long(); err != nil {
		return SlicePivot{}, err
	}
	return p, nil
}
