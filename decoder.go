package asefile

import "log/slog"

// Decoder decodes chunk payloads into domain values.
//
// The zero value is ready to use. A Decoder holds no per-call state and is
// safe for concurrent use by multiple goroutines.
type Decoder struct {
	logger  *slog.Logger
	workers int
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithLogger sets the logger used for debug records. A nil logger (the
// default) discards all output.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) {
		d.logger = logger
	}
}

// WithWorkers sets the number of workers used by DecodeChunks.
// Values < 0 force serial decoding. Zero uses automatic heuristics.
// Values > 0 force a specific worker count.
func WithWorkers(n int) Option {
	return func(d *Decoder) {
		d.workers = n
	}
}

// NewDecoder creates a Decoder with the given options.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// log returns the logger, falling back to a discard logger if nil.
func (d *Decoder) log() *slog.Logger {
	if d.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return d.logger
}

var defaultDecoder = &Decoder{}

// DecodePalette decodes a palette chunk payload with a default Decoder.
func DecodePalette(data []byte) (*ColorPalette, error) {
	return defaultDecoder.DecodePalette(data)
}

// DecodeSlice decodes a slice chunk payload with a default Decoder.
func DecodeSlice(data []byte) (*Slice, error) {
	return defaultDecoder.DecodeSlice(data)
}

// DecodeChunk decodes a chunk payload of the given type with a default
// Decoder.
func DecodeChunk(t ChunkType, data []byte) (Chunk, error) {
	return defaultDecoder.DecodeChunk(t, data)
}

// DecodeChunks decodes a batch of chunk payloads with a default Decoder.
func DecodeChunks(chunks []RawChunk) ([]Chunk, error) {
	return defaultDecoder.DecodeChunks(chunks)
}
