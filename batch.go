package asefile

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RawChunk pairs a chunk id with its isolated payload bytes, as produced by
// a container-level dispatcher.
type RawChunk struct {
	Type ChunkType
	Data []byte
}

// DecodeChunks decodes a batch of chunk payloads, in parallel when the
// worker configuration allows it.
//
// Results preserve input order. Decoding is all-or-nothing: the first
// failure aborts the batch and no partial results are returned. Each chunk
// owns its own cursor, so parallel decoding needs no coordination beyond
// the result slot per chunk.
func (d *Decoder) DecodeChunks(chunks []RawChunk) ([]Chunk, error) {
	decoded := make([]Chunk, len(chunks))
	if len(chunks) == 0 {
		return decoded, nil
	}

	workers := d.batchWorkers(len(chunks))
	if workers == 1 {
		for i, rc := range chunks {
			c, err := d.DecodeChunk(rc.Type, rc.Data)
			if err != nil {
				return nil, fmt.Errorf("chunk %d: %w", i, err)
			}
			decoded[i] = c
		}
		d.log().Debug("decoded chunk batch", "chunks", len(chunks), "workers", 1)
		return decoded, nil
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(workers)
	for i, rc := range chunks {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := d.DecodeChunk(rc.Type, rc.Data)
			if err != nil {
				return fmt.Errorf("chunk %d: %w", i, err)
			}
			decoded[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	d.log().Debug("decoded chunk batch", "chunks", len(chunks), "workers", workers)
	return decoded, nil
}

// batchWorkers resolves the configured worker count for a batch of n chunks.
func (d *Decoder) batchWorkers(n int) int {
	w := d.workers
	switch {
	case w < 0:
		return 1
	case w == 0:
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	return w
}
