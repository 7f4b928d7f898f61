package merklize

import (
	"context"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// LeafHashes is the pair of field elements inserted into the tree for one entry.
type LeafHashes struct {
	Key   *big.Int
	Value *big.Int
}

// HashEntries computes key and value field elements for every entry using up
// to workers goroutines (GOMAXPROCS when workers <= 0). Results are in entry
// order. Entry hashing shares no mutable state, so the order of evaluation
// does not affect the output.
func HashEntries(ctx context.Context, entries []Entry, workers int) ([]LeafHashes, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	out := make([]LeafHashes, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			k, v, err := entries[i].KeyValueHashes()
			if err != nil {
				return err
			}
			out[i] = LeafHashes{Key: k, Value: v}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
