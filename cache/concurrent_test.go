package cache

import (
	"context"
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/dashcache/policy"
)

// Independent instances share no state: one cache per goroutine replays
// the same trace and every instance ends with identical counters.
// Run with -race to check that nothing package-level is mutated.
func TestIndependentInstances(t *testing.T) {
	t.Parallel()

	const workers = 8
	trace := make([]int, 20_000)
	for i := range trace {
		trace[i] = (i * 7919) % 997
	}

	results := make([]Stats, workers)
	g, ctx := errgroup.WithContext(context.Background())
	for w := range workers {
		g.Go(func() error {
			d, err := NewDash(Options[int, int]{
				Segments: 4, SegmentSize: 8, StashSize: 2, BucketSize: 8, Policy: policy.Lfu,
			})
			if err != nil {
				return err
			}
			defer d.Close()
			for i, k := range trace {
				if i%1024 == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				if _, ok := d.Get(k); !ok {
					d.Put(k, k)
				}
			}
			results[w] = d.Stats()
			if results[w].Hits+results[w].Misses != uint64(len(trace)) {
				return fmt.Errorf("worker %d: %d lookups, want %d", w, results[w].Hits+results[w].Misses, len(trace))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	for w := 1; w < workers; w++ {
		if results[w].Hits != results[0].Hits {
			t.Fatalf("worker %d hits = %d, worker 0 hits = %d", w, results[w].Hits, results[0].Hits)
		}
	}
}
