package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/hashicorp/golang-lru/arc/v2"

	"github.com/IvanBrykalov/dashcache/harness"
)

// result is the outcome of one trace replay.
type result struct {
	name         string
	capacity     int
	hits, misses uint64
	promotions   uint64
	evictions    uint64
	resident     int
	elapsed      time.Duration
}

func (r result) hitRatio() float64 {
	if total := r.hits + r.misses; total > 0 {
		return float64(r.hits) / float64(total)
	}
	return 0
}

// checkEvery bounds how often a replay polls for cancellation.
const checkEvery = 4096

// replay drives h with Get-then-Put over trace.
func replay(ctx context.Context, h *harness.Handle, trace []int64) (result, error) {
	start := time.Now()
	var r result
	for i, k := range trace {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return r, ctx.Err()
		}
		if h.Get(k) == harness.Miss {
			r.misses++
			h.Put(k, k)
		} else {
			r.hits++
		}
	}
	s := h.Stats()
	r.promotions = s.Promotions
	r.evictions = s.Evictions
	r.resident = h.Len()
	r.elapsed = time.Since(start)
	return r, nil
}

// replayARC runs the same protocol against hashicorp's ARC as a reference.
func replayARC(ctx context.Context, trace []int64, capacity int) (result, error) {
	c, err := arc.NewARC[int64, int64](capacity)
	if err != nil {
		return result{}, fmt.Errorf("arc baseline: %w", err)
	}
	start := time.Now()
	r := result{name: "arc (baseline)", capacity: capacity}
	for i, k := range trace {
		if i%checkEvery == 0 && ctx.Err() != nil {
			return r, ctx.Err()
		}
		if _, ok := c.Get(k); ok {
			r.hits++
		} else {
			r.misses++
			c.Add(k, k)
		}
	}
	r.resident = c.Len()
	r.elapsed = time.Since(start)
	return r, nil
}

func report(w io.Writer, cfg simConfig, results []result) {
	fmt.Fprintf(w, "topology=%s %s\n", cfg.settings.Topology, traceSource(cfg))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "policy\tcapacity\thits\tmisses\thit-ratio\tpromotions\tevictions\tresident\telapsed")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.4f\t%d\t%d\t%d\t%v\n",
			r.name, r.capacity, r.hits, r.misses, r.hitRatio(),
			r.promotions, r.evictions, r.resident, r.elapsed.Round(time.Millisecond))
	}
	_ = tw.Flush()
}
