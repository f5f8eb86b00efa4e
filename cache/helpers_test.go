package cache

import (
	"testing"
	"time"

	"github.com/IvanBrykalov/dashcache/policy"
)

type fakeClock struct{ t int64 }

func (f *fakeClock) NowUnixNano() int64  { return f.t }
func (f *fakeClock) add(d time.Duration) { f.t += int64(d) }

// identity routes int keys deterministically: key k lands in bucket k mod n
// at every level.
func identity(k int) uint64 { return uint64(k) }

// recMetrics records every Metrics signal.
type recMetrics struct {
	hits, misses, promotes int
	evicts                 map[EvictReason]int
	size                   int
}

func (m *recMetrics) Hit()  { m.hits++ }
func (m *recMetrics) Miss() { m.misses++ }
func (m *recMetrics) Evict(r EvictReason) {
	if m.evicts == nil {
		m.evicts = map[EvictReason]int{}
	}
	m.evicts[r]++
}
func (m *recMetrics) Promote()   { m.promotes++ }
func (m *recMetrics) Size(n int) { m.size = n }

// newFlat builds a single-bucket associative cache so every key collides.
func newFlat(t testing.TB, kind policy.Kind, bucketSize int) *AssociativeCache[int, int] {
	t.Helper()
	c, err := NewAssociative(Options[int, int]{
		Buckets:    1,
		BucketSize: bucketSize,
		Policy:     kind,
		Hash:       identity,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// newSmallDash builds a one-segment Dash with identity routing.
func newSmallDash(t testing.TB, kind policy.Kind, segmentSize, stashSize, bucketSize int) *Dash[int, int] {
	t.Helper()
	d, err := NewDash(Options[int, int]{
		Segments:    1,
		SegmentSize: segmentSize,
		StashSize:   stashSize,
		BucketSize:  bucketSize,
		Policy:      kind,
		Hash:        identity,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func mustGet(t *testing.T, c Cache[int, int], k, want int) {
	t.Helper()
	got, ok := c.Get(k)
	if !ok {
		t.Fatalf("Get(%d): miss, want %v", k, want)
	}
	if got != want {
		t.Fatalf("Get(%d) = %v, want %v", k, got, want)
	}
}

func mustMiss(t *testing.T, c Cache[int, int], k int, why string) {
	t.Helper()
	if v, ok := c.Get(k); ok {
		t.Fatalf("Get(%d) = %v, want miss (%s)", k, v, why)
	}
}

func bucketKeys[K comparable, V any](b *bucket[K, V]) []K {
	out := make([]K, 0, b.size())
	for _, e := range b.entries {
		out = append(out, e.key)
	}
	return out
}
