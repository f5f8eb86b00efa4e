package cache

// EvictReason explains why an entry left its bucket.
type EvictReason int

const (
	// EvictPolicy: removed by the configured policy from a full bucket.
	EvictPolicy EvictReason = iota
	// EvictStash: removed by FIFO from a full Dash stash bucket.
	EvictStash
	// EvictDisplaced: pushed out of a full primary bucket by a promotion
	// and moved back into the stash. The entry stays resident.
	EvictDisplaced
)

// String returns a stable label for r.
func (r EvictReason) String() string {
	switch r {
	case EvictStash:
		return "stash"
	case EvictDisplaced:
		return "displaced"
	default:
		return "policy"
	}
}

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
type Metrics interface {
	Hit()
	Miss()
	Evict(reason EvictReason)
	Promote()
	Size(entries int)
}

// NoopMetrics is a drop-in Metrics implementation that does nothing.
type NoopMetrics struct{}

func (NoopMetrics) Hit()              {}
func (NoopMetrics) Miss()             {}
func (NoopMetrics) Evict(EvictReason) {}
func (NoopMetrics) Promote()          {}
func (NoopMetrics) Size(int)          {}

// Ensure NoopMetrics implements the Metrics interface at compile time.
var _ Metrics = NoopMetrics{}

// Stats are plain counters kept by every cache instance.
type Stats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64 // entries that left the cache (EvictPolicy, EvictStash)
	// Promotions counts stash hits moved into a primary bucket (Dash only).
	Promotions uint64
	// Displacements counts primary entries swapped back into the stash.
	Displacements uint64
}

// HitRatio returns Hits/(Hits+Misses), or 0 before the first lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
