package cache

import (
	"fmt"
	"time"

	"github.com/IvanBrykalov/dashcache/internal/util"
	"github.com/IvanBrykalov/dashcache/policy"
	"github.com/IvanBrykalov/dashcache/policy/fifo"
	"github.com/IvanBrykalov/dashcache/policy/lfu"
	"github.com/IvanBrykalov/dashcache/policy/lifo"
	"github.com/IvanBrykalov/dashcache/policy/lru"
)

// Clock provides time in UnixNano; useful for deterministic tests.
type Clock interface{ NowUnixNano() int64 }

// Options configures both topologies. Sizes are validated by the
// constructors and never clamped; the remaining zero values are safe:
//   - Policy zero value => ClassicLRU
//   - nil Hash         => FNV-1a over the key (see internal/util)
//   - nil Metrics      => NoopMetrics
//   - nil Clock        => time.Now()
type Options[K comparable, V any] struct {
	// Buckets is the number of buckets of an AssociativeCache.
	Buckets int

	// Segments is the number of segments of a Dash.
	Segments int
	// SegmentSize is the number of primary buckets per Dash segment.
	SegmentSize int
	// StashSize is the number of stash buckets per Dash segment.
	StashSize int

	// BucketSize is the entry capacity of every bucket (both topologies).
	BucketSize int

	// Policy is applied to every primary (Dash) or flat (AssociativeCache)
	// bucket. Dash stash buckets are always FIFO.
	Policy policy.Kind

	// Hash maps a key to the 64-bit value used for every routing level.
	Hash func(K) uint64

	// OnEvict is called when an entry leaves the cache because a bucket
	// was full. Entries displaced from a primary bucket back into the stash
	// are still resident and are not reported.
	OnEvict func(k K, v V, reason EvictReason)
	Metrics Metrics

	// Clock allows overriding time source (tests). Nil => time.Now().
	Clock Clock
}

// withDefaults fills the optional fields.
func (o Options[K, V]) withDefaults() Options[K, V] {
	if o.Hash == nil {
		o.Hash = util.Fnv64a[K]
	}
	if o.Metrics == nil {
		o.Metrics = NoopMetrics{}
	}
	return o
}

// now reads the configured clock.
func (o Options[K, V]) now() int64 {
	if o.Clock != nil {
		return o.Clock.NowUnixNano()
	}
	return time.Now().UnixNano()
}

func (o Options[K, V]) validateAssociative() error {
	if err := positive("Buckets", o.Buckets); err != nil {
		return err
	}
	return positive("BucketSize", o.BucketSize)
}

func (o Options[K, V]) validateDash() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"Segments", o.Segments},
		{"SegmentSize", o.SegmentSize},
		{"StashSize", o.StashSize},
		{"BucketSize", o.BucketSize},
	} {
		if err := positive(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

func positive(field string, v int) error {
	if v <= 0 {
		return fmt.Errorf("%w: %s must be > 0, got %d", ErrInvalidConfig, field, v)
	}
	return nil
}

// policyFor resolves a Kind to its factory.
func policyFor[K comparable, V any](k policy.Kind) (policy.Policy[K, V], error) {
	switch k {
	case policy.ClassicLRU:
		return lru.New[K, V](), nil
	case policy.TimestampLRU:
		return lru.NewTimestamp[K, V](), nil
	case policy.Fifo:
		return fifo.New[K, V](), nil
	case policy.Lifo:
		return lifo.New[K, V](), nil
	case policy.Lfu:
		return lfu.New[K, V](), nil
	default:
		return nil, fmt.Errorf("%w: %w: %v", ErrInvalidConfig, policy.ErrUnknownPolicy, k)
	}
}
