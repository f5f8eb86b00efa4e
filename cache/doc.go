// Package cache provides in-memory associative caches built from small,
// fixed-capacity buckets with bucket-local eviction policies.
//
// Design
//
//   - Buckets: each bucket is an ordered slice of at most BucketSize
//     entries. Lookups are a linear scan, which is cheap for the small
//     bucket sizes these caches are tuned for (8–16 entries). The eviction
//     policy (package policy) only sees the bucket through policy.Hooks.
//
//   - Policies: FIFO, LIFO, LFU, classic LRU (reorders on hit) and
//     timestamp LRU (stamps on hit, never reorders). One policy is applied
//     to all buckets of a cache, chosen by Options.Policy.
//
//   - AssociativeCache: the flat topology, hash mod Buckets picks a bucket.
//
//   - Dash: the two-level topology modeled on scalable extendible hashing.
//     hash mod Segments picks a segment; inside it, new keys are staged in a
//     FIFO stash bucket and promoted into their primary bucket on the first
//     hit. A full primary bucket swaps its victim back into the stash.
//     Lookups check the stash bucket, the primary bucket and the next
//     primary bucket (one probe, no chaining).
//
//   - Duplicate puts never overwrite: Put on a resident key keeps the stored
//     value and only applies the policy's hit effect.
//
//   - Metrics: Options.Metrics receives Hit/Miss/Evict/Promote/Size signals;
//     NoopMetrics is the default and metrics/prom exports them to Prometheus.
//     Every cache also keeps plain counters, see Stats.
//
// Basic usage
//
//	d, err := cache.NewDash[int64, int64](cache.Options[int64, int64]{
//	    Segments:    1,
//	    SegmentSize: 28,
//	    StashSize:   4,
//	    BucketSize:  16,
//	    Policy:      policy.ClassicLRU,
//	})
//	if err != nil {
//	    return err
//	}
//	if _, ok := d.Get(42); !ok {
//	    d.Put(42, 1) // Get before Put: Dash.Put does not search primaries
//	}
//
// Thread-safety & complexity
//
// Caches are single-threaded: no method takes a lock. Use one instance per
// goroutine or serialize calls externally. Every operation costs
// O(BucketSize) and touches at most three buckets.
package cache
