// Package policy defines the contracts between a bucket and its eviction
// policy, and the closed set of policy kinds a cache can be configured with.
package policy

// Meta is the per-entry bookkeeping owned by policies.
// Hits is bumped by frequency-based policies; Touched holds the last access
// time (UnixNano) for time-based LRU and is stamped at admission by the bucket.
type Meta struct {
	Hits    uint64
	Touched int64
}

// Node is the minimal contract a bucket entry must satisfy for a policy.
// Key and value identity never change; only Meta is mutated by policies.
type Node[K comparable, V any] interface {
	Key() K
	Value() *V
	Meta() *Meta
}

// Hooks expose the bucket's ordered entry slice to a policy.
// Index 0 is the oldest arrival (or least recently used for ClassicLRU),
// index Len()-1 is the newest.
//
// Hooks never change bucket membership; admission and removal are
// performed by the bucket itself.
type Hooks[K comparable, V any] interface {
	// Len returns the number of resident entries.
	Len() int
	// At returns the entry at index i.
	At(i int) Node[K, V]
	// MoveToBack relocates the entry at i to the newest end and returns
	// its new index.
	MoveToBack(i int) int
	// Now returns the bucket's clock reading in UnixNano.
	Now() int64
}

// BucketPolicy is a bucket-local eviction policy instance bound to hooks.
//
// Semantics:
//   - OnHit applies the policy's "on access" effect to the entry at i and
//     returns the index the entry lives at afterwards.
//   - Victim picks the entry to evict and returns its index, or -1 when
//     the bucket is empty. The bucket performs the actual removal.
type BucketPolicy[K comparable, V any] interface {
	OnHit(i int) int
	Victim() int
}

// Policy is a factory that creates bucket-local policy instances.
type Policy[K comparable, V any] interface {
	Kind() Kind
	New(Hooks[K, V]) BucketPolicy[K, V]
}

// MinBy returns the index of the first entry with the smallest score,
// or -1 when the bucket is empty. Ties resolve to the lowest index.
func MinBy[K comparable, V any, T int64 | uint64](h Hooks[K, V], score func(*Meta) T) int {
	n := h.Len()
	if n == 0 {
		return -1
	}
	best, bestScore := 0, score(h.At(0).Meta())
	for i := 1; i < n; i++ {
		if s := score(h.At(i).Meta()); s < bestScore {
			best, bestScore = i, s
		}
	}
	return best
}
