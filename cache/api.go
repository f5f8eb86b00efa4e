package cache

import "io"

// Cache is the contract shared by the flat [AssociativeCache] and the
// two-level [Dash] topology.
//
// Implementations are NOT safe for concurrent use: every call runs to
// completion on the caller's goroutine without locking. Callers that share
// an instance across goroutines must serialize access themselves.
//
// Every operation is O(bucket size) and never allocates beyond the entry
// being inserted.
type Cache[K comparable, V any] interface {
	// Put stores k→v in the topology's insertion bucket.
	// If that bucket already holds k, the stored value is kept as is and
	// the entry receives the policy's hit effect (no overwrite).
	// Dash does not look for k outside the stash bucket; see [Dash.Put].
	Put(k K, v V)

	// Add stores k→v only if k is not resident anywhere in the cache.
	// It returns false (and applies no policy effect) when k is present.
	Add(k K, v V) bool

	// Get returns the value for k and a presence flag.
	// On hit the entry receives the policy's hit effect; in Dash a hit in
	// the stash also promotes the entry into its primary bucket.
	Get(k K) (V, bool)

	// Contains reports whether k is resident without any policy effect.
	Contains(k K) bool

	// Remove deletes k if present and returns true on success.
	Remove(k K) bool

	// Len returns the total number of resident entries.
	Len() int

	// Stats returns the counters accumulated since construction.
	Stats() Stats

	// Dump writes a human-readable view of every bucket to w.
	Dump(w io.Writer) error

	// Close releases all storage. Later calls behave as on an empty cache
	// and Put/Add become no-ops. Close is idempotent and returns nil.
	Close() error
}
