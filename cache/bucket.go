package cache

import (
	"slices"

	"github.com/IvanBrykalov/dashcache/policy"
)

// bucket is a bounded, ordered run of entries with a bucket-local eviction
// policy. Index 0 is the oldest arrival; new entries are appended.
// Keys are unique within a bucket and len(entries) never exceeds cap
// outside of put.
type bucket[K comparable, V any] struct {
	entries []*entry[K, V]
	cap     int
	kind    policy.Kind
	pol     policy.BucketPolicy[K, V]
	now     func() int64
}

// newBucket preallocates room for capacity entries and binds the policy.
func newBucket[K comparable, V any](capacity int, p policy.Policy[K, V], now func() int64) *bucket[K, V] {
	b := &bucket[K, V]{
		entries: make([]*entry[K, V], 0, capacity),
		cap:     capacity,
		kind:    p.Kind(),
		now:     now,
	}
	b.pol = p.New(bucketHooks[K, V]{b: b})
	return b
}

// position returns the index of k, or -1. Linear scan.
func (b *bucket[K, V]) position(k K) int {
	for i, e := range b.entries {
		if e.key == k {
			return i
		}
	}
	return -1
}

// peek returns the entry for k without any policy effect.
func (b *bucket[K, V]) peek(k K) *entry[K, V] {
	if i := b.position(k); i >= 0 {
		return b.entries[i]
	}
	return nil
}

// touch applies the policy's hit effect to the entry at i and returns it.
// ClassicLRU relocates the entry; other policies only update metadata.
func (b *bucket[K, V]) touch(i int) *entry[K, V] {
	return b.entries[b.pol.OnHit(i)]
}

// put admits e and returns the resident entry plus the evicted one, if any.
//
// If e.key is already present the existing entry is touched and returned
// and e is dropped: the stored value is NOT overwritten. Otherwise a full
// bucket evicts first and e is appended.
func (b *bucket[K, V]) put(e *entry[K, V]) (resident, evicted *entry[K, V]) {
	if i := b.position(e.key); i >= 0 {
		return b.touch(i), nil
	}
	if b.full() {
		evicted = b.evict()
	}
	b.entries = append(b.entries, e)
	return e, evicted
}

// evict removes and returns the policy's victim; nil on an empty bucket.
func (b *bucket[K, V]) evict() *entry[K, V] {
	i := b.pol.Victim()
	if i < 0 {
		return nil
	}
	return b.removeAt(i)
}

// remove deletes k if present and returns the removed entry.
func (b *bucket[K, V]) remove(k K) *entry[K, V] {
	if i := b.position(k); i >= 0 {
		return b.removeAt(i)
	}
	return nil
}

func (b *bucket[K, V]) removeAt(i int) *entry[K, V] {
	e := b.entries[i]
	b.entries = slices.Delete(b.entries, i, i+1)
	return e
}

func (b *bucket[K, V]) full() bool { return len(b.entries) >= b.cap }
func (b *bucket[K, V]) size() int  { return len(b.entries) }

// -------------------- policy hooks --------------------

// bucketHooks adapts the bucket's entry slice to policy.Hooks.
type bucketHooks[K comparable, V any] struct{ b *bucket[K, V] }

func (h bucketHooks[K, V]) Len() int                   { return len(h.b.entries) }
func (h bucketHooks[K, V]) At(i int) policy.Node[K, V] { return h.b.entries[i] }
func (h bucketHooks[K, V]) Now() int64                 { return h.b.now() }

// MoveToBack shifts entries after i one slot left and puts entry i last.
func (h bucketHooks[K, V]) MoveToBack(i int) int {
	es := h.b.entries
	last := len(es) - 1
	if i == last {
		return i
	}
	e := es[i]
	copy(es[i:], es[i+1:])
	es[last] = e
	return last
}
