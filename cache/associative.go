package cache

import (
	"io"

	"github.com/IvanBrykalov/dashcache/internal/util"
)

// AssociativeCache is the flat topology: keys route straight to one of
// Buckets buckets by hash mod Buckets. There is no stash and no promotion.
//
// AssociativeCache is not safe for concurrent use.
type AssociativeCache[K comparable, V any] struct {
	base[K, V]
	buckets []*bucket[K, V]
}

var _ Cache[int, int] = (*AssociativeCache[int, int])(nil)

// NewAssociative allocates every bucket eagerly.
// Buckets and BucketSize must be positive; the returned error wraps
// ErrInvalidConfig otherwise.
func NewAssociative[K comparable, V any](opt Options[K, V]) (*AssociativeCache[K, V], error) {
	if err := opt.validateAssociative(); err != nil {
		return nil, err
	}
	pol, err := policyFor[K, V](opt.Policy)
	if err != nil {
		return nil, err
	}

	opt = opt.withDefaults()
	c := &AssociativeCache[K, V]{
		base:    base[K, V]{opt: opt},
		buckets: make([]*bucket[K, V], opt.Buckets),
	}
	for i := range c.buckets {
		c.buckets[i] = newBucket(opt.BucketSize, pol, opt.now)
	}
	return c, nil
}

// MustNewAssociative is like NewAssociative but panics on invalid options.
func MustNewAssociative[K comparable, V any](opt Options[K, V]) *AssociativeCache[K, V] {
	c, err := NewAssociative(opt)
	if err != nil {
		panic(err)
	}
	return c
}

// Put stores k→v. An existing k keeps its value and receives the hit effect.
func (c *AssociativeCache[K, V]) Put(k K, v V) {
	if c.closed {
		return
	}
	e := newEntry(k, v, c.opt.now())
	resident, evicted := c.bucket(k).put(e)
	if evicted != nil {
		c.evicted(evicted, EvictPolicy)
	}
	if resident == e {
		c.admitted()
	}
	c.sized()
}

// Add inserts k→v only if k is absent.
func (c *AssociativeCache[K, V]) Add(k K, v V) bool {
	if c.closed || c.Contains(k) {
		return false
	}
	c.Put(k, v)
	return true
}

// Get returns the value for k and applies the policy's hit effect.
func (c *AssociativeCache[K, V]) Get(k K) (V, bool) {
	if c.closed {
		var zero V
		return zero, false
	}
	b := c.bucket(k)
	i := b.position(k)
	if i < 0 {
		c.miss()
		var zero V
		return zero, false
	}
	c.hit()
	return b.touch(i).val, true
}

// Contains reports whether k is resident, without any policy effect.
func (c *AssociativeCache[K, V]) Contains(k K) bool {
	if c.closed {
		return false
	}
	return c.bucket(k).peek(k) != nil
}

// Remove deletes k if present and returns true on success.
func (c *AssociativeCache[K, V]) Remove(k K) bool {
	if c.closed {
		return false
	}
	if c.bucket(k).remove(k) == nil {
		return false
	}
	c.removed(1)
	return true
}

// Dump writes every bucket to w.
func (c *AssociativeCache[K, V]) Dump(w io.Writer) error {
	dw := newDumpWriter(w)
	for i, b := range c.buckets {
		dumpBucket(dw, "bucket", i, b)
	}
	return dw.flush()
}

// Close releases all buckets. Later calls behave as on an empty cache.
func (c *AssociativeCache[K, V]) Close() error {
	if c.closeBase() {
		c.buckets = nil
	}
	return nil
}

func (c *AssociativeCache[K, V]) bucket(k K) *bucket[K, V] {
	return c.buckets[util.Index(c.opt.Hash(k), len(c.buckets))]
}
