package cache

import (
	"io"

	"github.com/IvanBrykalov/dashcache/internal/util"
	"github.com/IvanBrykalov/dashcache/policy"
)

// Dash is the two-level topology: keys route to a segment by
// hash mod Segments, and inside the segment to a stash bucket, a primary
// bucket and its probing neighbor (see segment).
//
// Dash is not safe for concurrent use.
type Dash[K comparable, V any] struct {
	base[K, V]
	segments []*segment[K, V]
}

var _ Cache[int, int] = (*Dash[int, int])(nil)

// NewDash allocates every segment and bucket eagerly.
// Segments, SegmentSize, StashSize and BucketSize must be positive; the
// returned error wraps ErrInvalidConfig otherwise.
func NewDash[K comparable, V any](opt Options[K, V]) (*Dash[K, V], error) {
	if err := opt.validateDash(); err != nil {
		return nil, err
	}
	primaryPol, err := policyFor[K, V](opt.Policy)
	if err != nil {
		return nil, err
	}
	stashPol, _ := policyFor[K, V](policy.Fifo)

	opt = opt.withDefaults()
	d := &Dash[K, V]{
		base:     base[K, V]{opt: opt},
		segments: make([]*segment[K, V], opt.Segments),
	}
	for i := range d.segments {
		d.segments[i] = newSegment(opt, primaryPol, stashPol, opt.now)
	}
	return d, nil
}

// MustNewDash is like NewDash but panics on invalid options.
func MustNewDash[K comparable, V any](opt Options[K, V]) *Dash[K, V] {
	d, err := NewDash(opt)
	if err != nil {
		panic(err)
	}
	return d
}

// Put stages k→v in its stash bucket.
//
// Put does not search the primary buckets: callers must Get (or use Add)
// first, otherwise a key already promoted to its primary bucket gets a
// second, staged copy. A key already in the stash keeps its value.
func (d *Dash[K, V]) Put(k K, v V) {
	if d.closed {
		return
	}
	h := d.opt.Hash(k)
	admitted, out := d.segment(h).insert(newEntry(k, v, d.opt.now()), h)
	if admitted {
		d.admitted()
	}
	d.record(out)
	d.sized()
}

// Add inserts k→v only if k is not resident anywhere in its segment.
func (d *Dash[K, V]) Add(k K, v V) bool {
	if d.closed || d.Contains(k) {
		return false
	}
	d.Put(k, v)
	return true
}

// Get returns the value for k, applying the hit effect of the bucket it was
// found in. A stash hit is promoted into the key's primary bucket.
func (d *Dash[K, V]) Get(k K) (V, bool) {
	if d.closed {
		var zero V
		return zero, false
	}
	h := d.opt.Hash(k)
	e, out := d.segment(h).lookup(k, h)
	d.record(out)
	if e == nil {
		d.miss()
		var zero V
		return zero, false
	}
	d.hit()
	return e.val, true
}

// Contains reports whether k is resident, without any policy effect.
func (d *Dash[K, V]) Contains(k K) bool {
	if d.closed {
		return false
	}
	h := d.opt.Hash(k)
	return d.segment(h).peek(k, h) != nil
}

// Remove deletes k if present and returns true on success.
func (d *Dash[K, V]) Remove(k K) bool {
	if d.closed {
		return false
	}
	h := d.opt.Hash(k)
	n := d.segment(h).remove(k, h)
	d.removed(n)
	return n > 0
}

// Dump writes every segment with its primary and stash buckets to w.
func (d *Dash[K, V]) Dump(w io.Writer) error {
	dw := newDumpWriter(w)
	for i, s := range d.segments {
		dw.printf("segment %d {\n", i)
		for j, b := range s.primary {
			dumpBucket(dw, "bucket", j, b)
		}
		for j, b := range s.stash {
			dumpBucket(dw, "stash", j, b)
		}
		dw.printf("}\n")
	}
	return dw.flush()
}

// Close releases all segments. Later calls behave as on an empty cache.
func (d *Dash[K, V]) Close() error {
	if d.closeBase() {
		d.segments = nil
	}
	return nil
}

// segment picks a segment by hash mod Segments.
func (d *Dash[K, V]) segment(h uint64) *segment[K, V] {
	return d.segments[util.Index(h, len(d.segments))]
}

// record folds a segment outcome into counters, metrics and callbacks.
func (d *Dash[K, V]) record(out outcome[K, V]) {
	if out.promoted {
		d.stats.Promotions++
		d.opt.Metrics.Promote()
	}
	if out.collapsed {
		d.len--
	}
	if out.displaced != nil {
		d.stats.Displacements++
		d.opt.Metrics.Evict(EvictDisplaced)
	}
	if out.evicted != nil {
		d.evicted(out.evicted, EvictStash)
	}
	if out.collapsed || out.evicted != nil {
		d.sized()
	}
}
