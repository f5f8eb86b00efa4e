package cache

import (
	"github.com/IvanBrykalov/dashcache/internal/util"
	"github.com/IvanBrykalov/dashcache/policy"
)

// segment is the unit of Dash routing: SegmentSize primary buckets running
// the configured policy plus StashSize FIFO stash buckets.
//
// New keys land in their stash bucket (hash mod StashSize). A stash hit
// promotes the entry into its primary bucket (hash mod SegmentSize); a
// primary miss also probes the next primary bucket, if any.
//
// Invariant: a resident key lives in exactly one of its stash bucket, its
// primary bucket, or the probing neighbor of its primary bucket.
type segment[K comparable, V any] struct {
	primary []*bucket[K, V]
	stash   []*bucket[K, V]
	hash    func(K) uint64
}

// outcome reports the side effects of a segment operation to the Dash.
type outcome[K comparable, V any] struct {
	promoted  bool
	collapsed bool         // promoted copy merged into a primary duplicate
	displaced *entry[K, V] // primary victim moved back into the stash
	evicted   *entry[K, V] // entry that left the segment
}

func newSegment[K comparable, V any](
	opt Options[K, V],
	primaryPol, stashPol policy.Policy[K, V],
	now func() int64,
) *segment[K, V] {
	s := &segment[K, V]{
		primary: make([]*bucket[K, V], opt.SegmentSize),
		stash:   make([]*bucket[K, V], opt.StashSize),
		hash:    opt.Hash,
	}
	for i := range s.primary {
		s.primary[i] = newBucket(opt.BucketSize, primaryPol, now)
	}
	for i := range s.stash {
		s.stash[i] = newBucket(opt.BucketSize, stashPol, now)
	}
	return s
}

func (s *segment[K, V]) stashFor(h uint64) *bucket[K, V] {
	return s.stash[util.Index(h, len(s.stash))]
}

// probeIndex returns the neighbor of primary bucket p, or -1 for the last one.
func (s *segment[K, V]) probeIndex(p int) int {
	if p+1 < len(s.primary) {
		return p + 1
	}
	return -1
}

// lookup finds k (stash, then primary, then probing bucket) and applies the
// hit effect. A stash hit is promoted into the primary bucket before
// returning; the returned entry is the one now resident there.
func (s *segment[K, V]) lookup(k K, h uint64) (*entry[K, V], outcome[K, V]) {
	var out outcome[K, V]

	st := s.stashFor(h)
	if i := st.position(k); i >= 0 {
		e := st.removeAt(i)
		return s.promote(e, h, &out), out
	}

	p := util.Index(h, len(s.primary))
	if i := s.primary[p].position(k); i >= 0 {
		return s.primary[p].touch(i), out
	}
	if q := s.probeIndex(p); q >= 0 {
		if i := s.primary[q].position(k); i >= 0 {
			return s.primary[q].touch(i), out
		}
	}
	return nil, out
}

// promote moves e (already detached from the stash) into its primary
// bucket. A primary victim is swapped into its own stash bucket, which has
// room unless the victim hashes to a different, full stash bucket.
func (s *segment[K, V]) promote(e *entry[K, V], h uint64, out *outcome[K, V]) *entry[K, V] {
	out.promoted = true
	pb := s.primary[util.Index(h, len(s.primary))]

	resident, victim := pb.put(e)
	if resident == e {
		// Fresh admission: the promotion itself counts as the hit.
		resident = pb.touch(pb.size() - 1)
	} else {
		out.collapsed = true
	}
	if victim != nil {
		out.displaced = victim
		back, lost := s.stashFor(s.hash(victim.key)).put(victim)
		if back != victim {
			// victim's key was already staged; the staged copy wins.
			lost = victim
		}
		out.evicted = lost
	}
	return resident
}

// insert stages a new entry in its stash bucket. The caller guarantees k
// is not resident elsewhere in the segment; if it is, a second copy is
// created. It reports whether e was admitted (false when the stash bucket
// already held the key).
func (s *segment[K, V]) insert(e *entry[K, V], h uint64) (bool, outcome[K, V]) {
	resident, evicted := s.stashFor(h).put(e)
	return resident == e, outcome[K, V]{evicted: evicted}
}

// peek finds k without any policy effect.
func (s *segment[K, V]) peek(k K, h uint64) *entry[K, V] {
	if e := s.stashFor(h).peek(k); e != nil {
		return e
	}
	p := util.Index(h, len(s.primary))
	if e := s.primary[p].peek(k); e != nil {
		return e
	}
	if q := s.probeIndex(p); q >= 0 {
		return s.primary[q].peek(k)
	}
	return nil
}

// remove deletes every copy of k from the buckets it may live in and
// returns how many entries were removed.
func (s *segment[K, V]) remove(k K, h uint64) int {
	n := 0
	p := util.Index(h, len(s.primary))
	for _, b := range []*bucket[K, V]{s.stashFor(h), s.primary[p]} {
		if b.remove(k) != nil {
			n++
		}
	}
	if q := s.probeIndex(p); q >= 0 && s.primary[q].remove(k) != nil {
		n++
	}
	return n
}

// size returns the number of entries across all buckets.
func (s *segment[K, V]) size() int {
	n := 0
	for _, b := range s.primary {
		n += b.size()
	}
	for _, b := range s.stash {
		n += b.size()
	}
	return n
}
