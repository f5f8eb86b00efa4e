// Package lru implements the two LRU flavors: ClassicLRU reorders the bucket
// on every hit, TimestampLRU keeps positions and compares access stamps.
package lru

import "github.com/IvanBrykalov/dashcache/policy"

// classic is a "move-to-back" Least-Recently-Used policy.
// Bucket order encodes recency: index 0 is LRU, the last index is MRU.
type classic[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type classicPolicy[K comparable, V any] struct{}

// New returns a Policy factory that constructs per-bucket classic LRU instances.
func New[K comparable, V any]() policy.Policy[K, V] { return classicPolicy[K, V]{} }

func (classicPolicy[K, V]) Kind() policy.Kind { return policy.ClassicLRU }

// New implements policy.Policy by binding bucket hooks.
func (classicPolicy[K, V]) New(h policy.Hooks[K, V]) policy.BucketPolicy[K, V] {
	return &classic[K, V]{h: h}
}

// OnHit promotes the entry to MRU.
func (p *classic[K, V]) OnHit(i int) int { return p.h.MoveToBack(i) }

// Victim is the LRU head.
func (p *classic[K, V]) Victim() int {
	if p.h.Len() == 0 {
		return -1
	}
	return 0
}

// timestamp tracks recency by access time; entries never move.
type timestamp[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type timestampPolicy[K comparable, V any] struct{}

// NewTimestamp returns a Policy factory for timestamp-based LRU.
func NewTimestamp[K comparable, V any]() policy.Policy[K, V] { return timestampPolicy[K, V]{} }

func (timestampPolicy[K, V]) Kind() policy.Kind { return policy.TimestampLRU }

func (timestampPolicy[K, V]) New(h policy.Hooks[K, V]) policy.BucketPolicy[K, V] {
	return &timestamp[K, V]{h: h}
}

// OnHit stamps the entry with the current time; its position is unchanged.
func (p *timestamp[K, V]) OnHit(i int) int {
	p.h.At(i).Meta().Touched = p.h.Now()
	return i
}

// Victim is the entry with the oldest stamp (first one on ties).
func (p *timestamp[K, V]) Victim() int {
	return policy.MinBy(p.h, func(m *policy.Meta) int64 { return m.Touched })
}
