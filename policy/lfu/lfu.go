// Package lfu implements Least-Frequently-Used eviction with per-entry
// hit counters.
package lfu

import "github.com/IvanBrykalov/dashcache/policy"

// lfu counts hits in Meta.Hits. Positions never change, so among entries
// with equal counts the oldest arrival is evicted first.
type lfu[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type lfuPolicy[K comparable, V any] struct{}

// New returns a Policy factory that constructs per-bucket LFU instances.
func New[K comparable, V any]() policy.Policy[K, V] { return lfuPolicy[K, V]{} }

func (lfuPolicy[K, V]) Kind() policy.Kind { return policy.Lfu }

func (lfuPolicy[K, V]) New(h policy.Hooks[K, V]) policy.BucketPolicy[K, V] {
	return &lfu[K, V]{h: h}
}

// OnHit bumps the access counter in place.
func (p *lfu[K, V]) OnHit(i int) int {
	p.h.At(i).Meta().Hits++
	return i
}

func (p *lfu[K, V]) Victim() int {
	return policy.MinBy(p.h, func(m *policy.Meta) uint64 { return m.Hits })
}
