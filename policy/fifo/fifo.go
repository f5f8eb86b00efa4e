// Package fifo implements First-In-First-Out eviction.
package fifo

import "github.com/IvanBrykalov/dashcache/policy"

// fifo evicts in arrival order. Hits are ignored.
type fifo[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type fifoPolicy[K comparable, V any] struct{}

// New returns a Policy factory that constructs per-bucket FIFO instances.
func New[K comparable, V any]() policy.Policy[K, V] { return fifoPolicy[K, V]{} }

func (fifoPolicy[K, V]) Kind() policy.Kind { return policy.Fifo }

func (fifoPolicy[K, V]) New(h policy.Hooks[K, V]) policy.BucketPolicy[K, V] {
	return &fifo[K, V]{h: h}
}

func (p *fifo[K, V]) OnHit(i int) int { return i }

// Victim is the oldest arrival.
func (p *fifo[K, V]) Victim() int {
	if p.h.Len() == 0 {
		return -1
	}
	return 0
}
