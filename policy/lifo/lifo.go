// Package lifo implements Last-In-First-Out eviction.
package lifo

import "github.com/IvanBrykalov/dashcache/policy"

type lifo[K comparable, V any] struct {
	h policy.Hooks[K, V]
}

type lifoPolicy[K comparable, V any] struct{}

// New returns a Policy factory that constructs per-bucket LIFO instances.
func New[K comparable, V any]() policy.Policy[K, V] { return lifoPolicy[K, V]{} }

func (lifoPolicy[K, V]) Kind() policy.Kind { return policy.Lifo }

func (lifoPolicy[K, V]) New(h policy.Hooks[K, V]) policy.BucketPolicy[K, V] {
	return &lifo[K, V]{h: h}
}

func (p *lifo[K, V]) OnHit(i int) int { return i }

// Victim is the most recent arrival, or -1 when empty.
func (p *lifo[K, V]) Victim() int { return p.h.Len() - 1 }
