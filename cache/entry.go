package cache

import "github.com/IvanBrykalov/dashcache/policy"

// entry is a key/value pair owned by exactly one bucket at a time.
// Key and value never change after creation; meta is mutated in place by
// the owning bucket's policy.
type entry[K comparable, V any] struct {
	key  K
	val  V
	meta policy.Meta
}

// newEntry stamps the entry with its creation time.
func newEntry[K comparable, V any](k K, v V, now int64) *entry[K, V] {
	return &entry[K, V]{key: k, val: v, meta: policy.Meta{Touched: now}}
}

// Key returns the entry key (part of policy.Node interface).
func (e *entry[K, V]) Key() K { return e.key }

// Value returns a pointer to the stored value (part of policy.Node interface).
func (e *entry[K, V]) Value() *V { return &e.val }

// Meta returns the policy bookkeeping (part of policy.Node interface).
func (e *entry[K, V]) Meta() *policy.Meta { return &e.meta }
