package cache

// base holds what both topologies share: options, the resident count,
// counters and the closed flag. It is embedded by value.
type base[K comparable, V any] struct {
	opt    Options[K, V]
	len    int
	stats  Stats
	closed bool
}

// Len returns the total number of resident entries.
func (c *base[K, V]) Len() int { return c.len }

// Stats returns the counters accumulated since construction.
func (c *base[K, V]) Stats() Stats { return c.stats }

func (c *base[K, V]) hit() {
	c.stats.Hits++
	c.opt.Metrics.Hit()
}

func (c *base[K, V]) miss() {
	c.stats.Misses++
	c.opt.Metrics.Miss()
}

// admitted accounts for a new resident entry.
func (c *base[K, V]) admitted() {
	c.len++
}

// evicted accounts for an entry that left the cache and notifies OnEvict.
func (c *base[K, V]) evicted(e *entry[K, V], reason EvictReason) {
	c.len--
	c.stats.Evictions++
	c.opt.Metrics.Evict(reason)
	if cb := c.opt.OnEvict; cb != nil {
		cb(e.key, e.val, reason)
	}
}

// removed accounts for n entries deleted by Remove (not an eviction).
func (c *base[K, V]) removed(n int) {
	c.len -= n
	c.opt.Metrics.Size(c.len)
}

func (c *base[K, V]) sized() { c.opt.Metrics.Size(c.len) }

// closeBase marks the cache closed and reports whether it was open.
func (c *base[K, V]) closeBase() bool {
	if c.closed {
		return false
	}
	c.closed = true
	c.len = 0
	c.sized()
	return true
}
