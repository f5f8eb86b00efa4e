// Package harness is the boundary layer used by simulators: it builds a
// cache from flat numeric Settings and exposes create/get/put/destroy over
// int64 keys and values.
//
// A Handle wraps exactly one cache instance and, like the cache, is not
// safe for concurrent use. Run one Handle per goroutine to compare
// configurations side by side.
package harness

import (
	"fmt"
	"log/slog"

	"github.com/IvanBrykalov/dashcache/cache"
	"github.com/IvanBrykalov/dashcache/policy"
)

// Miss is returned by Get when the key is not resident.
const Miss int64 = -1

// Option customizes Create.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	metrics cache.Metrics
}

// WithLogger sets the logger for lifecycle and per-operation events.
// Without it a Handle is silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics forwards cache signals to m (e.g. a metrics/prom Adapter).
func WithMetrics(m cache.Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// Handle is one live cache created from Settings.
type Handle struct {
	settings Settings
	kind     policy.Kind
	c        cache.Cache[int64, int64]
	log      *slog.Logger
	closed   bool
}

// Create validates settings and builds the cache. An unknown PolicyCode or
// a non-positive size is reported as an error wrapping
// cache.ErrInvalidConfig.
func Create(s Settings, opts ...Option) (*Handle, error) {
	cfg := config{logger: newNopLogger()}
	for _, o := range opts {
		o(&cfg)
	}

	kind, err := policy.FromCode(s.PolicyCode)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cache.ErrInvalidConfig, err)
	}
	opt := cache.Options[int64, int64]{
		Segments:    s.Segments,
		SegmentSize: s.SegmentSize,
		StashSize:   s.StashSize,
		Buckets:     s.Buckets,
		BucketSize:  s.BucketSize,
		Policy:      kind,
		Metrics:     cfg.metrics,
	}

	var c cache.Cache[int64, int64]
	switch s.Topology {
	case Dash:
		c, err = cache.NewDash(opt)
	case Associative:
		c, err = cache.NewAssociative(opt)
	default:
		err = fmt.Errorf("%w: unknown topology %v", cache.ErrInvalidConfig, s.Topology)
	}
	if err != nil {
		cfg.logger.Warn("harness: create failed", "settings", s, "error", err)
		return nil, err
	}

	h := &Handle{settings: s, kind: kind, c: c, log: cfg.logger}
	h.log.Info("harness: cache created", "settings", s, "policy", kind, "capacity", s.Capacity())
	return h, nil
}

// Get returns the value for key, or Miss.
func (h *Handle) Get(key int64) int64 {
	v, ok := h.c.Get(key)
	if !ok {
		h.log.Debug("harness: get", "key", key, "hit", false)
		return Miss
	}
	h.log.Debug("harness: get", "key", key, "hit", true, "value", v)
	return v
}

// Put stores key→value unless key is already resident, in which case the
// call is a no-op.
func (h *Handle) Put(key, value int64) {
	added := h.c.Add(key, value)
	h.log.Debug("harness: put", "key", key, "value", value, "added", added)
}

// Len returns the number of resident entries.
func (h *Handle) Len() int { return h.c.Len() }

// Stats returns the cache counters.
func (h *Handle) Stats() cache.Stats { return h.c.Stats() }

// Settings returns the settings the Handle was created with.
func (h *Handle) Settings() Settings { return h.settings }

// Policy returns the resolved eviction policy.
func (h *Handle) Policy() policy.Kind { return h.kind }

// Cache exposes the underlying cache, e.g. for Dump.
func (h *Handle) Cache() cache.Cache[int64, int64] { return h.c }

// Destroy releases the cache. It is safe to call more than once; later Get
// calls return Miss and Put calls do nothing.
func (h *Handle) Destroy() {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	s := h.c.Stats()
	_ = h.c.Close()
	h.log.Info("harness: cache destroyed",
		"policy", h.kind,
		"hits", s.Hits,
		"misses", s.Misses,
		"hit_ratio", s.HitRatio(),
	)
}
