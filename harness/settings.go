package harness

import (
	"fmt"
	"log/slog"

	"github.com/IvanBrykalov/dashcache/cache"
	"github.com/IvanBrykalov/dashcache/policy"
)

// Topology selects the cache layout behind a Handle.
type Topology uint8

const (
	// Dash is the two-level layout with stash buckets and promotion.
	Dash Topology = iota
	// Associative is the flat layout: hash mod Buckets.
	Associative
)

func (t Topology) String() string {
	switch t {
	case Dash:
		return "dash"
	case Associative:
		return "assoc"
	default:
		return fmt.Sprintf("Topology(%d)", uint8(t))
	}
}

// ParseTopology accepts "dash" and "assoc" (or "associative").
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "dash":
		return Dash, nil
	case "assoc", "associative":
		return Associative, nil
	}
	return 0, fmt.Errorf("%w: unknown topology %q", cache.ErrInvalidConfig, s)
}

// Settings is the flat, numeric configuration a harness passes to Create.
// Fields that do not apply to the chosen Topology are ignored.
type Settings struct {
	Topology Topology

	// Dash only.
	Segments    int
	SegmentSize int
	StashSize   int

	// Associative only.
	Buckets int

	BucketSize int
	// PolicyCode is a policy.Kind code: 0 ClassicLRU, 1 Lifo, 2 Lfu,
	// 3 Fifo, 4 TimestampLRU.
	PolicyCode int
	// DebugMode selects the default log level, see LevelFor.
	DebugMode int
}

// DefaultDashSettings returns one segment of 28 primary and 4 stash
// buckets of 16 entries under ClassicLRU.
func DefaultDashSettings() Settings {
	return Settings{
		Topology:    Dash,
		Segments:    1,
		SegmentSize: 28,
		StashSize:   4,
		BucketSize:  16,
		PolicyCode:  policy.ClassicLRU.Code(),
		DebugMode:   1,
	}
}

// DefaultAssociativeSettings returns a single bucket of 8 entries under
// ClassicLRU.
func DefaultAssociativeSettings() Settings {
	return Settings{
		Topology:   Associative,
		Buckets:    1,
		BucketSize: 8,
		PolicyCode: policy.ClassicLRU.Code(),
		DebugMode:  1,
	}
}

// Capacity returns the total number of entry slots.
func (s Settings) Capacity() int {
	if s.Topology == Associative {
		return s.Buckets * s.BucketSize
	}
	return s.Segments * (s.SegmentSize + s.StashSize) * s.BucketSize
}

// LogValue implements slog.LogValuer.
func (s Settings) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("topology", s.Topology.String()),
		slog.Int("bucket_size", s.BucketSize),
		slog.Int("policy_code", s.PolicyCode),
	}
	if s.Topology == Associative {
		attrs = append(attrs, slog.Int("buckets", s.Buckets))
	} else {
		attrs = append(attrs,
			slog.Int("segments", s.Segments),
			slog.Int("segment_size", s.SegmentSize),
			slog.Int("stash_size", s.StashSize),
		)
	}
	return slog.GroupValue(attrs...)
}
