package prom_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/IvanBrykalov/dashcache/cache"
	"github.com/IvanBrykalov/dashcache/metrics/prom"
	"github.com/IvanBrykalov/dashcache/policy"
)

// gather returns every sample as "name{label=value,...}" -> value.
func gather(t *testing.T, reg *prometheus.Registry) map[string]float64 {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)

	out := map[string]float64{}
	for _, mf := range mfs {
		for _, m := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range m.GetLabel() {
				key += "," + lp.GetName() + "=" + lp.GetValue()
			}
			switch {
			case m.GetCounter() != nil:
				out[key] = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				out[key] = m.GetGauge().GetValue()
			}
		}
	}
	return out
}

func TestAdapter_DashSignals(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := prom.New(reg, "dashcache", "test", prometheus.Labels{"policy": "fifo"})
	require.NoError(t, err)

	d, err := cache.NewDash(cache.Options[int, int]{
		Segments: 1, SegmentSize: 1, StashSize: 1, BucketSize: 1,
		Policy: policy.Fifo, Hash: func(k int) uint64 { return uint64(k) }, Metrics: m,
	})
	require.NoError(t, err)

	d.Put(1, 1)
	d.Get(1) // promote
	d.Put(2, 2)
	d.Put(3, 3) // stash eviction of 2
	d.Get(3)    // promote, displace 1
	d.Get(2)    // miss

	got := gather(t, reg)
	require.Equal(t, 2.0, got["dashcache_test_hits_total,policy=fifo"])
	require.Equal(t, 1.0, got["dashcache_test_misses_total,policy=fifo"])
	require.Equal(t, 2.0, got["dashcache_test_promotions_total,policy=fifo"])
	require.Equal(t, 1.0, got["dashcache_test_evictions_total,policy=fifo,reason=stash"])
	require.Equal(t, 1.0, got["dashcache_test_evictions_total,policy=fifo,reason=displaced"])
	require.Equal(t, float64(d.Len()), got["dashcache_test_size_entries,policy=fifo"])
}

func TestAdapter_ConstLabelsShareRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	for _, k := range policy.Kinds() {
		_, err := prom.New(reg, "dashcache", "sim", prometheus.Labels{"policy": k.String()})
		require.NoError(t, err)
	}

	_, err := prom.New(reg, "dashcache", "sim", prometheus.Labels{"policy": "fifo"})
	require.Error(t, err, "duplicate const labels must fail registration")

	require.Panics(t, func() {
		prom.MustNew(reg, "dashcache", "sim", prometheus.Labels{"policy": "lfu"})
	})
}
