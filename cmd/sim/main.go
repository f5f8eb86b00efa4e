// Command sim replays a key trace against one or more cache configurations
// and reports the hit ratio of each, with an optional ARC baseline and a
// Prometheus endpoint.
//
// Every run follows the Get-then-Put protocol: a miss is followed by a Put
// of the same key.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/IvanBrykalov/dashcache/harness"
	pmet "github.com/IvanBrykalov/dashcache/metrics/prom"
	"github.com/IvanBrykalov/dashcache/policy"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sim:", err)
		os.Exit(1)
	}
}

// simConfig is the parsed command line.
type simConfig struct {
	settings    harness.Settings
	kinds       []policy.Kind
	tracePath   string
	keys, ops   int
	zipfS       float64
	zipfV       float64
	seed        int64
	baseline    string
	metricsAddr string
}

func parseFlags(args []string) (simConfig, error) {
	fs := flag.NewFlagSet("sim", flag.ContinueOnError)
	def := harness.DefaultDashSettings()
	var (
		topology    = fs.String("topology", "dash", "cache topology: dash | assoc")
		segments    = fs.Int("segments", def.Segments, "dash: number of segments")
		segmentSize = fs.Int("segment-size", def.SegmentSize, "dash: primary buckets per segment")
		stash       = fs.Int("stash", def.StashSize, "dash: stash buckets per segment")
		buckets     = fs.Int("buckets", 1, "assoc: number of buckets")
		bucketSize  = fs.Int("bucket-size", def.BucketSize, "entries per bucket")
		policyName  = fs.String("policy", "classic-lru", "eviction policy: "+strings.Join(kindNames(), " | ")+" | all")
		debug       = fs.Int("debug", 0, "debug mode: 0 warn, 1 info, 2 debug")

		tracePath = fs.String("trace", "", "trace file, one integer key per line (empty = synthetic Zipf)")
		keys      = fs.Int("keys", 100_000, "zipf: keyspace size")
		ops       = fs.Int("ops", 1_000_000, "zipf: number of lookups")
		zipfS     = fs.Float64("zipf_s", 1.1, "zipf: s > 1 (skew)")
		zipfV     = fs.Float64("zipf_v", 1.0, "zipf: v >= 1")
		seed      = fs.Int64("seed", 1, "zipf: random seed")

		baseline    = fs.String("baseline", "", "also replay against a reference cache of equal capacity: arc")
		metricsAddr = fs.String("http", "", "serve Prometheus metrics at addr (e.g. :8080) until interrupted")
	)
	if err := fs.Parse(args); err != nil {
		return simConfig{}, err
	}

	tp, err := harness.ParseTopology(*topology)
	if err != nil {
		return simConfig{}, err
	}
	cfg := simConfig{
		settings: harness.Settings{
			Topology:    tp,
			Segments:    *segments,
			SegmentSize: *segmentSize,
			StashSize:   *stash,
			Buckets:     *buckets,
			BucketSize:  *bucketSize,
			DebugMode:   *debug,
		},
		tracePath:   *tracePath,
		keys:        *keys,
		ops:         *ops,
		zipfS:       *zipfS,
		zipfV:       *zipfV,
		seed:        *seed,
		baseline:    *baseline,
		metricsAddr: *metricsAddr,
	}
	if *policyName == "all" {
		cfg.kinds = policy.Kinds()
	} else {
		k, err := policy.Parse(*policyName)
		if err != nil {
			return simConfig{}, err
		}
		cfg.kinds = []policy.Kind{k}
	}
	switch cfg.baseline {
	case "", "arc":
	default:
		return simConfig{}, fmt.Errorf("unknown baseline %q (use arc)", cfg.baseline)
	}
	return cfg, nil
}

func kindNames() []string {
	var out []string
	for _, k := range policy.Kinds() {
		out = append(out, k.String())
	}
	return out
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: harness.LevelFor(cfg.settings.DebugMode),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var trace []int64
	if cfg.tracePath != "" {
		trace, err = loadTrace(cfg.tracePath)
	} else {
		trace, err = zipfTrace(cfg.ops, cfg.keys, cfg.zipfS, cfg.zipfV, cfg.seed)
	}
	if err != nil {
		return err
	}
	logger.Info("sim: trace ready", "source", traceSource(cfg), "ops", len(trace))

	reg := prometheus.NewRegistry()
	var srv *http.Server
	if cfg.metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		srv = &http.Server{Addr: cfg.metricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			logger.Info("sim: serving metrics", "addr", cfg.metricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("sim: metrics server", "error", err)
			}
		}()
	}

	results, err := simulate(ctx, cfg, trace, reg, logger)
	if err != nil {
		return err
	}
	if cfg.baseline == "arc" {
		r, err := replayARC(ctx, trace, cfg.settings.Capacity())
		if err != nil {
			return err
		}
		results = append(results, r)
	}
	report(os.Stdout, cfg, results)

	if srv != nil {
		logger.Info("sim: done, metrics stay up until interrupted")
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
	return nil
}

func traceSource(cfg simConfig) string {
	if cfg.tracePath != "" {
		return cfg.tracePath
	}
	return fmt.Sprintf("zipf(s=%v,v=%v,keys=%d,seed=%d)", cfg.zipfS, cfg.zipfV, cfg.keys, cfg.seed)
}

// simulate replays trace once per policy, each on its own Handle and
// goroutine, and returns the results in policy order.
func simulate(ctx context.Context, cfg simConfig, trace []int64, reg prometheus.Registerer, logger *slog.Logger) ([]result, error) {
	results := make([]result, len(cfg.kinds))
	g, ctx := errgroup.WithContext(ctx)
	for i, k := range cfg.kinds {
		g.Go(func() error {
			m, err := pmet.New(reg, "dashcache", "sim", prometheus.Labels{
				"policy":   k.String(),
				"topology": cfg.settings.Topology.String(),
			})
			if err != nil {
				return fmt.Errorf("%s: metrics: %w", k, err)
			}
			s := cfg.settings
			s.PolicyCode = k.Code()
			h, err := harness.Create(s, harness.WithLogger(logger.With("policy", k.String())), harness.WithMetrics(m))
			if err != nil {
				return err
			}
			defer h.Destroy()

			r, err := replay(ctx, h, trace)
			if err != nil {
				return fmt.Errorf("%s: %w", k, err)
			}
			r.name = k.String()
			r.capacity = s.Capacity()
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
