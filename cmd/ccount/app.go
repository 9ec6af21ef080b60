// SPDX-License-Identifier: MIT
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/arenagraph/builder"
	"github.com/katalvlaran/arenagraph/components"
	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
	"github.com/katalvlaran/arenagraph/edgelist"
	"github.com/katalvlaran/arenagraph/internal/config"
	"github.com/katalvlaran/arenagraph/internal/metrics"
)

type cliFlags struct {
	configPath string
	strategy   string
	workers    int // -1 = not set
	strict     bool
	dump       bool
	watch      bool
	gen        string
	input      string
}

type app struct {
	flags   cliFlags
	loader  *config.Loader // nil without -config
	level   *slog.LevelVar
	log     *slog.Logger
	metrics *metrics.Metrics
	out     io.Writer

	mu      sync.Mutex // serialises counting and output
	closers []func()
}

func newApp(f cliFlags, stdout, stderr io.Writer) (*app, error) {
	a := &app{
		flags:   f,
		level:   new(slog.LevelVar),
		metrics: metrics.New(),
		out:     stdout,
	}
	if f.configPath != "" {
		l, err := config.NewLoader(f.configPath)
		if err != nil {
			return nil, err
		}
		a.loader = l
	}

	cfg := a.config()
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	a.level.Set(parseLevel(cfg.Log.Level))
	a.log = newLogger(cfg.Log.Format, a.level, stderr).With("run_id", uuid.New().String())
	slog.SetDefault(a.log)
	if a.loader != nil {
		a.loader.SetLogger(a.log)
	}

	return a, nil
}

func (a *app) close() {
	for _, fn := range a.closers {
		fn()
	}
}

// config returns the current file config (or defaults) with flag overrides
// applied.
func (a *app) config() *config.Config {
	cfg := *config.Default()
	if a.loader != nil {
		cfg = *a.loader.Config()
	}
	if a.flags.strategy != "" {
		cfg.Counter.Strategy = a.flags.strategy
	}
	if a.flags.workers >= 0 {
		cfg.Counter.Workers = a.flags.workers
	}
	if a.flags.strict {
		cfg.Input.Strict = true
	}

	return &cfg
}

func (a *app) once(ctx context.Context, stdin io.Reader) error {
	text, err := readInput(a.flags.input, stdin)
	if err != nil {
		return err
	}

	return a.countText(ctx, text)
}

// countText parses text, counts its components with the configured strategy
// and prints the count.
func (a *app) countText(ctx context.Context, text string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	cfg := a.config()
	var popts []edgelist.Option
	if cfg.Input.Strict {
		popts = append(popts, edgelist.WithStrict())
	}
	g, err := edgelist.Parse(text, popts...)
	if err != nil {
		a.metrics.ObserveError("parse")
		return fmt.Errorf("parse: %w", err)
	}
	a.metrics.ObserveGraph(g)
	st := g.Stats()
	a.log.Debug("graph parsed",
		"nodes", st.NodeCount,
		"edges", st.EdgeCount,
		"capacity", st.EdgeCapacity,
		"max_out_degree", st.MaxOutDegree,
		"isolated", st.IsolatedNodes)

	if a.flags.dump {
		if err = edgelist.Dump(a.out, g); err != nil {
			return err
		}
	}

	start := time.Now()
	n, err := count(ctx, cfg.Counter, g)
	if err != nil {
		a.metrics.ObserveError("count")
		return fmt.Errorf("count (%s): %w", cfg.Counter.Strategy, err)
	}
	took := time.Since(start)
	a.metrics.ObserveCount(cfg.Counter.Strategy, n, took)
	a.log.Info("components counted",
		"strategy", cfg.Counter.Strategy,
		"components", n,
		"nodes", st.NodeCount,
		"took", took)

	if _, err = fmt.Fprintln(a.out, n); err != nil {
		return err
	}
	if cfg.Metrics.Textfile != "" {
		return a.metrics.WriteTextfile(cfg.Metrics.Textfile)
	}
	return nil
}

func count(ctx context.Context, c config.CounterConf, g *core.Graph) (int, error) {
	switch c.Strategy {
	case config.StrategyUnionFind:
		return components.CountUnionFind(g)
	case config.StrategyParallel:
		return components.CountParallel(ctx, g, c.Workers)
	default:
		res, err := components.Label(g, dfs.WithContext(ctx))
		if err != nil {
			return 0, err
		}
		return res.Count, nil
	}
}

// generate prints the edge list described by spec.
func (a *app) generate(spec string) error {
	el, err := builder.FromSpec(spec)
	if err != nil {
		return err
	}
	g, err := el.Graph()
	if err != nil {
		return err
	}
	a.metrics.ObserveGraph(g)
	a.log.Info("graph generated", "spec", spec, "nodes", el.Nodes, "edges", len(el.Pairs), "components", el.Components)

	_, err = io.WriteString(a.out, el.Text())
	return err
}

func readInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}

func newLogger(format string, level slog.Leveler, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// parseLevel maps a validated level name to its slog.Level.
func parseLevel(s string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return l
}
