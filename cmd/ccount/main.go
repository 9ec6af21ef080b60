// SPDX-License-Identifier: MIT
// Command ccount prints the number of connected components of an edge-list
// graph read from a file or stdin.
//
// Usage:
//
//	ccount [-config f] [-strategy s] [-workers n] [-strict] [-dump] [-watch] [file|-]
//	ccount -gen kind:n[+kind:n...]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("ccount failed", "err", err)
		}
		os.Exit(1)
	}
}

// run is main without the process-level concerns, so it can be driven from
// tests.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("ccount", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var f cliFlags
	fs.StringVar(&f.configPath, "config", "", "Path to YAML config")
	fs.StringVar(&f.strategy, "strategy", "", "Counting strategy: dfs|unionfind|parallel (overrides config)")
	fs.IntVar(&f.workers, "workers", -1, "Worker limit for the parallel strategy (overrides config)")
	fs.BoolVar(&f.strict, "strict", false, "Reject destination IDs outside the node table while parsing")
	fs.BoolVar(&f.dump, "dump", false, "Print the parsed graph before the count")
	fs.BoolVar(&f.watch, "watch", false, "Recount whenever the input file (or config) changes")
	fs.StringVar(&f.gen, "gen", "", "Print a generated edge list instead of counting, e.g. path:5+isolated:2")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 1 {
		return fmt.Errorf("expected at most one input, got %d", fs.NArg())
	}
	f.input = fs.Arg(0)

	a, err := newApp(f, stdout, stderr)
	if err != nil {
		return err
	}
	defer a.close()

	if f.gen != "" {
		return a.generate(f.gen)
	}
	if f.watch {
		return a.watch(ctx, stdin)
	}
	return a.once(ctx, stdin)
}
