// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"strings"
)

// Validate checks enumerated fields and numeric ranges, collecting every
// problem into a single error.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config: nil config")
	}
	var errs []string

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level: unknown level %q", cfg.Log.Level))
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format: unknown format %q", cfg.Log.Format))
	}
	switch cfg.Counter.Strategy {
	case StrategyDFS, StrategyUnionFind, StrategyParallel:
	default:
		errs = append(errs, fmt.Sprintf("counter.strategy: unknown strategy %q", cfg.Counter.Strategy))
	}
	if cfg.Counter.Workers < 0 {
		errs = append(errs, fmt.Sprintf("counter.workers: must be >= 0, got %d", cfg.Counter.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
