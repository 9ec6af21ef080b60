// SPDX-License-Identifier: MIT
// Package: arenagraph/builder
//
// config.go - internal configuration, deterministic defaults and options.
//
// Deterministic defaults:
//   • rng     = nil    (pure/deterministic unless seeded)
//   • reverse = false  (edges emitted low→high)
//   • shuffle = false  (edges in constructor order)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// reverse flips every emitted edge (v→u instead of u→v).
	reverse bool
	// shuffle permutes the final pair order using rng.
	shuffle bool
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// newBuilderConfig applies options in order; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithReversed emits every edge in the opposite direction. Component counts
// are unaffected; fan-out chains are not.
func WithReversed() BuilderOption {
	return func(c *builderConfig) { c.reverse = true }
}

// WithShuffle permutes the final edge order. Requires an RNG.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) { c.shuffle = true }
}
