// SPDX-License-Identifier: MIT
// Package: arenagraph/builder
//
// impl_random_sparse.go - RandomSparse(n, p): every ordered pair (i,j), i≠j,
// becomes an edge with independent probability p.
//
// Contract:
//   • n ≥ 1, p ∈ [0,1].
//   • RNG required only for 0 < p < 1. RandomSparse draws from the Build-level
//     RNG; RandomSparseSeeded owns a private one, so its edges depend on its
//     seed alone and not on other blocks.
//   • The component count is not known by construction; the block marks
//     EdgeList.Components as unknown (-1).
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"
	"math/rand"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a directed random graph
// using the RNG configured on Build.
func RandomSparse(n int, p float64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		return randomSparse(el, cfg, cfg.rng, n, p)
	}
}

// RandomSparseSeeded is RandomSparse with a block-local RNG seeded by seed.
func RandomSparseSeeded(n int, p float64, seed int64) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		return randomSparse(el, cfg, rand.New(rand.NewSource(seed)), n, p)
	}
}

func randomSparse(el *EdgeList, cfg builderConfig, rng *rand.Rand, n int, p float64) error {
	if n < minRandomSparseVertices {
		return fmt.Errorf("%s: n=%d < min=%d: %w",
			methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
	}
	if rng == nil && p > probMin && p < probMax {
		return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
	}

	b := el.addBlock(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if p == probMax || (p > probMin && rng.Float64() < p) {
				el.addEdge(cfg, b+i, b+j)
			}
		}
	}
	el.Components = unknownComponents

	return nil
}
