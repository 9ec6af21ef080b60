// SPDX-License-Identifier: MIT
// Package: arenagraph/builder
//
// api.go - public entry point and the EdgeList fixture type.
//
// Design contract:
//   - One orchestrator: Build(bopts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor appends a fresh block of nodes, so blocks are pairwise
//     disconnected and the component count of the result is the sum of the
//     blocks' counts.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical lists.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/arenagraph/core"
)

// EdgeList is a generated graph in edge-list form: Nodes nodes (0..Nodes-1)
// and directed Pairs in emission order.
type EdgeList struct {
	Nodes int
	Pairs [][2]int

	// Components is the number of connected components the constructors
	// produced, known by construction; -1 once a block with an unknown
	// count (RandomSparse) was added.
	Components int
}

// Constructor appends one block of nodes and edges to el using cfg.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(el *EdgeList, cfg builderConfig) error

// Build resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with "Build: %w".
//
// Complexity: Σ cost of each constructor, plus O(E) for WithShuffle.
func Build(bopts []BuilderOption, cons ...Constructor) (*EdgeList, error) {
	cfg := newBuilderConfig(bopts...)
	el := &EdgeList{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(el, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	if cfg.shuffle {
		if cfg.rng == nil {
			return nil, fmt.Errorf("Build: shuffle: %w", ErrNeedRandSource)
		}
		cfg.rng.Shuffle(len(el.Pairs), func(i, j int) {
			el.Pairs[i], el.Pairs[j] = el.Pairs[j], el.Pairs[i]
		})
	}

	return el, nil
}

// Text renders el as edge-list text accepted by edgelist.Parse.
func (el *EdgeList) Text() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(el.Nodes))
	for _, p := range el.Pairs {
		sb.WriteByte('\n')
		sb.WriteString(strconv.Itoa(p[0]))
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(p[1]))
	}
	sb.WriteByte('\n')

	return sb.String()
}

// Graph builds a core.Graph sized exactly to el.
func (el *EdgeList) Graph() (*core.Graph, error) {
	g, err := core.NewGraph(el.Nodes, len(el.Pairs), core.WithNodeCheck())
	if err != nil {
		return nil, err
	}
	for _, p := range el.Pairs {
		src, err := core.NewNodeID(p[0])
		if err != nil {
			return nil, err
		}
		dst, err := core.NewNodeID(p[1])
		if err != nil {
			return nil, err
		}
		if _, err = g.AddEdge(src, dst); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// addBlock reserves n fresh nodes and returns the first index.
func (el *EdgeList) addBlock(n int) int {
	base := el.Nodes
	el.Nodes += n

	return base
}

// addEdge appends u→v, honoring cfg.reverse.
func (el *EdgeList) addEdge(cfg builderConfig, u, v int) {
	if cfg.reverse {
		u, v = v, u
	}
	el.Pairs = append(el.Pairs, [2]int{u, v})
}

// unknownComponents marks an EdgeList whose component count was not tracked.
const unknownComponents = -1

// addComponents adds k to the tracked count unless it is already unknown.
func (el *EdgeList) addComponents(k int) {
	if el.Components != unknownComponents {
		el.Components += k
	}
}
