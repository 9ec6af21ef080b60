// SPDX-License-Identifier: MIT
// Package: arenagraph/builder
//
// impl_topology.go - deterministic constructors: Isolated, Path, Cycle,
// Star, Complete.
//
// Contract (all constructors):
//   • Append a new block of n nodes; never touch earlier blocks.
//   • Emit edges in stable increasing order.
//   • Return only sentinel errors; never panic at runtime.

package builder

import "fmt"

// File-local constants (stable method tags and minima).
const (
	methodIsolated  = "Isolated"
	methodPath      = "Path"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodComplete  = "Complete"
	minIsolated     = 1
	minPathNodes    = 2
	minCycleNodes   = 3
	minStarNodes    = 2
	minCompleteNode = 1
)

// Isolated returns a Constructor that adds n nodes and no edges (n components).
func Isolated(n int) Constructor {
	return func(el *EdgeList, _ builderConfig) error {
		if n < minIsolated {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolated, ErrTooFewVertices)
		}
		el.addBlock(n)
		el.addComponents(n)

		return nil
	}
}

// Path returns a Constructor that builds the chain b→b+1→…→b+n-1.
func Path(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		b := el.addBlock(n)
		for i := 1; i < n; i++ {
			el.addEdge(cfg, b+i-1, b+i)
		}
		el.addComponents(1)

		return nil
	}
}

// Cycle returns a Constructor that builds the ring i→(i+1)%n.
func Cycle(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		b := el.addBlock(n)
		for i := 0; i < n; i++ {
			el.addEdge(cfg, b+i, b+(i+1)%n)
		}
		el.addComponents(1)

		return nil
	}
}

// Star returns a Constructor with a hub (first node) pointing at n-1 leaves.
func Star(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		b := el.addBlock(n)
		for i := 1; i < n; i++ {
			el.addEdge(cfg, b, b+i)
		}
		el.addComponents(1)

		return nil
	}
}

// Complete returns a Constructor with an edge i→j for every i<j.
func Complete(n int) Constructor {
	return func(el *EdgeList, cfg builderConfig) error {
		if n < minCompleteNode {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNode, ErrTooFewVertices)
		}
		b := el.addBlock(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				el.addEdge(cfg, b+i, b+j)
			}
		}
		el.addComponents(1)

		return nil
	}
}
