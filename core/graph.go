// SPDX-License-Identifier: MIT
// File: graph.go
// Role: Graph construction, edge insertion and chain traversal.
//
// Determinism:
//   - Node iteration is always in ascending ID order.
//   - Chain iteration is reverse insertion order (AddEdge prepends).

package core

import (
	"fmt"

	"fortio.org/safecast"
)

// MaxNodeCount bounds the node table NewGraph will allocate (8 bytes per
// node, so 1 GiB at the limit). The ID space itself is wider.
const MaxNodeCount = 1 << 27

// NewGraph allocates a graph with exactly nodeCount nodes and room for
// edgeCapacity edges. Node i is initialised with ID i and an empty chain.
//
// Implementation:
//   - Stage 1: Validate sizes (non-negative, representable as identifiers,
//     node count at most MaxNodeCount).
//   - Stage 2: Allocate the edge arena.
//   - Stage 3: Fill the node table and apply options.
//
// Errors:
//   - ErrNegativeSize, ErrIDOverflow.
//
// Complexity:
//   - Time O(nodeCount), Space O(nodeCount + edgeCapacity).
func NewGraph(nodeCount, edgeCapacity int, opts ...GraphOption) (*Graph, error) {
	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: node count %d", ErrNegativeSize, nodeCount)
	}
	if _, err := safecast.Conv[uint32](nodeCount); err != nil {
		return nil, fmt.Errorf("%w: node count %d: %v", ErrIDOverflow, nodeCount, err)
	}
	if nodeCount > MaxNodeCount {
		return nil, fmt.Errorf("%w: node count %d exceeds limit %d", ErrIDOverflow, nodeCount, MaxNodeCount)
	}

	arena, err := NewEdgeArena(edgeCapacity)
	if err != nil {
		return nil, err
	}

	g := &Graph{
		nodes: make([]Node, nodeCount),
		arena: arena,
	}
	for i := range g.nodes {
		g.nodes[i] = Node{ID: NodeID(i), Head: NoEdge}
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// AddEdge inserts src→dst at the head of src's fan-out chain.
//
// Implementation:
//   - Stage 1: Validate src (and dst under WithNodeCheck).
//   - Stage 2: Allocate an edge whose Next is src's current head.
//   - Stage 3: Make the new edge src's head.
//
// Errors:
//   - ErrNodeOutOfRange if src (or dst, when checked) is outside the table.
//   - ErrCapacityExceeded if the arena is full.
//
// Complexity: O(1).
func (g *Graph) AddEdge(src, dst NodeID) (EdgeID, error) {
	if !g.HasNode(src) {
		return NoEdge, fmt.Errorf("AddEdge(%s→%s): %w", src, dst, g.nodeRangeErr(src))
	}
	if g.checkDst && !g.HasNode(dst) {
		return NoEdge, fmt.Errorf("AddEdge(%s→%s): %w", src, dst, g.nodeRangeErr(dst))
	}

	node := &g.nodes[src]
	eid, err := g.arena.Alloc(dst, node.Head)
	if err != nil {
		return NoEdge, fmt.Errorf("AddEdge(%s→%s): %w", src, dst, err)
	}
	node.Head = eid

	return eid, nil
}

// HasNode reports whether n is inside the node table.
func (g *Graph) HasNode(n NodeID) bool {
	return int(n) < len(g.nodes)
}

// EdgeHead returns the most recently inserted out-edge of n, or NoEdge.
func (g *Graph) EdgeHead(n NodeID) (EdgeID, error) {
	if !g.HasNode(n) {
		return NoEdge, g.nodeRangeErr(n)
	}

	return g.nodes[n].Head, nil
}

// Edge returns the edge record stored at e.
func (g *Graph) Edge(e EdgeID) (Edge, error) {
	return g.arena.Get(e)
}

// ForEachEdge walks n's fan-out chain from the head, calling fn for every
// edge. Returning false from fn stops the walk early.
//
// Complexity: O(deg(n)).
func (g *Graph) ForEachEdge(n NodeID, fn func(id EdgeID, e Edge) bool) error {
	head, err := g.EdgeHead(n)
	if err != nil {
		return err
	}
	for id := head; id.Valid(); {
		e, err := g.arena.Get(id)
		if err != nil {
			return err
		}
		if !fn(id, e) {
			return nil
		}
		id = e.Next
	}

	return nil
}

// Neighbors returns the destinations of n's out-edges in chain order.
//
// Complexity: O(deg(n)).
func (g *Graph) Neighbors(n NodeID) ([]NodeID, error) {
	var out []NodeID
	err := g.ForEachEdge(n, func(_ EdgeID, e Edge) bool {
		out = append(out, e.To)
		return true
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// OutDegree returns the length of n's fan-out chain.
func (g *Graph) OutDegree(n NodeID) (int, error) {
	deg := 0
	err := g.ForEachEdge(n, func(EdgeID, Edge) bool {
		deg++
		return true
	})

	return deg, err
}

func (g *Graph) nodeRangeErr(n NodeID) error {
	return fmt.Errorf("%w: %s (nodes %d)", ErrNodeOutOfRange, n, len(g.nodes))
}
