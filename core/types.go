// SPDX-License-Identifier: MIT
// File: types.go
// Role: Edge, Node, Graph, GraphOption, GraphStats and sentinel errors.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrCapacityExceeded indicates an edge allocation beyond the arena capacity
	// fixed at construction. It signals inconsistent capacity and data.
	ErrCapacityExceeded = errors.New("core: edge arena capacity exceeded")

	// ErrNodeOutOfRange indicates a node ID outside 0..NodeCount()-1.
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrEdgeOutOfRange indicates an edge ID that was never allocated.
	ErrEdgeOutOfRange = errors.New("core: edge out of range")

	// ErrIDOverflow indicates an integer that cannot be represented as an identifier.
	ErrIDOverflow = errors.New("core: identifier overflow")

	// ErrNegativeSize indicates a negative node count or edge capacity.
	ErrNegativeSize = errors.New("core: negative size")
)

// Edge is one link of a node's fan-out chain.
// Edges are immutable once allocated.
type Edge struct {
	// To is the destination node.
	To NodeID

	// Next is the following edge of the same source, or NoEdge at the chain end.
	Next EdgeID
}

// Node is an entry of the node table.
type Node struct {
	// ID equals the node's position in the table.
	ID NodeID

	// Head is the most recently inserted out-edge, or NoEdge.
	Head EdgeID
}

// GraphOption configures a Graph before its storage is allocated.
type GraphOption func(g *Graph)

// WithNodeCheck makes AddEdge validate the destination as well as the source.
// Without it, destinations are trusted and checked only when traversed.
func WithNodeCheck() GraphOption {
	return func(g *Graph) { g.checkDst = true }
}

// Graph is a fixed-capacity directed graph.
//
// nodes is the node table; its length is fixed at construction.
// arena owns every edge record; its capacity is fixed at construction.
type Graph struct {
	nodes    []Node
	arena    *EdgeArena
	checkDst bool
}

// GraphStats is a read-only snapshot used for diagnostics.
type GraphStats struct {
	NodeCount     int // size of the node table
	EdgeCount     int // edges allocated so far
	EdgeCapacity  int // arena capacity
	MaxOutDegree  int // longest fan-out chain
	IsolatedNodes int // nodes with no out-edges
}
