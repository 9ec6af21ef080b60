// SPDX-License-Identifier: MIT
// Package core provides a fixed-capacity directed graph whose adjacency is a
// set of singly linked lists threaded through a flat edge arena.
//
// The Graph G = (V,E) is sized once and never grows:
//
//   - Nodes are dense integers 0..N-1 held in a node table; node i always has ID i.
//   - Edges live in an append-only EdgeArena whose capacity is fixed at construction.
//   - Each Node stores the head of its fan-out chain; each Edge stores its
//     destination and the next edge of the same source.
//   - AddEdge prepends to the chain, so a node's out-edges are discovered in
//     reverse insertion order.
//
// Why an arena?
//
//   - O(1) edge insertion without per-node slices or per-edge heap objects.
//   - "next" links are integer handles, not pointers: cheap to copy and to scan.
//   - Capacity is known before the first node exists, so overflow is a
//     reportable contract violation (ErrCapacityExceeded), never a silent resize.
//
// Identifier types:
//
//	NodeID  – index into the node table.
//	EdgeID  – index into the edge arena; NoEdge marks "no edge".
//
// NodeID and EdgeID are distinct named types, so the compiler rejects passing
// one where the other is expected.
//
// Core Methods:
//
//	NewGraph(nodes, edgeCap int, opts ...GraphOption) (*Graph, error)
//	AddEdge(src, dst NodeID) (EdgeID, error)   // O(1)
//	EdgeHead(n NodeID) (EdgeID, error)         // O(1)
//	Edge(e EdgeID) (Edge, error)               // O(1)
//	Neighbors(n NodeID) ([]NodeID, error)      // O(deg(n))
//	ForEachEdge(n NodeID, fn) error            // O(deg(n))
//	NodeCount(), EdgeCount(), EdgeCapacity()   // O(1)
//	Stats() GraphStats                         // O(V)
//
// Concurrency:
//
//	A Graph is built by a single goroutine and is read-only afterwards. Once
//	construction is complete any number of goroutines may read it; concurrent
//	AddEdge calls are not supported.
//
// Errors:
//
//	ErrCapacityExceeded  – edge allocation beyond the arena capacity.
//	ErrNodeOutOfRange    – node ID outside 0..N-1.
//	ErrEdgeOutOfRange    – edge ID not allocated (including NoEdge).
//	ErrIDOverflow        – integer does not fit an identifier, or a node
//	                       count above MaxNodeCount.
//	ErrNegativeSize      – negative node count or capacity.
package core
