// SPDX-License-Identifier: MIT
// Package components counts connected components of a core.Graph, treating
// every edge as undirected.
//
// The undirected view is derived by doubling: Double returns a fresh graph in
// which every u→v of the input appears as both u→v and v→u. Label then scans
// nodes in ascending ID order and, for every node not yet labeled, runs an
// iterative depth-first walk (package dfs) that stamps the next label on every
// node it reaches.
//
// Ordering:
//
//   - Components are discovered in order of their lowest-numbered node, so
//     label 0 always contains node 0.
//   - Within a component, nodes are visited in fan-out chain order; this
//     affects visitation order only, never the labels or the count.
//
// Alternatives:
//
//   - CountUnionFind answers the same question with a disjoint-set forest and
//     no doubling; it serves as a cross-check.
//   - LabelParallel first partitions nodes with the disjoint-set pass, then
//     labels partitions concurrently. Partitions never overlap, so workers
//     write disjoint parts of the shared label slice.
//
// Entry point:
//
//	CountFromText("4 0 1 2 3") // 2
//
// Errors:
//
//   - ErrGraphNil for a nil graph.
//   - ErrPartitionMismatch if a parallel walk disagrees with its partition.
//   - core, dfs, edgelist and tokenize errors are wrapped and passed through.
package components
