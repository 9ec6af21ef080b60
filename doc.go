// SPDX-License-Identifier: MIT
// Package arenagraph counts connected components of graphs given as flat
// edge-list text, using a fixed-capacity edge arena and intrusive fan-out
// chains instead of per-node adjacency slices.
//
// What is in the box?
//
//	• core/       - NodeID/EdgeID, the append-only EdgeArena and Graph
//	• tokenize/   - whitespace tokenizer and unsigned-integer reader
//	• edgelist/   - text → Graph (Parse), Graph → text (Write, Dump)
//	• dfs/        - iterative depth-first walk with an explicit stack
//	• components/ - Double, Label, Count, CountUnionFind, CountParallel
//	• builder/    - deterministic fixture generators (path, cycle, star, ...)
//	• cmd/ccount  - command-line front end
//
// Input format:
//
//	N
//	u0 v0
//	u1 v1
//	...
//
// N nodes (0..N-1) followed by directed edges as (src, dst) pairs; spaces and
// newlines are interchangeable. Components are counted over the undirected
// view, so "4 0 1 2 3" has two.
//
// Quick example:
//
//	n, err := components.CountFromText("5 0 1 1 2 3 4") // n == 2
//
//	go install github.com/katalvlaran/arenagraph/cmd/ccount@latest
package arenagraph
