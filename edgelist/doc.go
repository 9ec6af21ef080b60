// SPDX-License-Identifier: MIT
// Package edgelist builds a core.Graph from edge-list text and renders graphs
// back to text.
//
// Input format:
//
//	N s1 d1 s2 d2 ... sk dk
//
// Integers are separated by spaces or newlines. N is the node count (nodes are
// 0..N-1) and every following pair declares one directed edge s→d.
//
// Construction is two-pass: Capacity scans the text once without consuming it
// to learn the node count and an upper bound on edges, the graph is allocated
// at exactly those bounds, and a tokenize.Scanner then fills in the edges.
//
// Functions:
//
//	Capacity(text) (nodes, edges int, err error)
//	Parse(text, opts...) (*core.Graph, error)
//	Dump(w, g) / Format(g)      node -> dst (edge) ... diagnostics
//	Write(w, g)                 edge-list text, inverse of Parse
//
// Errors:
//
//	ErrEmptyInput      no node count token.
//	ErrOddTokenCount   a source without a destination.
//	tokenize.ErrMalformedToken, tokenize.ErrOverflow from the tokenizer.
//	core.ErrNodeOutOfRange, core.ErrCapacityExceeded from the graph.
package edgelist
