// SPDX-License-Identifier: MIT
package edgelist

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/tokenize"
)

var (
	// ErrEmptyInput indicates text without a node count.
	ErrEmptyInput = errors.New("edgelist: empty input")

	// ErrOddTokenCount indicates a trailing source node without a destination.
	ErrOddTokenCount = errors.New("edgelist: odd number of edge tokens")
)

// Option configures Parse.
type Option func(*parseOptions)

type parseOptions struct {
	strict    bool
	graphOpts []core.GraphOption
}

// WithStrict rejects destinations outside 0..N-1 while the graph is built,
// instead of leaving them to be caught by traversal.
func WithStrict() Option {
	return func(o *parseOptions) { o.strict = true }
}

// WithGraphOptions forwards options to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(o *parseOptions) { o.graphOpts = append(o.graphOpts, opts...) }
}

// Capacity pre-scans text and returns the declared node count and the edge
// arena capacity (the number of tokens after the node count). text is not
// consumed. Leading whitespace is ignored.
//
// Complexity: O(len(text)), no allocations.
func Capacity(text string) (nodes, edges int, err error) {
	tokenize.ReadWhitespace(&text)
	tokens := tokenize.CountTokens(text)
	if tokens == 0 {
		return 0, 0, ErrEmptyInput
	}
	n, err := tokenize.PeekUint(text)
	if err != nil {
		return 0, 0, fmt.Errorf("edgelist: node count: %w", err)
	}
	nodes, err = safecast.Conv[int](n)
	if err != nil {
		return 0, 0, fmt.Errorf("edgelist: node count %d: %w", n, core.ErrIDOverflow)
	}

	return nodes, tokens - 1, nil
}

// Parse builds a graph from edge-list text.
//
// Implementation:
//   - Stage 1: Capacity pre-scan (node count, edge capacity).
//   - Stage 2: Allocate the graph at exactly those bounds.
//   - Stage 3: Consume (src,dst) pairs until the text is exhausted, calling AddEdge.
//
// Errors:
//   - ErrEmptyInput, ErrOddTokenCount.
//   - Tokenizer errors, wrapped with the byte offset.
//   - core.ErrNodeOutOfRange for a bad source (or destination under WithStrict).
//
// Complexity:
//   - Time O(len(text)), Space O(N + tokens).
func Parse(text string, opts ...Option) (*core.Graph, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	nodes, edgeCap, err := Capacity(text)
	if err != nil {
		return nil, err
	}
	if edgeCap%2 != 0 {
		return nil, fmt.Errorf("%w: %d tokens after node count", ErrOddTokenCount, edgeCap)
	}

	gopts := o.graphOpts
	if o.strict {
		gopts = append(gopts, core.WithNodeCheck())
	}
	g, err := core.NewGraph(nodes, edgeCap, gopts...)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}

	sc := tokenize.NewScanner(text)
	sc.SkipSpace()
	if _, err = sc.Next(); err != nil { // node count, already validated
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	for !sc.Done() {
		src, err := nextNode(sc)
		if err != nil {
			return nil, err
		}
		dst, err := nextNode(sc)
		if err != nil {
			return nil, err
		}
		if _, err = g.AddEdge(src, dst); err != nil {
			return nil, fmt.Errorf("edgelist: %w", err)
		}
	}

	return g, nil
}

func nextNode(sc *tokenize.Scanner) (core.NodeID, error) {
	at := sc.Offset()
	v, err := sc.Next()
	if err != nil {
		return 0, fmt.Errorf("edgelist: %w", err)
	}
	id, err := safecast.Conv[uint32](v)
	if err != nil {
		return 0, fmt.Errorf("edgelist: offset %d: node %d: %w", at, v, core.ErrNodeOutOfRange)
	}

	return core.NodeID(id), nil
}
