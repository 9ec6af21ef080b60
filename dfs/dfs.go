// SPDX-License-Identifier: MIT
// File: dfs.go
// Role: Mark, Walk and the explicit-stack walker.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// frame is one pending node on the explicit stack.
type frame struct {
	node core.NodeID
	next core.EdgeID // next edge of node's chain still to follow
}

// walker encapsulates state during a walk.
type walker struct {
	graph  *core.Graph
	opts   Options
	labels []int
	stack  []frame

	// discovered, if non-nil, is called for every newly labeled node.
	discovered func(n core.NodeID, parent int, depth int)
}

// Mark labels start and every node reachable from it that is still Unlabeled
// in labels, and returns how many nodes it labeled. Already labeled nodes
// are neither relabeled nor traversed through.
//
// If start is already labeled, Mark returns 0 and does nothing.
func Mark(g *core.Graph, start core.NodeID, labels []int, label int, opts ...Option) (int, error) {
	w, err := newWalker(g, start, labels, opts)
	if err != nil {
		return 0, err
	}
	if labels[start] != Unlabeled {
		return 0, nil
	}

	return w.run(start, label)
}

// Walk runs a single-source walk from start and reports discovery order,
// parent links and the maximum stack depth.
func Walk(g *core.Graph, start core.NodeID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	labels := make([]int, g.NodeCount())
	parent := make([]int, g.NodeCount())
	for i := range labels {
		labels[i] = Unlabeled
		parent[i] = -1
	}

	w, err := newWalker(g, start, labels, opts)
	if err != nil {
		return nil, err
	}
	res := &Result{Parent: parent}
	w.discovered = func(n core.NodeID, p int, depth int) {
		res.Order = append(res.Order, n)
		parent[n] = p
		if depth > res.MaxDepth {
			res.MaxDepth = depth
		}
	}
	if _, err = w.run(start, 0); err != nil {
		return res, err
	}

	return res, nil
}

func newWalker(g *core.Graph, start core.NodeID, labels []int, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %s", ErrStartNodeNotFound, start)
	}
	if len(labels) != g.NodeCount() {
		return nil, fmt.Errorf("%w: %d != %d", ErrLabelsSize, len(labels), g.NodeCount())
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &walker{graph: g, opts: o, labels: labels}, nil
}

// run labels start and drains the stack.
func (w *walker) run(start core.NodeID, label int) (int, error) {
	w.stack = w.stack[:0]
	if err := w.enter(start, -1, label); err != nil {
		return 0, err
	}
	count := 1

	for len(w.stack) > 0 {
		top := &w.stack[len(w.stack)-1]
		if !top.next.Valid() {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}

		e, err := w.graph.Edge(top.next)
		if err != nil {
			return count, fmt.Errorf("dfs: %s: %w", top.node, err)
		}
		top.next = e.Next

		if !w.graph.HasNode(e.To) {
			return count, fmt.Errorf("dfs: edge %s→%s: %w", top.node, e.To, core.ErrNodeOutOfRange)
		}
		if w.labels[e.To] != Unlabeled {
			continue
		}
		// top may be invalidated by the append in enter.
		if err = w.enter(e.To, int(top.node), label); err != nil {
			return count, err
		}
		count++
	}

	return count, nil
}

// enter labels n, runs the hook and pushes n's frame.
func (w *walker) enter(n core.NodeID, parent int, label int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.labels[n] = label
	if w.discovered != nil {
		w.discovered(n, parent, len(w.stack))
	}
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(n); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", n, err)
		}
	}

	head, err := w.graph.EdgeHead(n)
	if err != nil {
		return fmt.Errorf("dfs: %w", err)
	}
	w.stack = append(w.stack, frame{node: n, next: head})

	return nil
}
