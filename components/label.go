// SPDX-License-Identifier: MIT
package components

import (
	"errors"
	"fmt"

	"github.com/soniakeys/bits"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
	"github.com/katalvlaran/arenagraph/edgelist"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed in.
	ErrGraphNil = errors.New("components: graph is nil")

	// ErrPartitionMismatch indicates a walk that reached a different number of
	// nodes than its union-find partition holds.
	ErrPartitionMismatch = errors.New("components: walk disagrees with partition")
)

// Result is the outcome of component labeling.
type Result struct {
	// Labels[i] is the component of node i; labels are 0..Count-1 in order of
	// each component's lowest node.
	Labels []int

	// Count is the number of components.
	Count int

	// Sizes[l] is the number of nodes carrying label l.
	Sizes []int
}

// Label doubles g and assigns a component label to every node.
//
// Implementation:
//   - Stage 1: Double(g) to obtain the undirected view.
//   - Stage 2: Mark every node Unlabeled; keep the unlabeled set as a bitset.
//   - Stage 3: Take the lowest unlabeled node, give it the next label and let
//     dfs.Mark spread that label over everything it reaches.
//   - Stage 4: Repeat until the bitset is empty.
//
// Options are forwarded to dfs.Mark; an OnVisit hook sees every node once.
//
// Complexity:
//   - Time O(V+E), Space O(V+E) (the doubled graph dominates).
func Label(g *core.Graph, opts ...dfs.Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ug, err := Double(g)
	if err != nil {
		return nil, err
	}

	n := ug.NodeCount()
	res := &Result{Labels: newLabels(n)}
	if n == 0 {
		return res, nil
	}

	unlabeled := bits.New(n)
	unlabeled.SetAll()
	o := dfs.DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	userVisit := o.OnVisit
	walkOpts := []dfs.Option{
		dfs.WithContext(o.Ctx),
		dfs.WithOnVisit(func(v core.NodeID) error {
			unlabeled.SetBit(v.Index(), 0)
			if userVisit != nil {
				return userVisit(v)
			}
			return nil
		}),
	}

	for start := unlabeled.OneFrom(0); start >= 0; start = unlabeled.OneFrom(start + 1) {
		size, err := dfs.Mark(ug, core.NodeID(start), res.Labels, res.Count, walkOpts...)
		if err != nil {
			return nil, fmt.Errorf("components: label %d from n%d: %w", res.Count, start, err)
		}
		res.Sizes = append(res.Sizes, size)
		res.Count++
	}

	return res, nil
}

// Count returns the number of connected components of g's undirected view.
func Count(g *core.Graph) (int, error) {
	res, err := Label(g)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}

// CountFromText parses edge-list text, doubles the graph and counts its
// components. It is the single entry point for callers holding raw input.
func CountFromText(text string) (int, error) {
	g, err := edgelist.Parse(text)
	if err != nil {
		return 0, err
	}

	return Count(g)
}

func newLabels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = dfs.Unlabeled
	}

	return labels
}
