// SPDX-License-Identifier: MIT
package components

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/dfs"
)

// partition is one union-find set, identified by its lowest node.
type partition struct {
	label int
	start core.NodeID
	size  int
}

// LabelParallel produces the same Result as Label, labeling components on up
// to workers goroutines (workers <= 0 means GOMAXPROCS).
//
// Implementation:
//   - Stage 1: Union-find pass over g establishes disjoint partitions; labels
//     are fixed in order of each partition's lowest node.
//   - Stage 2: Double(g).
//   - Stage 3: One dfs.Mark per partition on an errgroup. Walks never cross a
//     partition boundary, so each goroutine writes only its own label slots.
//   - Stage 4: Every walk must reach exactly its partition's size.
//
// Errors:
//   - ErrGraphNil, ErrPartitionMismatch, ctx errors, core errors.
func LabelParallel(ctx context.Context, g *core.Graph, workers int) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	ds, sets, err := unionEdges(g)
	if err != nil {
		return nil, err
	}

	n := g.NodeCount()
	rootLabel := make(map[int]int, sets)
	parts := make([]partition, 0, sets)
	for i := 0; i < n; i++ {
		root := ds.find(i)
		l, seen := rootLabel[root]
		if !seen {
			l = len(parts)
			rootLabel[root] = l
			parts = append(parts, partition{label: l, start: core.NodeID(i)})
		}
		parts[l].size++
	}

	ug, err := Double(g)
	if err != nil {
		return nil, err
	}

	res := &Result{Labels: newLabels(n), Count: len(parts), Sizes: make([]int, len(parts))}
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for _, p := range parts {
		p := p
		res.Sizes[p.label] = p.size
		eg.Go(func() error {
			got, err := dfs.Mark(ug, p.start, res.Labels, p.label, dfs.WithContext(egCtx))
			if err != nil {
				return fmt.Errorf("components: partition %d: %w", p.label, err)
			}
			if got != p.size {
				return fmt.Errorf("%w: partition %d reached %d of %d nodes",
					ErrPartitionMismatch, p.label, got, p.size)
			}
			return nil
		})
	}
	if err = eg.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// CountParallel returns LabelParallel's component count.
func CountParallel(ctx context.Context, g *core.Graph, workers int) (int, error) {
	res, err := LabelParallel(ctx, g, workers)
	if err != nil {
		return 0, err
	}

	return res.Count, nil
}
