// SPDX-License-Identifier: MIT
package components

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// Double returns a new graph with g's node count in which every edge u→v of g
// is present as both u→v and v→u. g is not modified.
//
// Implementation:
//   - Stage 1: Allocate a graph with capacity 2×g.EdgeCount().
//   - Stage 2: For every node in ID order, walk its chain once and insert
//     u→v then v→u.
//
// Errors:
//   - ErrGraphNil.
//   - core.ErrNodeOutOfRange if an edge of g points outside the node table.
//
// Complexity:
//   - Time O(V+E), Space O(V+E).
func Double(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	out, err := core.NewGraph(g.NodeCount(), 2*g.EdgeCount())
	if err != nil {
		return nil, fmt.Errorf("components: double: %w", err)
	}

	var addErr error
	g.ForEachNode(func(n core.Node) bool {
		walkErr := g.ForEachEdge(n.ID, func(_ core.EdgeID, e core.Edge) bool {
			if _, addErr = out.AddEdge(n.ID, e.To); addErr != nil {
				return false
			}
			_, addErr = out.AddEdge(e.To, n.ID)
			return addErr == nil
		})
		if addErr == nil {
			addErr = walkErr
		}
		return addErr == nil
	})
	if addErr != nil {
		return nil, fmt.Errorf("components: double: %w", addErr)
	}

	return out, nil
}
