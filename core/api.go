// SPDX-License-Identifier: MIT
// File: api.go
// Role: Read-only getters and snapshots.

package core

// NodeCount returns the fixed size of the node table.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges allocated so far.
func (g *Graph) EdgeCount() int { return g.arena.Len() }

// EdgeCapacity returns the fixed arena capacity.
func (g *Graph) EdgeCapacity() int { return g.arena.Cap() }

// Nodes returns a copy of the node table in ascending ID order.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// ForEachNode calls fn for every node in ascending ID order until fn returns false.
func (g *Graph) ForEachNode(fn func(n Node) bool) {
	for _, n := range g.nodes {
		if !fn(n) {
			return
		}
	}
}

// Stats produces a snapshot of sizes and simple degree figures.
//
// Complexity:
//   - Time O(V+E), Space O(1).
func (g *Graph) Stats() GraphStats {
	st := GraphStats{
		NodeCount:    len(g.nodes),
		EdgeCount:    g.arena.Len(),
		EdgeCapacity: g.arena.Cap(),
	}
	for _, n := range g.nodes {
		deg := 0
		for id := n.Head; id.Valid(); id = g.arena.slots[id].Next {
			deg++
		}
		if deg == 0 {
			st.IsolatedNodes++
		}
		if deg > st.MaxOutDegree {
			st.MaxOutDegree = deg
		}
	}

	return st
}
