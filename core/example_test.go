// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/arenagraph/core"
)

// ExampleGraph_AddEdge shows that fan-out chains are read back in reverse
// insertion order, because every insert becomes the new head.
func ExampleGraph_AddEdge() {
	g, err := core.NewGraph(3, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_, _ = g.AddEdge(0, 1)
	_, _ = g.AddEdge(0, 2)
	_, _ = g.AddEdge(1, 2)

	for _, n := range g.Nodes() {
		nbs, _ := g.Neighbors(n.ID)
		fmt.Println(n.ID, "->", nbs, "head", n.Head)
	}

	// Output:
	// n0 -> [n2 n1] head e1
	// n1 -> [n2] head e2
	// n2 -> [] head -
}

// ExampleGraph_AddEdge_capacity demonstrates the fixed arena capacity.
func ExampleGraph_AddEdge_capacity() {
	g, _ := core.NewGraph(2, 1)
	_, err := g.AddEdge(0, 1)
	fmt.Println("first:", err)
	_, err = g.AddEdge(1, 0)
	fmt.Println("second:", err)

	// Output:
	// first: <nil>
	// second: AddEdge(n1→n0): core: edge arena capacity exceeded: capacity 1
}
