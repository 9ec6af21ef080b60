// SPDX-License-Identifier: MIT
package edgelist_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
	"github.com/katalvlaran/arenagraph/edgelist"
	"github.com/katalvlaran/arenagraph/tokenize"
)

// chainEdges sums chain lengths over all nodes.
func chainEdges(t *testing.T, g *core.Graph) int {
	t.Helper()
	total := 0
	for _, n := range g.Nodes() {
		deg, err := g.OutDegree(n.ID)
		require.NoError(t, err)
		total += deg
	}

	return total
}

func TestCapacity(t *testing.T) {
	nodes, edges, err := edgelist.Capacity("4 0 1 2 3")
	require.NoError(t, err)
	assert.Equal(t, 4, nodes)
	assert.Equal(t, 4, edges)

	nodes, edges, err = edgelist.Capacity("\n7\n")
	require.NoError(t, err)
	assert.Equal(t, 7, nodes)
	assert.Equal(t, 0, edges)

	_, _, err = edgelist.Capacity(" \n")
	assert.ErrorIs(t, err, edgelist.ErrEmptyInput)

	_, _, err = edgelist.Capacity("x 1 2")
	assert.ErrorIs(t, err, tokenize.ErrMalformedToken)
}

func TestParse_Counts(t *testing.T) {
	cases := map[string]struct {
		text  string
		nodes int
		edges int
	}{
		"two pairs":     {"4 0 1 2 3", 4, 2},
		"chain":         {"5 0 1 1 2 3 4", 5, 3},
		"no edges":      {"3", 3, 0},
		"newlines":      {"3\n0 1\n1 2\n", 3, 2},
		"self loop":     {"1 0 0", 1, 1},
		"parallel":      {"2 0 1 0 1", 2, 2},
		"leading space": {"\n 2 1 0", 2, 1},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			g, err := edgelist.Parse(tc.text)
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.NodeCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
			assert.Equal(t, tc.edges, chainEdges(t, g))
		})
	}
}

func TestParse_ChainOrder(t *testing.T) {
	g, err := edgelist.Parse("3 0 1 0 2")
	require.NoError(t, err)

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{2, 1}, nbs)
}

func TestParse_Errors(t *testing.T) {
	_, err := edgelist.Parse("")
	assert.ErrorIs(t, err, edgelist.ErrEmptyInput)

	_, err = edgelist.Parse("3 0 1 2")
	assert.ErrorIs(t, err, edgelist.ErrOddTokenCount)

	_, err = edgelist.Parse("3 0 1 5 0")
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange, "source out of range")

	_, err = edgelist.Parse("3 0 z")
	assert.ErrorIs(t, err, tokenize.ErrMalformedToken)

	_, err = edgelist.Parse("3 0 99999999999")
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)

	_, err = edgelist.Parse("4294967295")
	assert.ErrorIs(t, err, core.ErrIDOverflow, "node table above MaxNodeCount is refused")
}

func TestParse_Strict(t *testing.T) {
	g, err := edgelist.Parse("2 0 7")
	require.NoError(t, err, "destinations are trusted by default")
	assert.Equal(t, 1, g.EdgeCount())

	_, err = edgelist.Parse("2 0 7", edgelist.WithStrict())
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestFormat(t *testing.T) {
	g, err := edgelist.Parse("4 0 1 2 3 0 2")
	require.NoError(t, err)

	want := "0 -> 2 (2) 1 (0)\n" +
		"1 ->\n" +
		"2 -> 3 (1)\n" +
		"3 ->\n"
	assert.Equal(t, want, edgelist.Format(g))
}

func TestWrite_RoundTrip(t *testing.T) {
	g, err := edgelist.Parse("4 0 1 0 2 3 1")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))
	assert.Equal(t, "4\n0 2\n0 1\n3 1\n", buf.String())

	back, err := edgelist.Parse(buf.String())
	require.NoError(t, err)
	assert.Equal(t, g.NodeCount(), back.NodeCount())
	assert.Equal(t, g.EdgeCount(), back.EdgeCount())

	nbs, err := back.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{1, 2}, nbs, "re-parsing reverses the chain")
}
