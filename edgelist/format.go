// SPDX-License-Identifier: MIT
package edgelist

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/arenagraph/core"
)

// Dump writes one line per node, in ID order:
//
//	<node> -> <dst> (<edge>) <dst> (<edge>) ...
//
// Destinations follow chain order (most recent first). Dump is a read-only
// projection and has no effect on g.
func Dump(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	var werr error
	g.ForEachNode(func(n core.Node) bool {
		bw.WriteString(strconv.Itoa(n.ID.Index()))
		bw.WriteString(" ->")
		werr = g.ForEachEdge(n.ID, func(id core.EdgeID, e core.Edge) bool {
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(e.To.Index()))
			bw.WriteString(" (")
			bw.WriteString(strconv.Itoa(id.Index()))
			bw.WriteByte(')')
			return true
		})
		bw.WriteByte('\n')
		return werr == nil
	})
	if werr != nil {
		return werr
	}

	return bw.Flush()
}

// Format returns Dump's output as a string.
func Format(g *core.Graph) string {
	var sb strings.Builder
	_ = Dump(&sb, g)

	return sb.String()
}

// Write serialises g as edge-list text: the node count on the first line,
// then one "src dst" line per edge. Edges of a node are written in chain
// order, so Parse(Write(g)) yields a graph whose chains are reversed.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strconv.Itoa(g.NodeCount()))
	bw.WriteByte('\n')
	var werr error
	g.ForEachNode(func(n core.Node) bool {
		werr = g.ForEachEdge(n.ID, func(_ core.EdgeID, e core.Edge) bool {
			bw.WriteString(strconv.Itoa(n.ID.Index()))
			bw.WriteByte(' ')
			bw.WriteString(strconv.Itoa(e.To.Index()))
			bw.WriteByte('\n')
			return true
		})
		return werr == nil
	})
	if werr != nil {
		return werr
	}

	return bw.Flush()
}
