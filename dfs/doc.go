// SPDX-License-Identifier: MIT
// Package dfs implements depth-first traversal over core.Graph fan-out chains
// with an explicit stack, so walk depth is bounded by heap memory rather than
// the goroutine stack.
//
// Each stack frame is (node, next edge to follow). Popping a frame's next edge
// and pushing the destination reproduces the visitation order of the
// recursive formulation exactly: neighbors are explored in chain order, and a
// node is labeled before any of its neighbors are examined.
//
// Functions:
//
//   - Mark(g, start, labels, label, opts...): label every Unlabeled node
//     reachable from start; the building block for component labeling.
//   - Walk(g, start, opts...): single-source walk reporting pre-order,
//     parent links and maximum depth.
//
// Complexity:
//
//   - Time:   O(V + E) over the reached subgraph.
//   - Memory: O(depth) frames; depth ≤ size of the reached component.
//
// Errors:
//
//   - ErrGraphNil, ErrStartNodeNotFound, ErrLabelsSize.
//   - core.ErrNodeOutOfRange if an edge points outside the node table.
//   - context.Canceled / DeadlineExceeded, and any OnVisit error.
package dfs
