// SPDX-License-Identifier: MIT
// File: ids.go
// Role: Opaque numeric handles for nodes and edges.
//
// NodeID and EdgeID wrap a uint32. They are never interchangeable: the
// compiler rejects an EdgeID where a NodeID is expected and vice versa.
// EdgeID carries an "absent" state (NoEdge) that is distinct from zero.

package core

import (
	"fmt"
	"math"
	"strconv"

	"fortio.org/safecast"
)

// NodeID identifies a node by its position in the node table.
type NodeID uint32

// EdgeID identifies an edge by its slot in the edge arena.
type EdgeID uint32

// NoEdge is the absent edge handle. It terminates every fan-out chain and is
// returned by EdgeHead for nodes without out-edges.
const NoEdge EdgeID = math.MaxUint32

// maxEdgeSlots bounds arena capacity so that every allocated slot stays below NoEdge.
const maxEdgeSlots = math.MaxUint32

// NewNodeID converts a raw non-negative integer into a NodeID.
// Returns ErrIDOverflow if i is negative or does not fit into 32 bits.
func NewNodeID(i int) (NodeID, error) {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		return 0, fmt.Errorf("%w: node %d: %v", ErrIDOverflow, i, err)
	}

	return NodeID(v), nil
}

// NewEdgeID converts a raw non-negative integer into an EdgeID.
// Returns ErrIDOverflow if i is negative, does not fit into 32 bits,
// or collides with NoEdge.
func NewEdgeID(i int) (EdgeID, error) {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		return NoEdge, fmt.Errorf("%w: edge %d: %v", ErrIDOverflow, i, err)
	}
	if EdgeID(v) == NoEdge {
		return NoEdge, fmt.Errorf("%w: edge %d is reserved", ErrIDOverflow, i)
	}

	return EdgeID(v), nil
}

// Index returns the raw integer for use as a slice index.
func (n NodeID) Index() int { return int(n) }

// String renders the node as "n<index>".
func (n NodeID) String() string { return "n" + strconv.FormatUint(uint64(n), 10) }

// Valid reports whether e refers to an edge (i.e. e != NoEdge).
func (e EdgeID) Valid() bool { return e != NoEdge }

// Index returns the raw integer for use as a slice index.
// Calling Index on NoEdge returns -1.
func (e EdgeID) Index() int {
	if e == NoEdge {
		return -1
	}

	return int(e)
}

// String renders the edge as "e<index>", or "-" for NoEdge.
func (e EdgeID) String() string {
	if e == NoEdge {
		return "-"
	}

	return "e" + strconv.FormatUint(uint64(e), 10)
}
