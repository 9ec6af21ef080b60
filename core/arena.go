// SPDX-License-Identifier: MIT
// File: arena.go
// Role: Capacity-bounded, append-only pool of Edge records.
//
// Determinism:
//   - Alloc hands out slots 0,1,2,... in call order.
//
// Concurrency:
//   - Not synchronized; owned by exactly one Graph.

package core

import "fmt"

// EdgeArena is an append-only edge pool with a capacity fixed at construction.
// There is no deallocation and no edge is mutated after Alloc.
type EdgeArena struct {
	slots []Edge
}

// NewEdgeArena allocates an empty arena able to hold capacity edges.
//
// Errors:
//   - ErrNegativeSize if capacity < 0.
//   - ErrIDOverflow if capacity would make a slot collide with NoEdge.
//
// Complexity: O(capacity) memory reserved up front.
func NewEdgeArena(capacity int) (*EdgeArena, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("%w: edge capacity %d", ErrNegativeSize, capacity)
	}
	if uint64(capacity) > maxEdgeSlots {
		return nil, fmt.Errorf("%w: edge capacity %d", ErrIDOverflow, capacity)
	}

	return &EdgeArena{slots: make([]Edge, 0, capacity)}, nil
}

// Alloc appends an edge pointing at to, chained to next, and returns its ID.
//
// Errors:
//   - ErrCapacityExceeded when the arena is full. For input sized by the
//     tokenizer this never happens; when it does, the capacity computation
//     and the data disagree.
//
// Complexity: O(1).
func (a *EdgeArena) Alloc(to NodeID, next EdgeID) (EdgeID, error) {
	n := len(a.slots)
	if n == cap(a.slots) {
		return NoEdge, fmt.Errorf("%w: capacity %d", ErrCapacityExceeded, cap(a.slots))
	}
	a.slots = append(a.slots, Edge{To: to, Next: next})

	return EdgeID(n), nil
}

// Get returns a copy of the edge stored at id.
//
// Errors:
//   - ErrEdgeOutOfRange for NoEdge or any unallocated slot.
//
// Complexity: O(1).
func (a *EdgeArena) Get(id EdgeID) (Edge, error) {
	if !id.Valid() || int(id) >= len(a.slots) {
		return Edge{}, fmt.Errorf("%w: %s (allocated %d)", ErrEdgeOutOfRange, id, len(a.slots))
	}

	return a.slots[id], nil
}

// Len reports how many edges have been allocated.
func (a *EdgeArena) Len() int { return len(a.slots) }

// Cap reports the fixed arena capacity.
func (a *EdgeArena) Cap() int { return cap(a.slots) }
