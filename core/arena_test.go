// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
)

func TestEdgeArena_AllocAndGet(t *testing.T) {
	a, err := core.NewEdgeArena(3)
	require.NoError(t, err)
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 3, a.Cap())

	e0, err := a.Alloc(4, core.NoEdge)
	require.NoError(t, err)
	e1, err := a.Alloc(2, e0)
	require.NoError(t, err)
	assert.Equal(t, core.EdgeID(0), e0)
	assert.Equal(t, core.EdgeID(1), e1)

	got, err := a.Get(e1)
	require.NoError(t, err)
	assert.Equal(t, core.Edge{To: 2, Next: e0}, got)
	assert.Equal(t, 2, a.Len())
}

func TestEdgeArena_CapacityExceeded(t *testing.T) {
	a, err := core.NewEdgeArena(1)
	require.NoError(t, err)

	_, err = a.Alloc(0, core.NoEdge)
	require.NoError(t, err)

	id, err := a.Alloc(1, core.NoEdge)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
	assert.Equal(t, core.NoEdge, id)
	assert.Equal(t, 1, a.Len(), "failed allocation must not consume a slot")
}

func TestEdgeArena_ZeroCapacity(t *testing.T) {
	a, err := core.NewEdgeArena(0)
	require.NoError(t, err)

	_, err = a.Alloc(0, core.NoEdge)
	assert.ErrorIs(t, err, core.ErrCapacityExceeded)
}

func TestEdgeArena_GetOutOfRange(t *testing.T) {
	a, err := core.NewEdgeArena(4)
	require.NoError(t, err)
	_, err = a.Alloc(0, core.NoEdge)
	require.NoError(t, err)

	_, err = a.Get(1)
	assert.ErrorIs(t, err, core.ErrEdgeOutOfRange, "reserved but unallocated slot")
	_, err = a.Get(core.NoEdge)
	assert.ErrorIs(t, err, core.ErrEdgeOutOfRange)
}

func TestNewEdgeArena_Negative(t *testing.T) {
	a, err := core.NewEdgeArena(-1)
	assert.Nil(t, a)
	assert.ErrorIs(t, err, core.ErrNegativeSize)
}
