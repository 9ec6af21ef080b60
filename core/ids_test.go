// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arenagraph/core"
)

func TestNewNodeID(t *testing.T) {
	id, err := core.NewNodeID(7)
	require.NoError(t, err)
	assert.Equal(t, 7, id.Index())
	assert.Equal(t, "n7", id.String())

	_, err = core.NewNodeID(-1)
	assert.ErrorIs(t, err, core.ErrIDOverflow)
}

func TestNewEdgeID(t *testing.T) {
	id, err := core.NewEdgeID(0)
	require.NoError(t, err)
	assert.True(t, id.Valid(), "zero is a real edge, not the absent state")
	assert.Equal(t, 0, id.Index())
	assert.Equal(t, "e0", id.String())

	_, err = core.NewEdgeID(-3)
	assert.ErrorIs(t, err, core.ErrIDOverflow)

	_, err = core.NewEdgeID(math.MaxUint32)
	assert.ErrorIs(t, err, core.ErrIDOverflow, "NoEdge value is reserved")
}

func TestNoEdge(t *testing.T) {
	assert.False(t, core.NoEdge.Valid())
	assert.Equal(t, -1, core.NoEdge.Index())
	assert.Equal(t, "-", core.NoEdge.String())
	assert.NotEqual(t, core.EdgeID(0), core.NoEdge)
}
