// SPDX-License-Identifier: MIT
// File: types.go
// Role: Options, Result and sentinel errors for walks.

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/arenagraph/core"
)

// Unlabeled marks a node that no walk has reached yet.
const Unlabeled = -1

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to Walk or Mark.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start node is outside the node table.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrLabelsSize indicates a label slice whose length differs from the node count.
	ErrLabelsSize = errors.New("dfs: labels length does not match node count")
)

// Option configures optional behavior of a walk.
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	// It is checked once per discovered node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is labeled (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(n core.NodeID) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(n core.NodeID) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// Result captures a single-source walk.
type Result struct {
	// Order lists reached nodes in discovery (pre-order) sequence.
	Order []core.NodeID

	// Parent maps a node to the node it was discovered from; the start node
	// and unreached nodes hold -1.
	Parent []int

	// MaxDepth is the depth of the deepest discovered node; the start node
	// has depth 0.
	MaxDepth int
}
