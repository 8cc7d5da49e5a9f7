// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/dicebalance/walk"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to an enumerator.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrBadLength indicates a requested cycle length below 3; shorter rings
	// cannot be corners of a polyhedron.
	ErrBadLength = errors.New("dfs: cycle length must be at least 3")

	// ErrNoCycles indicates a requested cycle length produced no cycles.
	ErrNoCycles = errors.New("dfs: no cycles of requested length")
)

// MinCycleLength is the shortest ring accepted as a corner.
const MinCycleLength = 3

// Option configures optional behavior of cycle enumeration.
type Option func(*Options)

// Options holds configurable parameters for cycle enumeration.
type Options struct {
	// Ctx allows cancellation; checked once per starting edge.
	// Defaults to context.Background().
	Ctx context.Context

	// OnCycle, if non-nil, is invoked once per distinct cycle (canonical form)
	// the first time it is found. Returning an error aborts enumeration.
	OnCycle func(c walk.Cycle) error
}

// DefaultOptions returns Options with a background context and no hook.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnCycle: nil,
	}
}

// WithContext returns an Option that sets the Context for enumeration.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnCycle returns an Option that installs fn as a discovery hook.
func WithOnCycle(fn func(c walk.Cycle) error) Option {
	return func(o *Options) {
		o.OnCycle = fn
	}
}
