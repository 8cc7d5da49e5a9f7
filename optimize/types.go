// SPDX-License-Identifier: MIT

package optimize

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoCandidates is returned when no candidate was evaluated.
	ErrNoCandidates = errors.New("optimize: no candidates")

	// ErrDieNil is returned when a nil die is passed.
	ErrDieNil = errors.New("optimize: die is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("optimize: invalid option supplied")
)

// Result is the optimum found by Optimize.
type Result struct {
	// Weights is the best face-value vector, Weights[i] on face i+1.
	Weights []int
	// Spread is the population standard deviation of corner averages
	// under Weights.
	Spread float64
	// Candidates is the number of candidates evaluated.
	Candidates int
	// Elapsed is the wall time of the search.
	Elapsed time.Duration
}

// Option configures Optimize.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Workers is the number of concurrent evaluators; 1 runs sequentially.
	Workers int

	// Progress, if > 0, logs progress every Progress candidates at V(2).
	Progress int

	err error
}

// DefaultOptions returns sequential evaluation without progress logs.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers sets the number of concurrent evaluators.
// n < 1 is recorded as ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithProgress logs a progress line every n candidates (n <= 0 disables).
func WithProgress(n int) Option {
	return func(o *Options) {
		o.Progress = max(n, 0)
	}
}
