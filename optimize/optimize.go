// SPDX-License-Identifier: MIT

package optimize

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/plan-systems/klog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dicebalance/die"
	"github.com/katalvlaran/dicebalance/weights"
)

const tracerName = "github.com/katalvlaran/dicebalance/optimize"

// source yields candidates with their ordinals; *weights.Generator is one.
type source interface {
	Each(fn func(ordinal int, w []int) bool)
	Count() int
}

// candidate is one weight vector tagged with its enumeration ordinal.
type candidate struct {
	ordinal int
	w       []int
}

// best tracks the current optimum. Ties keep the lower ordinal, so the
// result equals a sequential scan with strict-less replacement.
type best struct {
	ordinal int
	spread  float64
	w       []int
}

func (b *best) offer(ordinal int, spread float64, w []int) {
	if b.w == nil || spread < b.spread || (spread == b.spread && ordinal < b.ordinal) {
		b.ordinal, b.spread, b.w = ordinal, spread, w
	}
}

// Optimize evaluates every antipodally symmetric assignment of d with face 1
// locked to value 1, keeps the one with the smallest spread of corner
// averages, assigns it to d and returns it.
//
// Steps:
//  1. weights.LockedOne(d.FaceCount(), d.Opposite()); malformed pairs fail here.
//  2. Evaluate each candidate with d.Spread (pure; no shared writes).
//  3. Keep the minimum by (spread, ordinal).
//  4. d.Assign(best).
//
// With WithWorkers(n > 1) candidates are fanned out to n goroutines; the
// result is identical to the sequential one. Cancelling ctx aborts with
// ctx.Err().
func Optimize(ctx context.Context, d *die.Die, opts ...Option) (Result, error) {
	if d == nil {
		return Result{}, ErrDieNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}

	gen, err := weights.LockedOne(d.FaceCount(), d.Opposite())
	if err != nil {
		return Result{}, fmt.Errorf("optimize: %w", err)
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "optimize.Optimize", trace.WithAttributes(
		attribute.String("die.name", d.Name()),
		attribute.Int("die.faces", d.FaceCount()),
		attribute.Int("die.corners", len(d.Corners())),
		attribute.Int("optimize.candidates", gen.Count()),
		attribute.Int("optimize.workers", o.Workers),
	))
	defer span.End()

	klog.V(1).Infof("optimize: %s: %d faces, %d corners, %d candidates, %d workers",
		d.Name(), d.FaceCount(), len(d.Corners()), gen.Count(), o.Workers)

	start := time.Now()
	b, evaluated, err := search(ctx, d, gen, o)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	if err = d.Assign(b.w); err != nil {
		return Result{}, fmt.Errorf("optimize: %w", err)
	}
	res := Result{
		Weights:    append([]int(nil), b.w...),
		Spread:     b.spread,
		Candidates: evaluated,
		Elapsed:    time.Since(start),
	}
	span.SetAttributes(attribute.Float64("optimize.spread", res.Spread))
	klog.V(1).Infof("optimize: %s: spread %.6f after %d candidates in %s",
		d.Name(), res.Spread, res.Candidates, res.Elapsed)

	return res, nil
}

// search runs the sequential or parallel scan over src. A source that
// yields nothing reports ErrNoCandidates; LockedOne always yields at least
// the identity ordering.
func search(ctx context.Context, d *die.Die, src source, o Options) (best, int, error) {
	var (
		b         best
		evaluated int
		err       error
	)
	if o.Workers > 1 {
		b, evaluated, err = parallel(ctx, d, src, o)
	} else {
		b, evaluated, err = sequential(ctx, d, src, o)
	}
	if err == nil && b.w == nil {
		err = ErrNoCandidates
	}

	return b, evaluated, err
}

func sequential(ctx context.Context, d *die.Die, gen source, o Options) (best, int, error) {
	var (
		b         best
		evaluated int
		err       error
	)
	gen.Each(func(ordinal int, w []int) bool {
		if err = ctx.Err(); err != nil {
			return false
		}
		var s float64
		if s, err = d.Spread(w); err != nil {
			return false
		}
		b.offer(ordinal, s, w)
		evaluated++
		logProgress(o, evaluated, gen.Count(), b.spread)

		return true
	})

	return b, evaluated, err
}

func parallel(ctx context.Context, d *die.Die, gen source, o Options) (best, int, error) {
	eg, ctx := errgroup.WithContext(ctx)
	feed := make(chan candidate, o.Workers*4)

	eg.Go(func() error {
		defer close(feed)
		var err error
		gen.Each(func(ordinal int, w []int) bool {
			select {
			case feed <- candidate{ordinal: ordinal, w: w}:
				return true
			case <-ctx.Done():
				err = ctx.Err()
				return false
			}
		})

		return err
	})

	var (
		done      atomic.Int64
		bestSoFar atomic.Uint64 // math.Float64bits of the lowest spread seen
	)
	bestSoFar.Store(math.Float64bits(math.Inf(1)))
	locals := make([]best, o.Workers)
	for i := range o.Workers {
		eg.Go(func() error {
			for c := range feed {
				s, err := d.Spread(c.w)
				if err != nil {
					return err
				}
				locals[i].offer(c.ordinal, s, c.w)
				lowerBits(&bestSoFar, s)
				n := int(done.Add(1))
				logProgress(o, n, gen.Count(), math.Float64frombits(bestSoFar.Load()))
			}

			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return best{}, 0, err
	}

	var b best
	for _, l := range locals {
		if l.w != nil {
			b.offer(l.ordinal, l.spread, l.w)
		}
	}

	return b, int(done.Load()), nil
}

// lowerBits stores s in bits if it is below the current value. Spreads are
// non-negative, so their IEEE bit patterns order like the values.
func lowerBits(bits *atomic.Uint64, s float64) {
	nb := math.Float64bits(s)
	for {
		old := bits.Load()
		if nb >= old || bits.CompareAndSwap(old, nb) {
			return
		}
	}
}

// progressf receives progress lines; tests replace it.
var progressf = func(format string, args ...any) {
	klog.V(2).Infof(format, args...)
}

func logProgress(o Options, done, total int, spread float64) {
	if o.Progress > 0 && (done%o.Progress == 0 || done == total) {
		progressf("optimize: %d/%d candidates, best spread %.6f", done, total, spread)
	}
}
