// SPDX-License-Identifier: MIT
// Package: nullnet/swap
//
// permute.go — Permute, the public entry point.

package swap

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/nullnet/core"
)

// Permute randomizes g in place by degree-preserving double-edge swaps and
// returns a Result describing the run.
//
// Modes:
//   - ConnectivityPreserving (default): g must be connected. Batches of
//     max(minimum-accepted, BatchFloor) swaps run until at least minimum
//     swaps were accepted. A batch that spends MaxAttempts edge-pair draws
//     without reaching its target fails with ErrSwapExhaustion.
//   - Unconstrained: exactly minimum attempts are made, each proposing a
//     rewiring of two disjoint edges; connectivity is not checked and the
//     accepted count may fall below minimum.
//
// In both modes a graph without two disjoint edges fails with
// ErrSwapExhaustion before any draw.
//
// The degree of every node and the edge count are unchanged. With the same
// input graph, minimum and random stream the output is identical.
//
// minimum == 0 returns immediately after the nil and empty-graph checks,
// without touching g or the random source.
//
// Errors: ErrNilGraph, ErrNegativeMinimum, ErrOptionViolation,
// core.ErrEmptyGraph, ErrDisconnected, ErrSwapExhaustion, context errors.
// On ErrSwapExhaustion and cancellation the partial Result is returned too.
func Permute(g *core.Graph, minimum int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if minimum < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeMinimum, minimum)
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if g.EdgeCount() == 0 {
		return nil, core.ErrEmptyGraph
	}

	res := &Result{Graph: g, Mode: o.Mode, Minimum: minimum, Rejected: map[Rejection]int{}}
	if minimum == 0 {
		return res, nil
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(defaultSeed))
	}

	e, err := NewEngine(g, o.Mode, o.Rand)
	if errors.Is(err, ErrSwapExhaustion) {
		return res, err
	}
	if err != nil {
		return nil, err
	}
	e.onAttempt = o.OnAttempt

	if o.Mode == Unconstrained {
		err = e.RunAttempts(o.Ctx, minimum)
		e.fill(res)

		return res, err
	}

	for e.accepted < minimum {
		if err = o.Ctx.Err(); err != nil {
			break
		}
		target := max(minimum-e.accepted, o.BatchFloor)
		res.Batches++
		if _, err = e.RunBatch(o.Ctx, target, o.MaxAttempts); err != nil {
			if errors.Is(err, ErrSwapExhaustion) {
				err = fmt.Errorf("%w; %d of %d swaps accepted in %d attempts",
					err, e.accepted, minimum, e.attempted)
			}
			break
		}
	}
	e.fill(res)

	return res, err
}

// fill copies the engine counters into res.
func (e *Engine) fill(res *Result) {
	res.Attempted = e.attempted
	res.Accepted = e.accepted
	res.Draws = e.draws
	for r := Rejection(0); r < numRejections; r++ {
		if n := e.rejected[r]; n > 0 {
			res.Rejected[r] = n
		}
	}
}
