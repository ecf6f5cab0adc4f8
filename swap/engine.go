// SPDX-License-Identifier: MIT
// Package: nullnet/swap
//
// engine.go — the single-attempt state machine behind Permute.
//
// Attempt protocol:
//  1. Draw {a,b} and {c,d} uniformly with replacement; redraw while they
//     share an endpoint. Every draw is counted, the attempt only once.
//  2. Flip a fair coin; on heads exchange c and d. The proposal is then
//     {a,b},{c,d} → {a,d},{c,b}, covering both possible rewirings.
//  3. Duplicate → reject (core.Graph.CanSwap).
//  4. ConnectivityPreserving: apply, test a~b, undo on failure.
//  5. Commit.

package swap

import (
	"context"
	"fmt"

	"github.com/katalvlaran/nullnet/bfs"
	"github.com/katalvlaran/nullnet/core"
)

// Engine performs swap attempts on one graph. Its counters are the whole
// state of a run, so a test can drive it attempt by attempt.
// An Engine owns its graph for its lifetime and is not safe for concurrent use.
type Engine struct {
	graph     *core.Graph
	rng       core.Rand
	mode      Mode
	search    *bfs.Searcher
	onAttempt func(Outcome)

	attempted int
	accepted  int
	draws     int
	rejected  [numRejections]int
}

// NewEngine validates g for the given mode and returns an Engine bound to it.
//
// Errors:
//   - ErrNilGraph, ErrOptionViolation (nil rng or unknown mode).
//   - core.ErrEmptyGraph if g has no edges.
//   - ErrDisconnected if mode is ConnectivityPreserving and g is disconnected.
//   - ErrSwapExhaustion if no two edges of g are disjoint. Swaps preserve
//     the degree sequence, and with it this property, so Step always
//     finds a disjoint pair on an Engine that was built.
func NewEngine(g *core.Graph, mode Mode, rng core.Rand) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: nil Rand", ErrOptionViolation)
	}
	if mode != ConnectivityPreserving && mode != Unconstrained {
		return nil, fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(mode))
	}
	if g.EdgeCount() == 0 {
		return nil, core.ErrEmptyGraph
	}
	if mode == ConnectivityPreserving && !g.IsConnected() {
		return nil, ErrDisconnected
	}
	if !swappable(g) {
		return nil, fmt.Errorf("%w: no two edges of the graph are disjoint", ErrSwapExhaustion)
	}

	e := &Engine{graph: g, rng: rng, mode: mode}
	if mode == ConnectivityPreserving {
		e.search = bfs.NewSearcher(g)
	}

	return e, nil
}

// Attempted returns the number of attempts made so far.
func (e *Engine) Attempted() int { return e.attempted }

// Draws returns the number of edge pairs drawn so far, redraws included.
func (e *Engine) Draws() int { return e.draws }

// Accepted returns the number of committed swaps so far.
func (e *Engine) Accepted() int { return e.accepted }

// Rejected returns how many attempts were rejected for reason r.
func (e *Engine) Rejected(r Rejection) int {
	if r < 0 || r >= numRejections {
		return 0
	}

	return e.rejected[r]
}

// Graph returns the graph being permuted.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Step performs exactly one attempt and reports its outcome.
// Complexity: expected O(1) draws; O(1) checks in Unconstrained mode and one
// early-exit BFS per candidate in ConnectivityPreserving mode.
func (e *Engine) Step() Outcome {
	e.attempted++
	var out Outcome
	// NewEngine guarantees a non-empty graph, a non-nil source and a
	// disjoint pair, so this loop terminates.
	for {
		out.Draws++
		ab, _ := e.graph.RandomEdge(e.rng)
		cd, _ := e.graph.RandomEdge(e.rng)
		if !ab.Has(cd.U) && !ab.Has(cd.V) {
			out.Removed = [2]core.Edge{ab, cd}
			break
		}
	}
	e.draws += out.Draws

	a, b, c, d := out.Removed[0].U, out.Removed[0].V, out.Removed[1].U, out.Removed[1].V
	if e.rng.Intn(2) == 1 {
		c, d = d, c
	}
	out.Added = [2]core.Edge{core.NewEdge(a, d), core.NewEdge(c, b)}

	// Endpoints are distinct and both originals exist, so the only way
	// CanSwap fails is an existing replacement edge.
	if !e.graph.CanSwap(a, b, c, d) {
		return e.reject(out, Duplicate)
	}

	e.graph.ApplySwap(a, b, c, d)
	// The graph was connected before the swap. With {a,d} and {c,b} present,
	// a~b implies c~d, so one query decides connectivity.
	if e.search != nil && !e.search.Reachable(a, b) {
		e.graph.ApplySwap(a, d, c, b)
		return e.reject(out, Disconnect)
	}

	e.accepted++
	out.Accepted = true
	if e.onAttempt != nil {
		e.onAttempt(out)
	}

	return out
}

func (e *Engine) reject(out Outcome, r Rejection) Outcome {
	e.rejected[r]++
	out.Reason = r
	if e.onAttempt != nil {
		e.onAttempt(out)
	}

	return out
}

// RunAttempts performs exactly n attempts regardless of their outcome.
// It returns ctx.Err() if the context is cancelled midway.
func (e *Engine) RunAttempts(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		e.Step()
	}

	return nil
}

// RunBatch attempts swaps until target more have been accepted or ceiling
// edge-pair draws have been spent in this batch, whichever comes first.
// Redraws count toward the ceiling; the last attempt may finish a few draws
// past it. It returns the number accepted in the batch.
//
// Errors:
//   - ErrSwapExhaustion (wrapped) if the ceiling was reached first.
//   - ctx.Err() on cancellation.
func (e *Engine) RunBatch(ctx context.Context, target, ceiling int) (int, error) {
	start, startDraws := e.accepted, e.draws
	for i := 0; e.accepted-start < target; i++ {
		if spent := e.draws - startDraws; spent >= ceiling {
			return e.accepted - start, fmt.Errorf("%w: accepted %d of %d after %d draws",
				ErrSwapExhaustion, e.accepted-start, target, spent)
		}
		if i%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return e.accepted - start, err
			}
		}
		e.Step()
	}

	return e.accepted - start, nil
}

// swappable reports whether g has two edges without a common endpoint.
// Pairwise-intersecting edge sets are exactly stars and triangles, so any
// other graph with two or more edges qualifies.
func swappable(g *core.Graph) bool {
	m := g.EdgeCount()
	if m < 2 {
		return false
	}
	if m == 3 {
		// Three edges on three endpoints form a triangle; isolated nodes
		// do not count.
		ends := make(map[core.NodeID]struct{}, 6)
		for _, e := range g.Edges() {
			ends[e.U], ends[e.V] = struct{}{}, struct{}{}
		}
		if len(ends) == 3 {
			return false
		}
	}
	for _, id := range g.Nodes() {
		if d, _ := g.Degree(id); d == m {
			return false
		}
	}

	return true
}
