// SPDX-License-Identifier: MIT
// Package: nullnet/runner
//
// runner.go — the permutation pipeline.

package runner

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/nullnet/config"
	"github.com/katalvlaran/nullnet/core"
	"github.com/katalvlaran/nullnet/edgelist"
	"github.com/katalvlaran/nullnet/swap"
)

// ErrSwapTargetOverflow indicates that ceil(Q·|E|) is not a finite,
// representable swap count.
var ErrSwapTargetOverflow = errors.New("runner: swap target out of range")

// Runner executes permutation runs. The zero value is not usable; use New.
type Runner struct {
	logger log.FieldLogger
	clock  Clock
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock replaces SystemClock, e.g. with a FixedClock in tests.
func WithClock(c Clock) Option {
	return func(r *Runner) {
		if c != nil {
			r.clock = c
		}
	}
}

// New returns a Runner logging to logger (the logrus standard logger if nil).
func New(logger log.FieldLogger, opts ...Option) *Runner {
	if logger == nil {
		logger = log.StandardLogger()
	}
	r := &Runner{logger: logger, clock: SystemClock{}}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Report describes a finished (or failed) run.
type Report struct {
	RunID string
	// Seed is the effective seed: configured, or derived from the clock.
	Seed int64
	Q    float64
	Mode swap.Mode
	// Build describes how the raw records were folded.
	Build core.BuildReport
	// Reduction describes what the connected-mode reduction dropped.
	Reduction core.Reduction
	// Nodes and Edges describe the graph that was permuted.
	Nodes int
	Edges int
	// MinimumSwaps is ceil(Q·|E|) over the input graph, before any reduction.
	MinimumSwaps int
	// Swap is nil when the run failed before permuting.
	Swap    *swap.Result
	Elapsed time.Duration
}

// MinimumSwaps returns ceil(q·edges). It fails with ErrSwapTargetOverflow
// when q is not a positive finite number or the product does not fit an int.
func MinimumSwaps(q float64, edges int) (int, error) {
	if math.IsNaN(q) || math.IsInf(q, 0) || q <= 0 || edges < 0 {
		return 0, fmt.Errorf("%w: q=%v edges=%d", ErrSwapTargetOverflow, q, edges)
	}
	n := math.Ceil(q * float64(edges))
	// float64(math.MaxInt) rounds up to 2^63, which itself does not fit.
	if n >= float64(math.MaxInt) {
		return 0, fmt.Errorf("%w: ceil(%v*%d) exceeds %d", ErrSwapTargetOverflow, q, edges, math.MaxInt)
	}

	return int(n), nil
}

// Run executes cfg. cfg must validate. On failure no output is written and
// the partial Report is returned with the error.
func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := cfg.SwapMode()
	if err != nil {
		return nil, err
	}

	start := r.clock.Now()
	rep := &Report{RunID: uuid.NewString(), Q: cfg.Q, Mode: mode}
	if cfg.Seed != nil {
		rep.Seed = *cfg.Seed
	} else {
		rep.Seed = start.UnixNano()
	}
	logger := r.logger.WithFields(log.Fields{
		"run":  rep.RunID,
		"seed": rep.Seed,
		"q":    rep.Q,
		"mode": mode.String(),
	})

	pairs, err := edgelist.ReadFile(cfg.Input)
	if err != nil {
		return rep, err
	}
	g, build, err := core.FromPairs(pairs)
	if build != nil {
		rep.Build = *build
	}
	if err != nil {
		return rep, fmt.Errorf("%s: %w", cfg.Input, err)
	}
	if build.Duplicates > 0 || build.SelfLoops > 0 {
		logger.WithFields(log.Fields{
			"duplicates": build.Duplicates,
			"self_loops": build.SelfLoops,
		}).Warn("input records folded into a simple graph")
	}

	if rep.MinimumSwaps, err = MinimumSwaps(cfg.Q, g.EdgeCount()); err != nil {
		return rep, err
	}

	if mode == swap.ConnectivityPreserving && !g.IsConnected() {
		g, rep.Reduction = g.LargestConnectedComponent()
		logger.WithFields(log.Fields{
			"components":    rep.Reduction.Components,
			"dropped_nodes": rep.Reduction.DroppedNodes,
			"dropped_edges": rep.Reduction.DroppedEdges,
		}).Warn("input is disconnected; permuting the largest connected component")
	}

	stats := g.Stats()
	rep.Nodes, rep.Edges = stats.NodeCount, stats.EdgeCount
	logger.WithFields(log.Fields{
		"nodes":       stats.NodeCount,
		"edges":       stats.EdgeCount,
		"min_degree":  stats.MinDegree,
		"max_degree":  stats.MaxDegree,
		"mean_degree": stats.MeanDegree,
		"minimum":     rep.MinimumSwaps,
	}).Debug("graph loaded")

	opts, err := cfg.SwapOptions()
	if err != nil {
		return rep, err
	}
	opts = append(opts, swap.WithSeed(rep.Seed), swap.WithContext(ctx))
	rep.Swap, err = swap.Permute(g, rep.MinimumSwaps, opts...)
	rep.Elapsed = r.clock.Now().Sub(start)
	if err != nil {
		if rep.Swap != nil {
			logger = logger.WithFields(log.Fields{
				"accepted":  rep.Swap.Accepted,
				"attempted": rep.Swap.Attempted,
				"draws":     rep.Swap.Draws,
			})
		}
		logger.WithError(err).Error("permutation failed")
		return rep, err
	}

	if err = edgelist.WriteFile(cfg.Output, g.Edges()); err != nil {
		return rep, err
	}

	logger.WithFields(log.Fields{
		"nodes":     rep.Nodes,
		"edges":     rep.Edges,
		"accepted":  rep.Swap.Accepted,
		"attempted": rep.Swap.Attempted,
		"draws":     rep.Swap.Draws,
		"batches":   rep.Swap.Batches,
		"elapsed":   rep.Elapsed.String(),
		"output":    cfg.Output,
	}).Info("permutation complete")

	return rep, nil
}
