// SPDX-License-Identifier: MIT
// Package: nullnet/swap
//
// types.go — modes, rejection reasons, results and sentinel errors.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Rejected swap attempts are outcomes, never errors.

package swap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/nullnet/core"
)

// Sentinel errors for the swap engine.
var (
	// ErrNilGraph indicates a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("swap: graph is nil")

	// ErrNegativeMinimum indicates a negative swap target.
	ErrNegativeMinimum = errors.New("swap: minimum swap count is negative")

	// ErrDisconnected indicates connectivity-preserving mode was requested on
	// a disconnected graph. Reduce to the largest component first.
	ErrDisconnected = errors.New("swap: graph is not connected")

	// ErrSwapExhaustion indicates the draw ceiling was reached before the
	// accepted-swap target, or that the graph has no two disjoint edges (a
	// star, a triangle or a single edge). The graph is too small or too dense
	// for the requested intensity. The partial Result accompanies this error.
	ErrSwapExhaustion = errors.New("swap: attempt ceiling reached before swap target")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("swap: invalid option supplied")
)

// Mode selects the acceptance constraints of the engine.
type Mode int

const (
	// ConnectivityPreserving accepts a swap only if the graph stays
	// connected, and guarantees at least the requested number of accepted swaps.
	ConnectivityPreserving Mode = iota
	// Unconstrained accepts every legal swap and performs exactly the
	// requested number of attempts, accepted or not.
	Unconstrained
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ConnectivityPreserving:
		return "connected"
	case Unconstrained:
		return "unconstrained"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the textual form produced by String back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "connected", "":
		return ConnectivityPreserving, nil
	case "unconstrained":
		return Unconstrained, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Rejection classifies why an attempt was not accepted.
type Rejection int

// Overlapping draws are not rejections: Step redraws until the two edges
// are disjoint, so the four endpoints of every attempt are distinct and a
// replacement edge can never be a self-loop.
const (
	// Duplicate: a replacement edge already exists.
	Duplicate Rejection = iota
	// Disconnect: the swap would split the graph.
	Disconnect

	numRejections
)

// String implements fmt.Stringer.
func (r Rejection) String() string {
	switch r {
	case Duplicate:
		return "duplicate"
	case Disconnect:
		return "disconnect"
	default:
		return fmt.Sprintf("Rejection(%d)", int(r))
	}
}

// Outcome describes one swap attempt. Removed holds the two sampled
// disjoint edges; Added the proposed replacements.
type Outcome struct {
	Accepted bool
	// Reason is meaningful only when Accepted is false.
	Reason  Rejection
	Removed [2]core.Edge
	Added   [2]core.Edge
	// Draws counts the edge-pair draws this attempt consumed, overlapping
	// redraws included. Always at least 1.
	Draws int
}

// Result summarizes a Permute run. On ErrSwapExhaustion it carries the
// partial counts for diagnostics.
type Result struct {
	// Graph is the permuted graph: the input instance, mutated in place.
	Graph *core.Graph
	Mode  Mode
	// Minimum is the requested number of accepted swaps (Connectivity-
	// Preserving) or attempts (Unconstrained).
	Minimum int
	// Attempted counts proposed rewirings; Draws also counts the
	// overlapping edge pairs that were redrawn.
	Attempted int
	Accepted  int
	Draws     int
	// Batches counts the outer-loop batches run (ConnectivityPreserving only).
	Batches  int
	Rejected map[Rejection]int
}
