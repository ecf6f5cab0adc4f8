// Package runner executes one permutation run end to end:
//
//	read edge list → build simple graph → reduce to the largest connected
//	component (connected mode) → ceil(Q·|E|) swaps → write edge list
//
// It is the only place that touches the clock (for the default seed) and
// the only non-CLI package that logs. Output is written only after the
// permutation succeeded, so a failed run leaves no partial file.
package runner
