// SPDX-License-Identifier: MIT
// Package: nullnet/runner

package runner

import "time"

// Clock supplies the current time. It is consulted only when no seed was
// configured.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now implements Clock.
func (c FixedClock) Now() time.Time { return time.Time(c) }
