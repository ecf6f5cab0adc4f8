// SPDX-License-Identifier: MIT
// Package: nullnet/builder
//
// id_fn.go — vertex ID schemes.

package builder

import "github.com/katalvlaran/nullnet/core"

// IDFn maps a constructor-local vertex index to a node ID.
type IDFn func(idx int) core.NodeID

// DefaultIDFn is the identity scheme: 0,1,2,...
func DefaultIDFn(idx int) core.NodeID { return core.NodeID(idx) }

// OneBasedIDFn numbers vertices from 1, matching most published edge lists.
func OneBasedIDFn(idx int) core.NodeID { return core.NodeID(idx + 1) }

// StrideIDFn spaces IDs by stride, starting at start. Panics on stride < 1.
func StrideIDFn(start, stride int) IDFn {
	if stride < 1 {
		panic("builder: StrideIDFn stride must be ≥ 1")
	}
	return func(idx int) core.NodeID {
		return core.NodeID(start + idx*stride)
	}
}

// WithOneBasedIDs is shorthand for WithIDScheme(OneBasedIDFn).
func WithOneBasedIDs() BuilderOption {
	return WithIDScheme(OneBasedIDFn)
}
