// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cuttingplane drives an ellipsoid.Space against a separation or
// subgradient oracle until the region is small enough to certify
// feasibility, optimality, or (for discrete problems) exhaustion of
// nearby lattice points.
package cuttingplane

import "github.com/deepcut/ellalgo/ellipsoid"

// FeasOracle asserts that x is feasible, or returns a cut separating the
// feasible region from x.
type FeasOracle interface {
	AssessFeas(x []float64) *ellipsoid.Cut
}

// OptimOracle evaluates the objective at x against the best-known value
// gamma, returning a cut and the (possibly unchanged) next gamma. shrunk
// reports whether x improves on gamma, in which case the driver records x
// as the new incumbent.
type OptimOracle interface {
	AssessOptim(x []float64, gamma float64) (cut ellipsoid.Cut, gammaNext float64, shrunk bool)
}

// DiscreteOracle is OptimOracle's counterpart for problems whose
// feasible points must lie on an integer lattice: on a NoEffect cut
// the driver sets retry and calls again, giving the oracle a chance to
// probe a different lattice neighbor of x before giving up on this
// ellipsoid (moreAlt false means there is nothing left nearby to try).
type DiscreteOracle interface {
	AssessDiscrete(x []float64, gamma float64, retry bool) (cut ellipsoid.Cut, gammaNext float64, shrunk bool, x0 []float64, moreAlt bool)
}

// BisectOracle reports whether gamma is feasible, for use with BSearch.
type BisectOracle interface {
	AssessBisect(gamma float64) bool
}

// BisectAdaptorOracle composes a FeasOracle whose feasible set depends
// on a threshold with a way to move that threshold, so it can drive
// BSearch through a nested cutting_plane_feas call.
type BisectAdaptorOracle interface {
	FeasOracle
	SetGamma(gamma float64)
}
