// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ellipsoid implements the ellipsoid-method search space: the
// numerical state machine that shrinks an enclosing ellipsoid around the
// intersection of a half-space cut with the current region.
package ellipsoid

// CutStatus classifies the outcome of applying a cut to a Space.
type CutStatus int

const (
	// Success means the ellipsoid was updated to the minimum-volume
	// ellipsoid containing the cut half-space intersection.
	Success CutStatus = iota
	// NoSoln means the cut proves the search region is infeasible:
	// the half-space misses the ellipsoid entirely.
	NoSoln
	// SmallEnough means a parallel cut collapsed to a vacuous pair.
	SmallEnough
	// NoEffect means the cut does not shrink the ellipsoid.
	NoEffect
)

func (s CutStatus) String() string {
	switch s {
	case Success:
		return "Success"
	case NoSoln:
		return "NoSoln"
	case SmallEnough:
		return "SmallEnough"
	case NoEffect:
		return "NoEffect"
	default:
		return "Unknown"
	}
}

// Cut is a half-space g·(x - xc) + β ≤ 0, or a parallel pair
// g·(x - xc) + β0 ≤ 0 ≤ g·(x - xc) + β1 when Parallel is set.
type Cut struct {
	G        []float64
	Beta0    float64
	Beta1    float64
	Parallel bool
}

// NewCut builds a single deep/central cut g·(x - xc) + β ≤ 0.
func NewCut(g []float64, beta float64) Cut {
	return Cut{G: g, Beta0: beta}
}

// NewParallelCut builds a parallel pair of cuts bracketing the solution set:
//
//	g·(x - xc) + β0 ≤ 0 ≤ g·(x - xc) + β1
func NewParallelCut(g []float64, beta0, beta1 float64) Cut {
	return Cut{G: g, Beta0: beta0, Beta1: beta1, Parallel: true}
}
