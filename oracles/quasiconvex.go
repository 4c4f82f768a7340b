// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"

	"github.com/deepcut/ellalgo/ellipsoid"
)

// QuasiConvexOracle assesses the quasiconvex maximization problem
//
//	max  sqrt(x) / y
//	s.t. exp(x) <= y
//
// over a search point xc = (sqrt(x), log(y)). It implements
// cuttingplane.OptimOracle and is the textbook example of a quasiconvex
// (not convex) objective the ellipsoid method can still minimize via a
// monotone linear-fractional substitution: the cut on constraint 2
// depends on gamma, so the region carved away still only needs gamma to
// increase, not a convex superlevel set of the original objective.
type QuasiConvexOracle struct {
	idx int
}

// NewQuasiConvexOracle returns a fresh oracle with its round-robin
// counter reset.
func NewQuasiConvexOracle() *QuasiConvexOracle {
	return &QuasiConvexOracle{idx: -1}
}

// AssessOptim implements cuttingplane.OptimOracle.
func (o *QuasiConvexOracle) AssessOptim(xc []float64, gamma float64) (cut ellipsoid.Cut, gammaNext float64, shrunk bool) {
	sqrtx := xc[0]
	logy := xc[1]
	y := math.Exp(logy)

	for i := 0; i < 2; i++ {
		o.idx++
		if o.idx == 2 {
			o.idx = 0
		}
		switch o.idx {
		case 0: // exp(x) <= y, i.e. sqrtx^2 <= logy
			if fj := sqrtx*sqrtx - logy; fj > 0.0 {
				return ellipsoid.NewCut([]float64{2 * sqrtx, -1.0}, fj), gamma, false
			}
		case 1:
			tmp3 := gamma * y
			if fj := -sqrtx + tmp3; fj > 0.0 {
				return ellipsoid.NewCut([]float64{-1.0, tmp3}, fj), gamma, false
			}
		}
	}

	gammaNext = sqrtx / y
	return ellipsoid.NewCut([]float64{-1.0, sqrtx}, 0), gammaNext, true
}
