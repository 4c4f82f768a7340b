// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oracles collects reference separation/subgradient oracles used
// to exercise the ellipsoid/cuttingplane/ldlt packages end to end. They
// are fixtures for tests and the demo CLI, not a general application
// layer: anything beyond what those need belongs in a caller's own
// oracle, not here.
package oracles

import (
	"math"

	"github.com/deepcut/ellalgo/ellipsoid"
)

// ProfitOracle assesses the Cobb-Douglas profit maximization problem
//
//	max  p·(A·x1^a0·x2^a1) - v0·x1 - v1·x2
//	s.t. x1 <= k
//
// against a log-scale candidate y = log(x). It implements
// cuttingplane.OptimOracle.
type ProfitOracle struct {
	logPA float64
	logK  float64
	v     [2]float64
	A     [2]float64 // output elasticities; exported so a robust variant can perturb it
	idx   int
}

// NewProfitOracle builds a ProfitOracle for market price p, production
// scale A, input cap k, output elasticities a, and output prices v.
func NewProfitOracle(p, scaleA, k float64, a, v [2]float64) *ProfitOracle {
	return &ProfitOracle{
		logPA: math.Log(p * scaleA),
		logK:  math.Log(k),
		v:     v,
		A:     a,
	}
}

// AssessOptim implements cuttingplane.OptimOracle.
func (o *ProfitOracle) AssessOptim(y []float64, gamma float64) (cut ellipsoid.Cut, gammaNext float64, shrunk bool) {
	x := [2]float64{math.Exp(y[0]), math.Exp(y[1])}
	var vx, te, logCobb float64

	for i := 0; i < 2; i++ {
		o.idx++
		if o.idx == 2 {
			o.idx = 0 // round robin between the two constraints
		}
		var fj float64
		switch o.idx {
		case 0: // x1 <= k, i.e. y0 <= log k
			fj = y[0] - o.logK
		case 1:
			logCobb = o.logPA + o.A[0]*y[0] + o.A[1]*y[1]
			vx = o.v[0]*x[0] + o.v[1]*x[1]
			te = gamma + vx
			fj = math.Log(te) - logCobb
		}
		if fj > 0.0 {
			switch o.idx {
			case 0:
				return ellipsoid.NewCut([]float64{1.0, 0.0}, fj), gamma, false
			case 1:
				g := []float64{o.v[0]*x[0]/te - o.A[0], o.v[1]*x[1]/te - o.A[1]}
				return ellipsoid.NewCut(g, fj), gamma, false
			}
		}
	}

	te = math.Exp(logCobb)
	gammaNext = te - vx
	g := []float64{o.v[0]*x[0]/te - o.A[0], o.v[1]*x[1]/te - o.A[1]}
	return ellipsoid.NewCut(g, 0), gammaNext, true
}

// ProfitOracleQ is ProfitOracle restricted to integer input quantities.
// It implements cuttingplane.DiscreteOracle by rounding y to the
// nearest positive lattice point once per retry=false call, delegating
// the cut to ProfitOracle, and shifting the cut's beta to account for
// the gap between the rounded point and the query point.
type ProfitOracleQ struct {
	p  *ProfitOracle
	yd []float64
}

// NewProfitOracleQ builds the discrete counterpart of NewProfitOracle.
func NewProfitOracleQ(p, scaleA, k float64, a, v [2]float64) *ProfitOracleQ {
	return &ProfitOracleQ{p: NewProfitOracle(p, scaleA, k, a, v)}
}

// AssessDiscrete implements cuttingplane.DiscreteOracle. It never
// reports an alternative lattice point (moreAlt is always false): a
// NoEffect cut at the rounded point simply ends the search for this
// ellipsoid.
func (o *ProfitOracleQ) AssessDiscrete(y []float64, gamma float64, retry bool) (cut ellipsoid.Cut, gammaNext float64, shrunk bool, x0 []float64, moreAlt bool) {
	if !retry {
		x0, x1 := math.Round(math.Exp(y[0])), math.Round(math.Exp(y[1]))
		if x0 == 0 {
			x0 = 1
		}
		if x1 == 0 {
			x1 = 1
		}
		o.yd = []float64{math.Log(x0), math.Log(x1)}
	}
	cut, gammaNext, shrunk = o.p.AssessOptim(o.yd, gamma)
	d0, d1 := o.yd[0]-y[0], o.yd[1]-y[1]
	beta := cut.Beta0 + cut.G[0]*d0 + cut.G[1]*d1
	cut = ellipsoid.NewCut(cut.G, beta)
	return cut, gammaNext, shrunk, o.yd, false
}
