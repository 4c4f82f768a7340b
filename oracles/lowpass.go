// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"

	"github.com/deepcut/ellalgo/ellipsoid"
)

// LowpassOracle assesses an FIR lowpass filter design problem via
// spectral factorization (Wu, Boyd & Vandenberghe): the autocorrelation
// coefficients r of the impulse response are optimized so that the
// squared magnitude response R(w) stays within [Lpsq, Upsq] across the
// passband, stays nonnegative everywhere, and its peak across the
// stopband is minimized.
//
// A is the discretized frequency response matrix: row k holds
// [1, 2cos(w_k), 2cos(2w_k), ..., 2cos((n-1)w_k)] for the k-th sampled
// frequency w_k in [0, π], so A[k]·r = R(w_k).
type LowpassOracle struct {
	a      [][]float64
	lpsq   float64
	upsq   float64
	nwpass int
	nwstop int
}

// NewLowpassOracle builds a LowpassOracle for n FIR coefficients,
// passband/stopband edges as fractions of π, and the passband's
// squared magnitude bounds.
func NewLowpassOracle(n int, lpsq, upsq, wpass, wstop float64) *LowpassOracle {
	m := 15 * n
	a := make([][]float64, m)
	for i := 0; i < m; i++ {
		w := float64(i) * math.Pi / float64(m-1)
		row := make([]float64, n)
		row[0] = 1.0
		for j := 1; j < n; j++ {
			row[j] = 2.0 * math.Cos(w*float64(j))
		}
		a[i] = row
	}
	return &LowpassOracle{
		a:      a,
		lpsq:   lpsq,
		upsq:   upsq,
		nwpass: int(math.Floor(wpass*float64(m-1))) + 1,
		nwstop: int(math.Floor(wstop*float64(m-1))) + 1,
	}
}

// NewLowpassCase builds the standard lowpass design used by the
// reference benchmark: n FIR coefficients, passband edge at 0.12π,
// stopband edge at 0.20π, and ±0.125 passband ripple. It returns the
// oracle and the initial stopband-peak bound to pass as gamma.
func NewLowpassCase(n int) (*LowpassOracle, float64) {
	const wpass, wstop = 0.12, 0.20
	const rippleDB = 0.125
	delta1 := 20.0 * math.Log10(1.0+rippleDB)
	delta2 := 20.0 * math.Log10(rippleDB)
	lp := math.Pow(10, -delta1/20)
	up := math.Pow(10, delta1/20)
	sp := math.Pow(10, delta2/20)
	omega := NewLowpassOracle(n, lp*lp, up*up, wpass, wstop)
	return omega, sp * sp
}

func (o *LowpassOracle) matrixVector(k int, x []float64) float64 {
	row := o.a[k]
	var sum float64
	for j, xj := range x {
		sum += row[j] * xj
	}
	return sum
}

func negate(g []float64) []float64 {
	out := make([]float64, len(g))
	for i, v := range g {
		out[i] = -v
	}
	return out
}

// AssessOptim implements cuttingplane.OptimOracle. gamma tracks the
// best stopband peak found so far (Spsq in the reference).
func (o *LowpassOracle) AssessOptim(x []float64, gamma float64) (cut ellipsoid.Cut, gammaNext float64, shrunk bool) {
	n := len(x)

	// nonnegative-real constraint at the DC coefficient.
	if x[0] < 0.0 {
		g := make([]float64, n)
		g[0] = -1.0
		return ellipsoid.NewCut(g, -x[0]), gamma, false
	}

	// passband bounds.
	for k := 0; k < o.nwpass; k++ {
		v := o.matrixVector(k, x)
		if v > o.upsq {
			return ellipsoid.NewParallelCut(o.a[k], v-o.upsq, v-o.lpsq), gamma, false
		}
		if v < o.lpsq {
			return ellipsoid.NewParallelCut(negate(o.a[k]), -v+o.lpsq, -v+o.upsq), gamma, false
		}
	}

	// stopband peak, tracking the row that attains it for the final cut.
	fmax := -1e100
	kmax := 0
	for k := o.nwstop; k < len(o.a); k++ {
		v := o.matrixVector(k, x)
		if v > gamma {
			return ellipsoid.NewParallelCut(o.a[k], v-gamma, v), gamma, false
		}
		if v < 0.0 {
			return ellipsoid.NewParallelCut(negate(o.a[k]), -v, -v+gamma), gamma, false
		}
		if v > fmax {
			fmax = v
			kmax = k
		}
	}

	// nonnegative-real constraint across the transition band.
	for k := o.nwpass; k < o.nwstop; k++ {
		v := o.matrixVector(k, x)
		if v < 0.0 {
			return ellipsoid.NewCut(negate(o.a[k]), -v), gamma, false
		}
	}

	return ellipsoid.NewParallelCut(o.a[kmax], 0, fmax), fmax, true
}
