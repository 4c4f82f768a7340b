// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import "math"

// calc classifies a cut against the current ellipsoid (τ² = tsq) and, when
// the cut is effective, derives the update coefficients ρ, σ, δ. It wraps
// calcCore with the NoSoln/NoEffect guards: calcCore's formulas are only
// numerically well-posed once those guards have passed.
type calc struct {
	core           calcCore
	useParallelCut bool
}

func newCalc(n int) calc {
	return calc{core: newCalcCore(n)}
}

// classify dispatches a Cut to the deep, central or parallel classifier.
//
// tsq = κ·g'Qg is zero exactly when g is the zero vector (κ and Q are
// always positive definite): every cut formula below divides by τ, tsq,
// or the caller's ω at some point, so a zero gradient is reported as
// NoEffect up front rather than let any of them produce a NaN/Inf that
// would corrupt xc and the shape matrix in place.
func (c *calc) classify(cut Cut, tsq float64) (status CutStatus, rho, sigma, delta float64) {
	if tsq == 0 {
		return NoEffect, 0, 0, 1
	}
	if !cut.Parallel {
		if cut.Beta0 == 0 {
			return c.centralCut(tsq)
		}
		return c.deepCut(cut.Beta0, tsq)
	}
	if cut.Beta0 == 0 {
		return c.parallelCentralCut(cut.Beta1, tsq)
	}
	return c.parallelDeepCut(cut.Beta0, cut.Beta1, tsq)
}

// deepCut handles a single cut g' (x - xc) + β ≤ 0.
//
// β > τ proves the half-space misses the ellipsoid (NoSoln). Otherwise
// η = τ + n·β; η ≤ 0 means the cut is too shallow to shrink the ellipsoid
// (NoEffect) — this subsumes the simpler β < -τ bound for n = 1 and is the
// numerically exact guard for n > 1 (it is what keeps σ's (τ+β) denominator
// and ρ = η/(n+1) well-behaved).
func (c *calc) deepCut(beta, tsq float64) (status CutStatus, rho, sigma, delta float64) {
	tau := math.Sqrt(tsq)
	if tau < beta {
		return NoSoln, 0, 0, 0
	}
	eta := tau + c.core.nF*beta
	if eta <= 0 {
		return NoEffect, 0, 0, 1
	}
	rho, sigma, delta = c.core.biasCut(beta, tau, eta)
	return Success, rho, sigma, delta
}

// centralCut handles the central cut g' (x - xc) ≤ 0 (β = 0).
func (c *calc) centralCut(tsq float64) (status CutStatus, rho, sigma, delta float64) {
	rho, sigma, delta = c.core.centralCut(math.Sqrt(tsq))
	return Success, rho, sigma, delta
}

// parallelDeepCut handles a general parallel pair g' (x - xc) + β0 ≤ 0 ≤
// g' (x - xc) + β1, falling back to the single deep cut on β0 when the
// parallel cut degenerates or parallel cuts are disabled.
//
// β0 == β1 is its own fallback: the general formula's h and η coincide
// exactly at that point (k - η vanishes in calcCore.parallelCut, an
// algebraic identity for any n and τ² > β0², not a rounding artifact),
// so it is routed to the deep cut directly rather than evaluated through
// a 0/0 limit. This also makes the two paths produce bit-identical
// results, not merely numerically close ones.
func (c *calc) parallelDeepCut(beta0, beta1, tsq float64) (status CutStatus, rho, sigma, delta float64) {
	if beta1 < beta0 {
		return NoSoln, 0, 0, 0
	}
	if beta1 == beta0 {
		return c.deepCut(beta0, tsq)
	}
	b1sq := beta1 * beta1
	if (beta1 > 0 && tsq <= b1sq) || !c.useParallelCut {
		return c.deepCut(beta0, tsq)
	}
	b0b1 := beta0 * beta1
	eta := tsq + c.core.nF*b0b1
	if eta <= 0 {
		return NoEffect, 0, 0, 1
	}
	rho, sigma, delta = c.core.parallelCut(beta0, beta1, tsq, b0b1, eta)
	return Success, rho, sigma, delta
}

// parallelCentralCut handles a parallel pair with a central lower side:
// g' (x - xc) ≤ 0 ≤ g' (x - xc) + β1.
func (c *calc) parallelCentralCut(beta1, tsq float64) (status CutStatus, rho, sigma, delta float64) {
	if beta1 < 0 {
		return NoSoln, 0, 0, 0
	}
	b1sq := beta1 * beta1
	if tsq < b1sq || !c.useParallelCut {
		return c.centralCut(tsq)
	}
	rho, sigma, delta = c.core.parallelCentralCut(beta1, tsq)
	return Success, rho, sigma, delta
}
