// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import "math"

// calcCore holds the dimension-dependent constants shared by every cut
// formula and evaluates the pure ρ/σ/δ algebra once a cut has already been
// classified as effective. It never allocates and never branches on
// feasibility — that is calc.go's job.
type calcCore struct {
	nF     float64
	nPlus1 float64
	halfN  float64
	invN   float64
	cst1   float64 // n² / (n² - 1)
	cst2   float64 // 2 / (n + 1)
}

func newCalcCore(n int) calcCore {
	nF := float64(n)
	nSq := nF * nF
	return calcCore{
		nF:     nF,
		nPlus1: nF + 1.0,
		halfN:  nF / 2.0,
		invN:   1.0 / nF,
		cst1:   nSq / (nSq - 1.0),
		cst2:   2.0 / (nF + 1.0),
	}
}

// biasCut computes ρ, σ, δ for a single (possibly central) cut
//
//	g' (x - xc) + β ≤ 0
//
// given τ = √tsq and η = τ + n·β.
func (c *calcCore) biasCut(beta, tau, eta float64) (rho, sigma, delta float64) {
	alpha := beta / tau
	sigma = c.cst2 * eta / (tau + beta)
	rho = eta / c.nPlus1
	delta = c.cst1 * (1.0 - alpha*alpha)
	return
}

// centralCut computes ρ, σ, δ for the central cut g' (x - xc) ≤ 0.
func (c *calcCore) centralCut(tau float64) (rho, sigma, delta float64) {
	sigma = c.cst2
	rho = tau / c.nPlus1
	delta = c.cst1
	return
}

// parallelCut computes ρ, σ, δ for a parallel pair
//
//	g' (x - xc) + β0 ≤ 0 ≤ g' (x - xc) + β1
//
// given b0b1 = β0·β1 and η = tsq + n·b0b1.
func (c *calcCore) parallelCut(beta0, beta1, tsq, b0b1, eta float64) (rho, sigma, delta float64) {
	bavg := 0.5 * (beta0 + beta1)
	bavgsq := bavg * bavg
	h := 0.5*(tsq+b0b1) + c.nF*bavgsq
	k := h + math.Sqrt(h*h-c.nPlus1*eta*bavgsq)
	invMuPlus1 := eta / k
	invMu := eta / (k - eta)
	rho = bavg * invMuPlus1
	sigma = invMuPlus1
	delta = (tsq + invMu*(bavgsq*invMuPlus1-b0b1)) / tsq
	return
}

// parallelCentralCut computes ρ, σ, δ for a parallel pair where one side is
// central: g' (x - xc) ≤ 0 ≤ g' (x - xc) + β1.
func (c *calcCore) parallelCentralCut(beta1, tsq float64) (rho, sigma, delta float64) {
	b1sq := beta1 * beta1
	a1sq := b1sq / tsq
	k := c.halfN * a1sq
	r := k + math.Sqrt(1.0-a1sq+k*k)
	rPlus1 := r + 1.0
	rho = beta1 / rPlus1
	sigma = 2.0 / rPlus1
	delta = r / (r - c.invN)
	return
}
