// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

// Space is the search-region contract the cutting-plane drivers operate
// against. Both Ellipsoid and EllipsoidStable implement it; the drivers
// never see the shape-matrix representation underneath.
type Space interface {
	// NDim returns the ambient dimension n.
	NDim() int
	// XC returns the current center. Callers must not mutate the slice.
	XC() []float64
	// SetXC replaces the center, e.g. to seed a discrete-rounding retry.
	SetXC(xc []float64)
	// TSQ returns τ² from the most recent Update call.
	TSQ() float64
	// SetUseParallelCut toggles whether parallel cuts are exploited as
	// pairs or degraded to their deep half.
	SetUseParallelCut(use bool)
	// Update shrinks the ellipsoid to contain the intersection of the
	// current region with the cut, mutating the center and shape in
	// place, and reports how the cut was classified.
	Update(cut Cut) CutStatus
	// Clone returns an independent copy sharing no backing storage.
	Clone() Space
}

// Ellipsoid is the direct shape-matrix representation (C1): it stores
// Q = mq and a lazily-applied scale κ such that the region is
//
//	{x | (x - xc)' (κ·Q)^-1 (x - xc) ≤ 1}.
//
// κ defers the rank-one update's scalar multiply (the "defer trick" from
// ell_core.hpp): most iterations only need grad_t and omega, so folding
// δ into mq on every step would do n² extra multiplies it doesn't need
// until NoDeferTrick forces it, or a caller reads the matrix directly.
type Ellipsoid struct {
	n            int
	kappa        float64
	mq           matrix
	xc           []float64
	tsq          float64
	calc         calc
	noDeferTrick bool
	gt           []float64 // scratch: Qg, reused across Update calls
}

// NewEllipsoid builds an axis-aligned ellipsoid around center xc with
// semi-axes √val[i]: Q = diag(val), κ = 1.
func NewEllipsoid(val, xc []float64) *Ellipsoid {
	n := len(xc)
	e := &Ellipsoid{
		n:     n,
		kappa: 1.0,
		mq:    diagMatrix(val),
		xc:    append([]float64(nil), xc...),
		calc:  newCalc(n),
		gt:    make([]float64, n),
	}
	return e
}

// NewEllipsoidFromBall builds a ball of radius √alpha around xc: Q = I,
// κ = alpha.
func NewEllipsoidFromBall(alpha float64, xc []float64) *Ellipsoid {
	n := len(xc)
	e := &Ellipsoid{
		n:     n,
		kappa: alpha,
		mq:    identityMatrix(n),
		xc:    append([]float64(nil), xc...),
		calc:  newCalc(n),
		gt:    make([]float64, n),
	}
	return e
}

func (e *Ellipsoid) NDim() int { return e.n }

func (e *Ellipsoid) XC() []float64 { return e.xc }

func (e *Ellipsoid) SetXC(xc []float64) { copy(e.xc, xc) }

func (e *Ellipsoid) TSQ() float64 { return e.tsq }

func (e *Ellipsoid) SetUseParallelCut(use bool) { e.calc.useParallelCut = use }

// NoDeferTrick forces κ to be folded into Q immediately after every
// update instead of being carried lazily, matching EllCore's
// no_defer_trick flag. Some callers need mq to be the true shape matrix
// at all times (e.g. reading it out for a dual certificate) and accept
// the extra n² multiplies.
func (e *Ellipsoid) SetNoDeferTrick(v bool) { e.noDeferTrick = v }

func (e *Ellipsoid) Update(cut Cut) CutStatus {
	n := e.n
	grad := cut.G
	gt := e.gt
	for i := 0; i < n; i++ {
		gt[i] = dot(e.mq.data[i*n:i*n+n], grad)
	}
	omega := dot(gt, grad)

	e.tsq = e.kappa * omega

	var status CutStatus
	var rho, sigma, delta float64
	status, rho, sigma, delta = e.calc.classify(cut, e.tsq)
	if status != Success {
		return status
	}

	r := sigma / omega
	for i := 0; i < n; i++ {
		rqg := r * gt[i]
		for j := 0; j < i; j++ {
			v := e.mq.at(i, j) - rqg*gt[j]
			e.mq.set(i, j, v)
			e.mq.set(j, i, v)
		}
		e.mq.add(i, i, -rqg*gt[i])
	}

	e.kappa *= delta

	if e.noDeferTrick {
		e.mq.scale(e.kappa)
		e.kappa = 1.0
	}

	axpy(-rho/omega, gt, e.xc)
	return status
}

func (e *Ellipsoid) Clone() Space {
	c := &Ellipsoid{
		n:            e.n,
		kappa:        e.kappa,
		mq:           e.mq.clone(),
		xc:           append([]float64(nil), e.xc...),
		tsq:          e.tsq,
		calc:         e.calc,
		noDeferTrick: e.noDeferTrick,
		gt:           make([]float64, e.n),
	}
	return c
}
