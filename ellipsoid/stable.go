// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

// EllipsoidStable is the Cholesky-factored representation (C2): mq stores
// the LDLᵀ factors of the inverse shape matrix, Q⁻¹ = L·D·Lᵀ, instead of
// the shape matrix itself (unit L below the diagonal, inv(D) on it, so a
// freshly built mq's diagonal equals Q's), updated in place by a rank-one
// modification each step. It costs the same O(n²) per update as Ellipsoid
// but keeps the factorization symmetric to machine precision over long
// iteration counts, where repeatedly mirroring mq(i,j) into mq(j,i) in the
// direct representation slowly drifts apart under floating-point error.
type EllipsoidStable struct {
	n     int
	kappa float64
	mq    matrix
	xc    []float64
	tsq   float64
	calc  calc

	// scratch workspace reused across Update calls.
	invLg     []float64
	invDinvLg []float64
	gradT     []float64
	v         []float64
}

// NewEllipsoidStable builds an axis-aligned ellipsoid around center xc
// with Q = diag(val), so its semi-axes are √val[i].
func NewEllipsoidStable(val, xc []float64) *EllipsoidStable {
	n := len(xc)
	return &EllipsoidStable{
		n:         n,
		kappa:     1.0,
		mq:        diagMatrix(val),
		xc:        append([]float64(nil), xc...),
		calc:      newCalc(n),
		invLg:     make([]float64, n),
		invDinvLg: make([]float64, n),
		gradT:     make([]float64, n),
		v:         make([]float64, n),
	}
}

// NewEllipsoidStableFromBall builds a ball of radius √alpha around xc.
func NewEllipsoidStableFromBall(alpha float64, xc []float64) *EllipsoidStable {
	n := len(xc)
	return &EllipsoidStable{
		n:         n,
		kappa:     alpha,
		mq:        identityMatrix(n),
		xc:        append([]float64(nil), xc...),
		calc:      newCalc(n),
		invLg:     make([]float64, n),
		invDinvLg: make([]float64, n),
		gradT:     make([]float64, n),
		v:         make([]float64, n),
	}
}

func (e *EllipsoidStable) NDim() int { return e.n }

func (e *EllipsoidStable) XC() []float64 { return e.xc }

func (e *EllipsoidStable) SetXC(xc []float64) { copy(e.xc, xc) }

func (e *EllipsoidStable) TSQ() float64 { return e.tsq }

func (e *EllipsoidStable) SetUseParallelCut(use bool) { e.calc.useParallelCut = use }

func (e *EllipsoidStable) Update(cut Cut) CutStatus {
	n := e.n
	g := cut.G

	// inv(L)*g, keeping the multipliers for the rank-one update below.
	invLg := e.invLg
	copy(invLg, g)
	for j := 0; j < n-1; j++ {
		for i := j + 1; i < n; i++ {
			v := e.mq.at(i, j) * invLg[j]
			e.mq.set(j, i, v)
			invLg[i] -= v
		}
	}

	// inv(D)*inv(L)*g
	invDinvLg := e.invDinvLg
	copy(invDinvLg, invLg)
	for i := 0; i < n; i++ {
		invDinvLg[i] *= e.mq.at(i, i)
	}

	omega := dot(invDinvLg, invLg)

	e.tsq = e.kappa * omega

	status, rho, sigma, delta := e.calc.classify(cut, e.tsq)
	if status != Success {
		return status
	}

	// mq*g = inv(L')*inv(D)*inv(L)*g, by backward substitution.
	gradT := e.gradT
	copy(gradT, invDinvLg)
	for i := n - 1; i != 0; i-- {
		for j := i; j < n; j++ {
			gradT[i-1] -= e.mq.at(j, i-1) * gradT[j]
		}
	}

	mu := sigma / (1.0 - sigma)
	oldt := omega / mu
	v := e.v
	copy(v, g)
	for j := 0; j < n; j++ {
		p := v[j]
		temp := invDinvLg[j]
		newt := oldt + p*temp
		beta2 := temp / newt
		e.mq.set(j, j, e.mq.at(j, j)*oldt/newt)
		for k := j + 1; k < n; k++ {
			v[k] -= e.mq.at(j, k)
			e.mq.add(k, j, beta2*v[k])
		}
		oldt = newt
	}

	e.kappa *= delta

	axpy(-rho/omega, gradT, e.xc)
	return status
}

func (e *EllipsoidStable) Clone() Space {
	return &EllipsoidStable{
		n:         e.n,
		kappa:     e.kappa,
		mq:        e.mq.clone(),
		xc:        append([]float64(nil), e.xc...),
		tsq:       e.tsq,
		calc:      e.calc,
		invLg:     make([]float64, e.n),
		invDinvLg: make([]float64, e.n),
		gradT:     make([]float64, e.n),
		v:         make([]float64, e.n),
	}
}
