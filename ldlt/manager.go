// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ldlt implements a square-root-free LDLᵀ factorization manager
// for symmetric matrices accessed lazily, sized for repeated use inside
// an outer iteration (LMI/QMI separation oracles) rather than a one-shot
// solve: it is O(p³) per call where p is the size of the leading block
// factored before the first failing pivot, not O(n³).
package ldlt

import "math"

// Elem lazily returns the (i, j) entry of the symmetric matrix being
// factored. Factor and FactorAllowSemidefinite never read the same entry
// twice, so Elem may compute it on demand instead of materializing a
// full matrix.
type Elem func(i, j int) float64

// Manager holds the state of one LDLᵀ factorization attempt and its
// failure witness, reused across calls to Factor to avoid reallocating
// the n×n scratch matrix on every outer iteration.
type Manager struct {
	n          int
	start      int
	stop       int
	t          []float64 // n×n scratch, row-major
	witnessVec []float64
}

// NewManager allocates a manager for n×n matrices.
func NewManager(n int) *Manager {
	return &Manager{
		n:          n,
		t:          make([]float64, n*n),
		witnessVec: make([]float64, n),
	}
}

func (m *Manager) at(i, j int) float64   { return m.t[i*m.n+j] }
func (m *Manager) set(i, j int, v float64) { m.t[i*m.n+j] = v }

// IsSPD reports whether the most recent Factor/FactorAllowSemidefinite
// call found A symmetric positive (semi)definite.
func (m *Manager) IsSPD() bool { return m.stop == 0 }

// Start and Stop return the half-open row range [Start, Stop) of the
// leading block where factorization ran; when IsSPD, Stop is 0.
func (m *Manager) Start() int { return m.start }
func (m *Manager) Stop() int  { return m.stop }

// Factor performs the LDLᵀ factorization of the symmetric matrix whose
// entries are supplied by get. It stops at the first non-positive pivot
// and reports false in that case, leaving p = [0, i+1) marking the
// leading block that failed, ready for Witness.
func (m *Manager) Factor(get Elem) bool {
	m.start, m.stop = 0, 0
	start := m.start
	for i := 0; i < m.n; i++ {
		d := get(i, start)
		for j := start; j < i; j++ {
			m.set(j, i, d)
			m.set(i, j, d/m.at(j, j))
			s := j + 1
			d = get(i, s)
			for k := start; k < s; k++ {
				d -= m.at(i, k) * m.at(k, s)
			}
		}
		m.set(i, i, d)
		if d <= 0.0 {
			m.stop = i + 1
			break
		}
	}
	return m.IsSPD()
}

// FactorAllowSemidefinite is Factor, but a zero pivot restarts the
// leading block at the next row instead of failing outright: it keeps
// looking for a definite tail, which is what an LMI separation oracle
// needs when the candidate matrix is allowed to be singular.
func (m *Manager) FactorAllowSemidefinite(get Elem) bool {
	m.start, m.stop = 0, 0
	for i := 0; i < m.n; i++ {
		d := get(i, m.start)
		for j := m.start; j < i; j++ {
			m.set(j, i, d)
			m.set(i, j, d/m.at(j, j))
			s := j + 1
			d = get(i, s)
			for k := m.start; k < s; k++ {
				d -= m.at(i, k) * m.at(k, s)
			}
		}
		m.set(i, i, d)
		if d < 0.0 {
			m.stop = i + 1
			break
		}
		if d == 0.0 {
			m.start = i + 1
		}
	}
	return m.IsSPD()
}

// Witness returns -T(m,m), the negated failing pivot (so Witness() >= 0),
// and fills WitnessVec with a vector v such that
// v' A[start:stop, start:stop] v = -Witness() <= 0, certifying that
// the leading block found by Factor is not positive definite. It must
// only be called after a Factor call that returned false.
func (m *Manager) Witness() float64 {
	for i := range m.witnessVec {
		m.witnessVec[i] = 0
	}
	start, stop := m.start, m.stop
	last := stop - 1
	m.witnessVec[last] = 1.0
	for i := last; i > start; i-- {
		v := 0.0
		for k := i; k < stop; k++ {
			v -= m.at(k, i-1) * m.witnessVec[k]
		}
		m.witnessVec[i-1] = v
	}
	return -m.at(last, last)
}

// WitnessVec returns the vector computed by the last Witness call.
// Entries outside [Start, Stop) are left at zero.
func (m *Manager) WitnessVec() []float64 { return m.witnessVec }

// SymQuad computes v' A(start:stop, start:stop) v for the witness
// vector v and the symmetric matrix A accessed through get, without
// materializing the submatrix.
func (m *Manager) SymQuad(get Elem) float64 {
	res := 0.0
	v := m.witnessVec
	start, stop := m.start, m.stop
	for i := start; i < stop; i++ {
		s := 0.0
		for j := i + 1; j < stop; j++ {
			s += get(i, j) * v[j]
		}
		res += v[i] * (get(i, i)*v[i] + 2.0*s)
	}
	return res
}

// Sqrt fills the upper-triangular R such that A = RᵀR, given the
// factorization left by a prior successful Factor call. set(i, j, v)
// assigns the (i, j) entry of the destination matrix.
func (m *Manager) Sqrt(set func(i, j int, v float64)) {
	if !m.IsSPD() {
		panic("ldlt: Sqrt requires a positive definite factorization")
	}
	for i := 0; i < m.n; i++ {
		rii := math.Sqrt(m.at(i, i))
		set(i, i, rii)
		for j := i + 1; j < m.n; j++ {
			set(i, j, m.at(j, i)*rii)
			set(j, i, 0.0)
		}
	}
}
