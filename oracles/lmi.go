// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"github.com/deepcut/ellalgo/ellipsoid"
	"github.com/deepcut/ellalgo/ldlt"
)

// LMIOracle solves the linear matrix inequality feasibility problem
//
//	find  x
//	s.t.  B - sum_k x[k]*F[k] >= 0   (positive semidefinite)
//
// by attempting an LDLᵀ factorization of the candidate matrix and, on
// failure, turning the factorization's failure witness into a
// separating cut. A zero pivot counts as a failure, so AssessFeas
// accepts x only when the candidate matrix is positive definite; a
// singular positive semidefinite candidate still gets a cut.
type LMIOracle struct {
	q  *ldlt.Manager
	f  [][][]float64
	f0 [][]float64
}

// NewLMIOracle builds an oracle for p×p symmetric matrices F[0..n-1]
// and B = f0.
func NewLMIOracle(f [][][]float64, f0 [][]float64) *LMIOracle {
	return &LMIOracle{q: ldlt.NewManager(len(f0)), f: f, f0: f0}
}

// AssessFeas implements cuttingplane.FeasOracle.
func (o *LMIOracle) AssessFeas(x []float64) *ellipsoid.Cut {
	n := len(x)
	getA := func(i, j int) float64 {
		a := o.f0[i][j]
		for k := 0; k < n; k++ {
			a -= o.f[k][i][j] * x[k]
		}
		return a
	}

	if o.q.Factor(getA) {
		return nil
	}
	ep := o.q.Witness()
	g := make([]float64, n)
	for i := 0; i < n; i++ {
		fi := o.f[i]
		g[i] = o.q.SymQuad(func(a, b int) float64 { return fi[a][b] })
	}
	cut := ellipsoid.NewCut(g, ep)
	return &cut
}
