// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oracles

import (
	"math"
	"testing"

	"github.com/deepcut/ellalgo/numdiff"
)

// TestProfitOracleGradientMatchesFiniteDifference cross-checks the
// analytic subgradient formula ProfitOracle.AssessOptim uses for the
// binding revenue constraint, restated here rather than obtained by
// calling the oracle, against a central finite-difference approximation
// of the same scalar residual, the way a gradient-check test does for
// any hand-derived Jacobian.
func TestProfitOracleGradientMatchesFiniteDifference(t *testing.T) {
	logPA := math.Log(20.0 * 40.0)
	a := [2]float64{0.1, 0.4}
	v := [2]float64{10.0, 35.0}
	gamma := 5.0

	residual := func(y, out []float64) {
		x0, x1 := math.Exp(y[0]), math.Exp(y[1])
		te := gamma + v[0]*x0 + v[1]*x1
		out[0] = math.Log(te) - (logPA + a[0]*y[0] + a[1]*y[1])
	}

	y := []float64{0.2, -0.3}
	spec := numdiff.ApproxSpec{
		N:      2,
		M:      1,
		Object: residual,
		Method: numdiff.Central,
	}
	numericGrad := make([]float64, 2)
	if err := spec.Diff(y, numericGrad); err != nil {
		t.Fatalf("Diff: %v", err)
	}

	x0, x1 := math.Exp(y[0]), math.Exp(y[1])
	te := gamma + v[0]*x0 + v[1]*x1
	analyticGrad := []float64{v[0]*x0/te - a[0], v[1]*x1/te - a[1]}

	for i := range analyticGrad {
		if diff := numericGrad[i] - analyticGrad[i]; diff > 1e-5 || diff < -1e-5 {
			t.Errorf("grad[%d] = %v, want %v (finite difference)", i, analyticGrad[i], numericGrad[i])
		}
	}
}
