// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import (
	"math"
	"testing"
)

func approxEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	const tol = 1e-9
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestCalcCoreCentralCut(t *testing.T) {
	c := newCalcCore(4)
	rho, sigma, delta := c.centralCut(0.1)
	approxEqual(t, "rho", rho, 0.02)
	approxEqual(t, "sigma", sigma, 0.4)
	approxEqual(t, "delta", delta, 16.0/15.0)
}

func TestCalcCoreBiasCut(t *testing.T) {
	c := newCalcCore(4)
	tau := 0.1
	beta := 0.05
	eta := tau + c.nF*beta
	rho, sigma, delta := c.biasCut(beta, tau, eta)
	approxEqual(t, "rho", rho, 0.06)
	approxEqual(t, "sigma", sigma, 0.8)
	approxEqual(t, "delta", delta, 0.8)
}

func TestCalcCoreParallelCentralCut(t *testing.T) {
	c := newCalcCore(4)
	rho, sigma, delta := c.parallelCentralCut(1.0, 4.0)
	approxEqual(t, "rho", rho, 0.4)
	approxEqual(t, "sigma", sigma, 0.8)
	approxEqual(t, "delta", delta, 1.2)
}

func TestCalcCoreParallelCut(t *testing.T) {
	c := newCalcCore(4)
	beta0, beta1, tsq := 0.01, 0.04, 0.01
	b0b1 := beta0 * beta1
	eta := tsq + c.nF*b0b1
	rho, sigma, delta := c.parallelCut(beta0, beta1, tsq, b0b1, eta)
	approxEqual(t, "rho", rho, 0.0232)
	approxEqual(t, "sigma", sigma, 0.928)
	approxEqual(t, "delta", delta, 1.232)
}

func TestCalcParallelDeepCutNoEffect(t *testing.T) {
	c := newCalc(4)
	c.useParallelCut = true
	status, rho, sigma, delta := c.parallelDeepCut(-0.04, 0.0625, 0.01)
	if status != NoEffect {
		t.Fatalf("status = %v, want NoEffect", status)
	}
	approxEqual(t, "rho", rho, 0.0)
	approxEqual(t, "sigma", sigma, 0.0)
	approxEqual(t, "delta", delta, 1.0)
}

func TestCalcDeepCutNoSoln(t *testing.T) {
	c := newCalc(3)
	status, _, _, _ := c.deepCut(10.0, 1.0)
	if status != NoSoln {
		t.Fatalf("status = %v, want NoSoln", status)
	}
}

func TestCalcDeepCutMatchesBiasCut(t *testing.T) {
	c := newCalc(4)
	status, rho, sigma, delta := c.deepCut(0.05, 0.01)
	if status != Success {
		t.Fatalf("status = %v, want Success", status)
	}
	approxEqual(t, "rho", rho, 0.06)
	approxEqual(t, "sigma", sigma, 0.8)
	approxEqual(t, "delta", delta, 0.8)
}
