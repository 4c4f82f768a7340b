// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ldlt

import "testing"

func elemOf(rows [][]float64) Elem {
	return func(i, j int) float64 { return rows[i][j] }
}

func TestFactorPositiveDefinite(t *testing.T) {
	rows := [][]float64{
		{25.0, 15.0, -5.0},
		{15.0, 18.0, 0.0},
		{-5.0, 0.0, 11.0},
	}
	m := NewManager(3)
	if !m.Factor(elemOf(rows)) {
		t.Fatal("expected matrix to be positive definite")
	}
	if !m.IsSPD() {
		t.Fatal("IsSPD should be true after a successful Factor")
	}
}

func TestFactorNotPositiveDefinite(t *testing.T) {
	rows := [][]float64{
		{18.0, 22.0, 54.0, 42.0},
		{22.0, -70.0, 86.0, 62.0},
		{54.0, 86.0, -174.0, 134.0},
		{42.0, 62.0, 134.0, -106.0},
	}
	m := NewManager(4)
	m.Factor(elemOf(rows))
	if m.IsSPD() {
		t.Fatal("expected matrix to not be positive definite")
	}
}

func TestWitnessOnFirstPivotFailure(t *testing.T) {
	rows := [][]float64{
		{0.0, 15.0, -5.0},
		{15.0, 18.0, 0.0},
		{-5.0, 0.0, 11.0},
	}
	m := NewManager(3)
	m.Factor(elemOf(rows))
	if m.IsSPD() {
		t.Fatal("expected matrix to not be positive definite")
	}
	ep := m.Witness()
	if ep != 0.0 {
		t.Fatalf("witness value = %v, want 0", ep)
	}
	v := m.WitnessVec()
	if v[0] != 1.0 {
		t.Fatalf("v[0] = %v, want 1", v[0])
	}
}

func TestSymQuadMatchesDirectComputation(t *testing.T) {
	rows := [][]float64{
		{0.0, 15.0, -5.0},
		{15.0, 18.0, 0.0},
		{-5.0, 0.0, 11.0},
	}
	m := NewManager(3)
	m.Factor(elemOf(rows))
	m.Witness()
	got := m.SymQuad(elemOf(rows))

	v := m.WitnessVec()
	start, stop := m.Start(), m.Stop()
	want := 0.0
	for i := start; i < stop; i++ {
		for j := start; j < stop; j++ {
			want += v[i] * rows[i][j] * v[j]
		}
	}
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("SymQuad = %v, want %v", got, want)
	}
}
