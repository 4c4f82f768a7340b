// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEllipsoidCentralCutShrinksVolume(t *testing.T) {
	e := NewEllipsoidFromBall(1.0, []float64{0, 0, 0})
	status := e.Update(NewCut([]float64{1, 0, 0}, 0))
	require.Equal(t, Success, status)
	assert.InDelta(t, 0.25, e.mq.at(0, 0)*e.kappa, 1e-9)
}

func TestEllipsoidUpdateMovesCenterIntoFeasibleHalfspace(t *testing.T) {
	e := NewEllipsoidFromBall(1.0, []float64{0, 0})
	g := []float64{1, 0}
	beta := 0.1
	status := e.Update(NewCut(g, beta))
	require.Equal(t, Success, status)
	// g . (x - xc) + beta <= 0 defines the retained half-space; the new
	// center must satisfy it with equality's sense (moved toward g < 0 side).
	lhs := g[0]*e.xc[0] + g[1]*e.xc[1] + beta
	assert.LessOrEqual(t, lhs, 1e-9)
}

func TestEllipsoidNoSolnWhenCutMissesEllipsoid(t *testing.T) {
	e := NewEllipsoidFromBall(0.01, []float64{0, 0})
	g := []float64{1, 0}
	status := e.Update(NewCut(g, 10.0))
	assert.Equal(t, NoSoln, status)
}

func TestEllipsoidCloneIsIndependent(t *testing.T) {
	e := NewEllipsoidFromBall(1.0, []float64{1, 2, 3})
	clone := e.Clone()
	clone.SetXC([]float64{9, 9, 9})
	assert.Equal(t, []float64{1, 2, 3}, e.XC())
	assert.Equal(t, []float64{9, 9, 9}, clone.XC())
}

func TestEllipsoidAndStableAgreeOnCentralCut(t *testing.T) {
	xc := []float64{0.5, -0.25, 1.0}
	val := []float64{2.0, 1.0, 0.5}
	e := NewEllipsoid(append([]float64(nil), val...), append([]float64(nil), xc...))
	s := NewEllipsoidStable(append([]float64(nil), val...), append([]float64(nil), xc...))

	g := []float64{0.3, -0.7, 0.1}
	st1 := e.Update(NewCut(append([]float64(nil), g...), 0))
	st2 := s.Update(NewCut(append([]float64(nil), g...), 0))

	require.Equal(t, st1, st2)
	require.Equal(t, Success, st1)
	for i := range xc {
		assert.InDelta(t, e.XC()[i], s.XC()[i], 1e-9)
	}
	assert.InDelta(t, e.TSQ(), s.TSQ(), 1e-9)
}

func TestEllipsoidZeroGradientCutIsNoEffect(t *testing.T) {
	e := NewEllipsoidFromBall(1.0, []float64{1, 2, 3})
	xcBefore := append([]float64(nil), e.XC()...)
	kappaBefore, tsqBefore := e.kappa, e.tsq

	status := e.Update(NewCut([]float64{0, 0, 0}, 0))

	assert.Equal(t, NoEffect, status)
	assert.Equal(t, xcBefore, e.XC())
	assert.Equal(t, kappaBefore, e.kappa)
	assert.Equal(t, tsqBefore, e.tsq)
}

func TestEllipsoidStableZeroGradientCutIsNoEffect(t *testing.T) {
	s := NewEllipsoidStableFromBall(1.0, []float64{1, 2, 3})
	xcBefore := append([]float64(nil), s.XC()...)
	kappaBefore, tsqBefore := s.kappa, s.tsq

	status := s.Update(NewCut([]float64{0, 0, 0}, 0))

	assert.Equal(t, NoEffect, status)
	assert.Equal(t, xcBefore, s.XC())
	assert.Equal(t, kappaBefore, s.kappa)
	assert.Equal(t, tsqBefore, s.tsq)
}

func TestEllipsoidParallelCutWithEqualBetasMatchesSingleCut(t *testing.T) {
	g := []float64{1, 0}
	beta := 1.0

	parallel := NewEllipsoidFromBall(10.0, []float64{0, 0})
	parallel.SetUseParallelCut(true)
	stParallel := parallel.Update(NewParallelCut(g, beta, beta))

	single := NewEllipsoidFromBall(10.0, []float64{0, 0})
	stSingle := single.Update(NewCut(g, beta))

	require.Equal(t, Success, stParallel)
	require.Equal(t, Success, stSingle)
	for i := range g {
		assert.InDelta(t, single.XC()[i], parallel.XC()[i], 1e-9)
	}
	assert.InDelta(t, single.TSQ(), parallel.TSQ(), 1e-9)
}

func TestEllipsoidCloneReplaysIdenticalCutSequence(t *testing.T) {
	e := NewEllipsoidFromBall(10.0, []float64{1, -1, 2})
	clone := e.Clone()

	cuts := []Cut{
		NewCut([]float64{1, 0, 0}, 0.2),
		NewCut([]float64{0, 1, 0}, -0.1),
		NewParallelCut([]float64{0, 0, 1}, 0.05, 0.3),
	}
	for _, cut := range cuts {
		st1 := e.Update(cut)
		st2 := clone.Update(cut)
		require.Equal(t, st1, st2)
	}

	assert.Equal(t, e.XC(), clone.XC())
	assert.Equal(t, e.TSQ(), clone.TSQ())
}

func TestEllipsoidParallelCutDegradesToDeepCutWhenDisabled(t *testing.T) {
	e := NewEllipsoidFromBall(1.0, []float64{0, 0})
	e.SetUseParallelCut(false)
	g := []float64{1, 0}
	cut := NewParallelCut(g, 0.1, 0.3)
	status := e.Update(cut)
	require.Equal(t, Success, status)

	e2 := NewEllipsoidFromBall(1.0, []float64{0, 0})
	status2 := e2.Update(NewCut(g, 0.1))
	require.Equal(t, Success, status2)
	assert.InDelta(t, e2.XC()[0], e.XC()[0], 1e-9)
}
