// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuttingplane

import (
	"strings"
	"testing"

	"github.com/deepcut/ellalgo/ellipsoid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ballFeasOracle reports a single linear constraint g.x + beta <= 0,
// the minimal fixture for exercising CuttingPlaneFeas without pulling
// in the oracles package.
type ballFeasOracle struct {
	g    []float64
	beta float64
}

func (o *ballFeasOracle) AssessFeas(x []float64) *ellipsoid.Cut {
	fj := o.beta
	for i, gi := range o.g {
		fj += gi * x[i]
	}
	if fj <= 0 {
		return nil
	}
	cut := ellipsoid.NewCut(append([]float64(nil), o.g...), fj)
	return &cut
}

func TestCuttingPlaneFeasFindsPointSatisfyingHalfspace(t *testing.T) {
	space := ellipsoid.NewEllipsoidFromBall(10.0, []float64{5, 5})
	oracle := &ballFeasOracle{g: []float64{1, 0}, beta: -1} // x1 <= 1

	info := CuttingPlaneFeas(oracle, space, DefaultOptions())

	require.True(t, info.Feasible)
	assert.LessOrEqual(t, space.XC()[0], 1.0+1e-6)
}

func TestCuttingPlaneFeasReportsInfeasibleWhenCutCannotFit(t *testing.T) {
	// beta = 1 on a ball of squared-radius 1e-3 around the origin asks
	// for x1 <= -1, a halfspace far outside the search region: the very
	// first cut's beta exceeds tau, so the oracle's constraint can
	// never be satisfied inside this ellipsoid.
	space := ellipsoid.NewEllipsoidFromBall(1e-3, []float64{0, 0})
	oracle := &ballFeasOracle{g: []float64{1, 0}, beta: 1}

	info := CuttingPlaneFeas(oracle, space, DefaultOptions())

	assert.False(t, info.Feasible)
	assert.Less(t, info.NumIters, DefaultOptions().MaxIters)
}

func TestCuttingPlaneFeasWithLoggerTracesIterations(t *testing.T) {
	var buf traceBuffer
	space := ellipsoid.NewEllipsoidFromBall(10.0, []float64{5, 5})
	oracle := &ballFeasOracle{g: []float64{1, 0}, beta: -1}

	info := CuttingPlaneFeasWithLogger(oracle, space, DefaultOptions(), &Logger{Level: LogTrace, Out: &buf})

	require.True(t, info.Feasible)
	assert.NotEmpty(t, buf.lines)
}

func TestCuttingPlaneFeasWithLoggerVerboseDumpsXC(t *testing.T) {
	var buf traceBuffer
	space := ellipsoid.NewEllipsoidFromBall(10.0, []float64{5, 5})
	oracle := &ballFeasOracle{g: []float64{1, 0}, beta: -1}

	info := CuttingPlaneFeasWithLogger(oracle, space, DefaultOptions(), &Logger{Level: LogVerbose, Out: &buf})

	require.True(t, info.Feasible)
	found := false
	for _, line := range buf.lines {
		if strings.Contains(line, "xc =") {
			found = true
			break
		}
	}
	assert.True(t, found, "expected a verbose log line dumping xc")
}

type traceBuffer struct {
	lines []string
}

func (b *traceBuffer) Write(p []byte) (int, error) {
	b.lines = append(b.lines, string(p))
	return len(p), nil
}

func TestBSearchNarrowsBracketTowardThreshold(t *testing.T) {
	// Feasible for gamma >= 3, matching BSearch's "upper half is
	// feasible" convention.
	oracle := thresholdOracle{threshold: 3.0}

	info, interval := BSearch(oracle, Interval{Lower: 0, Upper: 10}, Options{MaxIters: 100, Tol: 1e-6})

	require.True(t, info.Feasible)
	assert.InDelta(t, 3.0, interval.Upper, 1e-4)
	assert.Less(t, interval.Lower, interval.Upper)
}

type thresholdOracle struct {
	threshold float64
}

func (o thresholdOracle) AssessBisect(gamma float64) bool {
	return gamma >= o.threshold
}
