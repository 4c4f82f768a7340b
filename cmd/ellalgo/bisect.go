// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/deepcut/ellalgo/cuttingplane"
	"github.com/deepcut/ellalgo/ellipsoid"
	"github.com/deepcut/ellalgo/oracles"
	"github.com/spf13/cobra"
)

var bisectCmd = &cobra.Command{
	Use:   "bisect",
	Short: "Find the smallest gamma for which gamma*B - sum(x[k]*F[k]) >= 0 is feasible",
	RunE:  runBisect,
}

// scaledLMI implements cuttingplane.BisectAdaptorOracle by rebuilding
// an LMIOracle against gamma*B on every SetGamma call: BSearchAdaptor's
// nested feasibility search then tells us whether some x keeps the
// scaled matrix positive semidefinite.
type scaledLMI struct {
	f      [][][]float64
	base   [][]float64
	oracle *oracles.LMIOracle
}

func newScaledLMI(f [][][]float64, base [][]float64) *scaledLMI {
	s := &scaledLMI{f: f, base: base}
	s.SetGamma(1.0)
	return s
}

func (s *scaledLMI) SetGamma(gamma float64) {
	n := len(s.base)
	b := make([][]float64, n)
	for i := range b {
		b[i] = make([]float64, n)
		for j := range b[i] {
			b[i][j] = gamma * s.base[i][j]
		}
	}
	s.oracle = oracles.NewLMIOracle(s.f, b)
}

func (s *scaledLMI) AssessFeas(x []float64) *ellipsoid.Cut {
	return s.oracle.AssessFeas(x)
}

func runBisect(cmd *cobra.Command, args []string) error {
	f, b := demoLMIMatrices()
	omega := newScaledLMI(f, b)
	space := ellipsoid.NewEllipsoidFromBall(100.0, []float64{0, 0})
	options := cuttingplane.Options{MaxIters: maxIters, Tol: tol}

	adaptor := cuttingplane.NewBSearchAdaptorWithOptions(omega, space, options)
	info, interval := cuttingplane.BSearch(adaptor, cuttingplane.Interval{Lower: 0, Upper: 10}, options)

	logger.Info().
		Bool("feasible", info.Feasible).
		Float64("gammaLower", interval.Lower).
		Float64("gammaUpper", interval.Upper).
		Int("iterations", info.NumIters).
		Msg("bisect search finished")
	fmt.Printf("gamma in [%.6f, %.6f] at x = %v (iterations = %d)\n",
		interval.Lower, interval.Upper, adaptor.XBest(), info.NumIters)
	return nil
}

func demoLMIMatrices() (f [][][]float64, b [][]float64) {
	f = [][][]float64{
		{{1, 0}, {0, 0}},
		{{0, 0}, {0, 1}},
	}
	b = [][]float64{{10, 0}, {0, 10}}
	return f, b
}
