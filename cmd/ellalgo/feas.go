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

var feasX0 []float64

var feasCmd = &cobra.Command{
	Use:   "feas",
	Short: "Search for a point satisfying B - sum(x[k]*F[k]) >= 0",
	RunE:  runFeas,
}

func init() {
	feasCmd.Flags().Float64SliceVar(&feasX0, "x0", []float64{10, 0}, "starting search point")
}

func runFeas(cmd *cobra.Command, args []string) error {
	if len(feasX0) != 2 {
		return fmt.Errorf("--x0 needs exactly 2 values, got %d", len(feasX0))
	}
	f, b := demoLMIMatrices()
	oracle := oracles.NewLMIOracle(f, b)
	space := ellipsoid.NewEllipsoidFromBall(100.0, feasX0)
	options := cuttingplane.Options{MaxIters: maxIters, Tol: tol}

	info := cuttingplane.CuttingPlaneFeasWithLogger(oracle, space, options, traceLogger())
	logger.Info().
		Bool("feasible", info.Feasible).
		Int("iterations", info.NumIters).
		Msg("feas search finished")
	if info.Feasible {
		fmt.Printf("feasible point: %v (iterations = %d)\n", space.XC(), info.NumIters)
	} else {
		fmt.Printf("no feasible point found within %d iterations\n", info.NumIters)
	}
	return nil
}
