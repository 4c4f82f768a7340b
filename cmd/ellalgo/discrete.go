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

var discreteCmd = &cobra.Command{
	Use:   "discrete",
	Short: "Maximize Cobb-Douglas profit over integer input quantities",
	RunE:  runDiscrete,
}

func runDiscrete(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfitConfig()
	if err != nil {
		return err
	}
	oracle := oracles.NewProfitOracleQ(cfg.Price, cfg.ScaleA, cfg.Cap, cfg.Elasticity, cfg.OutputPrice)
	space := ellipsoid.NewEllipsoidFromBall(100.0, []float64{2, 0})
	options := cuttingplane.Options{MaxIters: maxIters, Tol: tol}

	xBest, gamma, niter := cuttingplane.CuttingPlaneDiscreteWithLogger(oracle, space, 0.0, options, traceLogger())
	if xBest == nil {
		fmt.Println("no feasible lattice point found")
		return nil
	}
	logger.Info().
		Float64("x1", xBest[0]).
		Float64("x2", xBest[1]).
		Float64("profit", gamma).
		Int("iterations", niter).
		Msg("discrete search converged")
	fmt.Printf("best y = %v, profit = %.6f, iterations = %d\n", xBest, gamma, niter)
	return nil
}
