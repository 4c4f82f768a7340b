// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/deepcut/ellalgo/cuttingplane"
	"github.com/deepcut/ellalgo/ellipsoid"
	"github.com/deepcut/ellalgo/oracles"
	"github.com/spf13/cobra"
)

var (
	lowpassN          int
	lowpassNoParallel bool
)

var lowpassCmd = &cobra.Command{
	Use:   "lowpass",
	Short: "Design an FIR lowpass filter by minimizing the stopband peak",
	RunE:  runLowpass,
}

func init() {
	lowpassCmd.Flags().IntVar(&lowpassN, "n", 32, "number of FIR coefficients")
	lowpassCmd.Flags().BoolVar(&lowpassNoParallel, "no-parallel-cut", false, "disable parallel-cut exploitation")
}

func runLowpass(cmd *cobra.Command, args []string) error {
	oracle, gamma := oracles.NewLowpassCase(lowpassN)
	space := ellipsoid.NewEllipsoidFromBall(40.0, make([]float64, lowpassN))
	space.SetUseParallelCut(!lowpassNoParallel)
	options := cuttingplane.Options{MaxIters: maxIters, Tol: tol}

	xBest, gammaFinal, niter := cuttingplane.CuttingPlaneOptimWithLogger(oracle, space, gamma, options, traceLogger())
	if xBest == nil {
		fmt.Println("no feasible filter found")
		return nil
	}
	attenuation := -10.0 * math.Log10(gammaFinal)
	logger.Info().
		Int("coefficients", lowpassN).
		Float64("stopband_peak", gammaFinal).
		Float64("stopband_attenuation_db", attenuation).
		Int("iterations", niter).
		Msg("lowpass converged")
	fmt.Printf("stopband attenuation = %.3f dB, iterations = %d\n", attenuation, niter)
	return nil
}
