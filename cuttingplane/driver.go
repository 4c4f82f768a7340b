// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cuttingplane

import "github.com/deepcut/ellalgo/ellipsoid"

// Options bounds a driver's run: it stops after MaxIters iterations or
// once the ellipsoid's τ² falls below Tol, whichever comes first.
type Options struct {
	MaxIters int
	Tol      float64
}

// DefaultOptions matches the reference implementation's defaults.
func DefaultOptions() Options {
	return Options{MaxIters: 2000, Tol: 1e-8}
}

// CInfo reports the outcome of a feasibility or bisection search.
type CInfo struct {
	Feasible bool
	NumIters int
}

// CuttingPlaneFeas searches for a point in the feasible region defined
// by omega, starting from space's current center.
func CuttingPlaneFeas(omega FeasOracle, space ellipsoid.Space, options Options) CInfo {
	return cuttingPlaneFeasLogged(omega, space, options, nil)
}

// CuttingPlaneFeasWithLogger is CuttingPlaneFeas with a Logger tracing
// each iteration's cut status and τ².
func CuttingPlaneFeasWithLogger(omega FeasOracle, space ellipsoid.Space, options Options, logger *Logger) CInfo {
	return cuttingPlaneFeasLogged(omega, space, options, logger)
}

func cuttingPlaneFeasLogged(omega FeasOracle, space ellipsoid.Space, options Options, logger *Logger) CInfo {
	for niter := 0; niter < options.MaxIters; niter++ {
		cut := omega.AssessFeas(space.XC())
		if cut == nil {
			if logger.enable(LogLast) {
				logger.log("feasible point found after %d iterations\n", niter)
			}
			return CInfo{Feasible: true, NumIters: niter}
		}
		status := space.Update(*cut)
		if logger.enable(LogTrace) {
			logger.log("iter %d: status=%s tsq=%g\n", niter, status, space.TSQ())
		}
		if logger.enable(LogVerbose) {
			logger.logXC(space.XC())
		}
		if status != ellipsoid.Success || space.TSQ() < options.Tol {
			return CInfo{Feasible: false, NumIters: niter}
		}
	}
	return CInfo{Feasible: false, NumIters: options.MaxIters}
}

// CuttingPlaneOptim searches for the point minimizing the objective
// tracked by omega, starting from gamma as the current best value and
// space's current center. It returns the best point found, the final
// gamma, and the iteration count.
func CuttingPlaneOptim(omega OptimOracle, space ellipsoid.Space, gamma float64, options Options) (xBest []float64, gammaFinal float64, niterOut int) {
	return cuttingPlaneOptimLogged(omega, space, gamma, options, nil)
}

// CuttingPlaneOptimWithLogger is CuttingPlaneOptim with a Logger
// tracing each iteration's cut status and τ².
func CuttingPlaneOptimWithLogger(omega OptimOracle, space ellipsoid.Space, gamma float64, options Options, logger *Logger) (xBest []float64, gammaFinal float64, niterOut int) {
	return cuttingPlaneOptimLogged(omega, space, gamma, options, logger)
}

func cuttingPlaneOptimLogged(omega OptimOracle, space ellipsoid.Space, gamma float64, options Options, logger *Logger) (xBest []float64, gammaFinal float64, niterOut int) {
	for niter := 0; niter < options.MaxIters; niter++ {
		cut, gammaNext, shrunk := omega.AssessOptim(space.XC(), gamma)
		gamma = gammaNext
		if shrunk {
			xBest = append([]float64(nil), space.XC()...)
		}
		status := space.Update(cut)
		if logger.enable(LogTrace) {
			logger.log("iter %d: status=%s tsq=%g gamma=%g\n", niter, status, space.TSQ(), gamma)
		}
		if logger.enable(LogVerbose) {
			logger.logXC(space.XC())
		}
		if status != ellipsoid.Success || space.TSQ() < options.Tol {
			return xBest, gamma, niter
		}
	}
	return xBest, gamma, options.MaxIters
}

// CuttingPlaneDiscrete is CuttingPlaneOptim's counterpart for lattice
// problems: on a NoEffect cut it retries the same center with retry set,
// giving the oracle a chance to probe an alternative lattice point,
// and only gives up once the oracle reports there is no alternative
// left (moreAlt false).
func CuttingPlaneDiscrete(omega DiscreteOracle, space ellipsoid.Space, gamma float64, options Options) (xBest []float64, gammaFinal float64, niterOut int) {
	return cuttingPlaneDiscreteLogged(omega, space, gamma, options, nil)
}

// CuttingPlaneDiscreteWithLogger is CuttingPlaneDiscrete with a Logger
// tracing each iteration's cut status and τ².
func CuttingPlaneDiscreteWithLogger(omega DiscreteOracle, space ellipsoid.Space, gamma float64, options Options, logger *Logger) (xBest []float64, gammaFinal float64, niterOut int) {
	return cuttingPlaneDiscreteLogged(omega, space, gamma, options, logger)
}

func cuttingPlaneDiscreteLogged(omega DiscreteOracle, space ellipsoid.Space, gamma float64, options Options, logger *Logger) (xBest []float64, gammaFinal float64, niterOut int) {
	retry := false
	for niter := 0; niter < options.MaxIters; niter++ {
		cut, gammaNext, shrunk, x0, moreAlt := omega.AssessDiscrete(space.XC(), gamma, retry)
		gamma = gammaNext
		if shrunk {
			xBest = append([]float64(nil), x0...)
		}
		status := space.Update(cut)
		if logger.enable(LogTrace) {
			logger.log("iter %d: status=%s tsq=%g gamma=%g retry=%v\n", niter, status, space.TSQ(), gamma, retry)
		}
		if logger.enable(LogVerbose) {
			logger.logXC(space.XC())
		}

		if status == ellipsoid.NoEffect {
			if !moreAlt {
				return xBest, gamma, niter
			}
			retry = true
		} else if status == ellipsoid.NoSoln {
			return xBest, gamma, niter
		}

		if space.TSQ() < options.Tol {
			return xBest, gamma, niter
		}
	}
	return xBest, gamma, options.MaxIters
}

// Interval is a closed search range for BSearch, mutated across calls
// as the bracket tightens.
type Interval struct {
	Lower, Upper float64
}

// BSearch bisects [interval.Lower, interval.Upper] assuming omega's
// feasibility is monotone in gamma, returning how the bracket narrowed
// and whether it moved at all from its initial upper bound.
func BSearch(omega BisectOracle, interval Interval, options Options) (CInfo, Interval) {
	lower, upper := interval.Lower, interval.Upper
	uOrig := upper

	for niter := 0; niter < options.MaxIters; niter++ {
		tau := (upper - lower) / 2
		if tau < options.Tol {
			return CInfo{Feasible: upper != uOrig, NumIters: niter}, Interval{Lower: lower, Upper: upper}
		}
		tea := lower + tau
		if omega.AssessBisect(tea) {
			upper = tea
		} else {
			lower = tea
		}
	}
	return CInfo{Feasible: upper != uOrig, NumIters: options.MaxIters}, Interval{Lower: lower, Upper: upper}
}

// BSearchAdaptor turns a threshold-parameterized FeasOracle into a
// BisectOracle: each bisection probe clones space, tells omega which
// gamma to test, and runs a nested CuttingPlaneFeas search. A feasible
// probe commits the cloned center back into the outer space, so the
// next probe (and the caller, via XBest) starts from the best point
// found so far.
type BSearchAdaptor struct {
	omega   BisectAdaptorOracle
	space   ellipsoid.Space
	options Options
}

// NewBSearchAdaptor builds an adaptor with default options.
func NewBSearchAdaptor(omega BisectAdaptorOracle, space ellipsoid.Space) *BSearchAdaptor {
	return &BSearchAdaptor{omega: omega, space: space, options: DefaultOptions()}
}

// NewBSearchAdaptorWithOptions builds an adaptor with explicit options
// for the nested feasibility search.
func NewBSearchAdaptorWithOptions(omega BisectAdaptorOracle, space ellipsoid.Space, options Options) *BSearchAdaptor {
	return &BSearchAdaptor{omega: omega, space: space, options: options}
}

// XBest returns the best center found so far.
func (a *BSearchAdaptor) XBest() []float64 { return a.space.XC() }

// AssessBisect implements BisectOracle.
func (a *BSearchAdaptor) AssessBisect(gamma float64) bool {
	probe := a.space.Clone()
	a.omega.SetGamma(gamma)
	info := CuttingPlaneFeas(a.omega, probe, a.options)
	if info.Feasible {
		a.space.SetXC(probe.XC())
	}
	return info.Feasible
}
