// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

// dot computes the dot product of x and y, unrolled by 5 the way the
// reference BLAS level-1 routines are, since Update runs this for Qg and
// ω on every iteration of every outer driver loop.
func dot(x, y []float64) float64 {
	n := len(x)
	if n != len(y) {
		panic("ellipsoid: dot: length mismatch")
	}
	m := n % 5
	d := 0.0
	for i := 0; i < m; i++ {
		d += x[i] * y[i]
	}
	if n < 5 {
		return d
	}
	for i := m; i < n; i += 5 {
		xs := x[i : i+5 : i+5]
		ys := y[i : i+5 : i+5]
		d += xs[0]*ys[0] + xs[1]*ys[1] + xs[2]*ys[2] + xs[3]*ys[3] + xs[4]*ys[4]
	}
	return d
}

// axpy computes y += alpha*x in place.
func axpy(alpha float64, x, y []float64) {
	n := len(x)
	if n != len(y) {
		panic("ellipsoid: axpy: length mismatch")
	}
	if alpha == 0.0 {
		return
	}
	m := n % 4
	for i := 0; i < m; i++ {
		y[i] += alpha * x[i]
	}
	if n < 4 {
		return
	}
	for i := m; i < n; i += 4 {
		xs := x[i : i+4 : i+4]
		ys := y[i : i+4 : i+4]
		ys[0] += alpha * xs[0]
		ys[1] += alpha * xs[1]
		ys[2] += alpha * xs[2]
		ys[3] += alpha * xs[3]
	}
}
