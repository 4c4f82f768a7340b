// Copyright ©2026 ellalgo authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ellipsoid

// matrix is a dense, row-major n×n matrix. Both Ellipsoid and EllipsoidStable keep
// their shape factor in one of these rather than a sparse or banded
// representation: the spec's non-goal is sparse linear algebra, and at the
// dimensions this method is useful for (n in the tens to low hundreds) a
// flat slice is simpler and faster than anything indirect.
type matrix struct {
	n    int
	data []float64
}

func newMatrix(n int) matrix {
	return matrix{n: n, data: make([]float64, n*n)}
}

// identityMatrix returns the n×n identity.
func identityMatrix(n int) matrix {
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// diagMatrix returns diag(val).
func diagMatrix(val []float64) matrix {
	n := len(val)
	m := newMatrix(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = val[i]
	}
	return m
}

func (m *matrix) at(i, j int) float64 { return m.data[i*m.n+j] }

func (m *matrix) set(i, j int, v float64) { m.data[i*m.n+j] = v }

func (m *matrix) add(i, j int, v float64) { m.data[i*m.n+j] += v }

func (m matrix) clone() matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return matrix{n: m.n, data: data}
}

func (m *matrix) scale(s float64) {
	for i := range m.data {
		m.data[i] *= s
	}
}
