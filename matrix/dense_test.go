// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Dense construction and access.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalmaren/matcalc/matrix"
)

func TestNewDenseDefaultZero(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{1, 1},
		{3, 3},
		{2, 5},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m := MustDense(t, tc.rows, tc.cols)
			// immediately after creation all elements should be 0
			var i, j int // loop iterators
			for i = 0; i < tc.rows; i++ {
				for j = 0; j < tc.cols; j++ {
					require.Zero(t, MustAt(t, m, i, j))
				}
			}
		})
	}
}

func TestNewDenseInvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ rows, cols int }{
		{0, 3},
		{3, 0},
		{-1, 3},
		{3, -1},
		{0, 0},
	} {
		name := fmt.Sprintf("%dx%d", tc.rows, tc.cols)
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewDense(tc.rows, tc.cols)
			require.Nil(t, m)
			require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
		})
	}
}

func TestNewFromRowsCopiesData(t *testing.T) {
	src := [][]float64{{1, 2, 3}, {4, 5, 6}}
	m := MustFromRows(t, src)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	// mutating the source after construction must not leak into the matrix
	src[0][0] = 99
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
}

func TestNewFromRowsInvalidFormat(t *testing.T) {
	for name, rows := range map[string][][]float64{
		"nil":       nil,
		"empty":     {},
		"empty_row": {{}},
		"ragged":    {{1, 2}, {3}},
		"ragged_3":  {{1}, {2}, {3, 4}},
	} {
		t.Run(name, func(t *testing.T) {
			m, err := matrix.NewFromRows(rows)
			require.Nil(t, m)
			require.ErrorIs(t, err, matrix.ErrInvalidFormat)
		})
	}
}

func TestNewIdentity(t *testing.T) {
	for n := 1; n <= 5; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			CompareExact(t, identityRows(n), MustIdentity(t, n))
		})
	}

	t.Run("n=0", func(t *testing.T) {
		_, err := matrix.NewIdentity(0)
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	})
}

func TestAtSetRoundTrip(t *testing.T) {
	m := MustDense(t, 2, 3)
	MustSet(t, m, 1, 2, 42.5)
	require.Equal(t, 42.5, MustAt(t, m, 1, 2))
	// neighbors stay untouched
	require.Zero(t, MustAt(t, m, 1, 1))
	require.Zero(t, MustAt(t, m, 0, 2))
}

func TestAtSetOutOfRange(t *testing.T) {
	m := MustDense(t, 2, 3)
	for _, tc := range []struct{ i, j int }{
		{-1, 0},
		{0, -1},
		{2, 0},
		{0, 3},
	} {
		_, err := m.At(tc.i, tc.j)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "At(%d,%d)", tc.i, tc.j)
		err = m.Set(tc.i, tc.j, 1)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "Set(%d,%d)", tc.i, tc.j)
	}
}

func TestCloneIndependence(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	c := m.Clone()

	// mutate the original; the clone must not observe it
	MustSet(t, m, 0, 0, -7)
	require.Equal(t, 1.0, MustAt(t, c, 0, 0))

	// and vice versa
	MustSet(t, c, 1, 1, 100)
	require.Equal(t, 4.0, MustAt(t, m, 1, 1))
}

func TestStringRendering(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2.5}, {-3, 0.000001}})
	// rows newline-separated, columns tab-separated, %g per element
	require.Equal(t, "1\t2.5\n-3\t1e-06\n", m.String())
}

func TestFacadesLike(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	z, err := matrix.ZerosLike(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, z)

	id, err := matrix.IdentityLike(m)
	require.NoError(t, err)
	CompareExact(t, identityRows(2), id)

	// IdentityLike refuses rectangular shapes
	rect := MustDense(t, 2, 3)
	_, err = matrix.IdentityLike(rect)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// nil guards
	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
