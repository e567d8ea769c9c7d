// SPDX-License-Identifier: MIT
// Package parse_test contains unit tests for the textual boundary.
package parse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kalmaren/matcalc/matrix"
	"github.com/kalmaren/matcalc/parse"
)

func TestRowsSeparators(t *testing.T) {
	for name, tc := range map[string]struct {
		text string
		want [][]float64
	}{
		"newline_space":    {"1 2\n3 4", [][]float64{{1, 2}, {3, 4}}},
		"semicolon_comma":  {"1,2;3,4", [][]float64{{1, 2}, {3, 4}}},
		"tabs":             {"1\t2\n3\t4", [][]float64{{1, 2}, {3, 4}}},
		"mixed":            {"1, 2;3\t4", [][]float64{{1, 2}, {3, 4}}},
		"trailing_newline": {"1 2\n3 4\n", [][]float64{{1, 2}, {3, 4}}},
		"blank_line":       {"1 2\n\n3 4", [][]float64{{1, 2}, {3, 4}}},
		"scientific":       {"1e-3 2.5\n-4 0", [][]float64{{0.001, 2.5}, {-4, 0}}},
		"single_value":     {"42", [][]float64{{42}}},
	} {
		t.Run(name, func(t *testing.T) {
			rows, err := parse.Rows(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, rows)
		})
	}
}

func TestRowsInvalidFormat(t *testing.T) {
	for name, text := range map[string]string{
		"empty":      "",
		"whitespace": " \n\t ",
		"bad_number": "1 2\n3 x",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := parse.Rows(text)
			require.ErrorIs(t, err, matrix.ErrInvalidFormat)
		})
	}
}

func TestMatrixFromText(t *testing.T) {
	m, err := parse.MatrixFromText("1 2 3; 4 5 6")
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 6.0, v)

	// ragged shape is rejected by the matrix constructor, not the splitter
	_, err = parse.MatrixFromText("1 2\n3")
	require.ErrorIs(t, err, matrix.ErrInvalidFormat)
}

func TestFormatScalar(t *testing.T) {
	require.Equal(t, "-2", parse.FormatScalar(-2.0))
	require.Equal(t, "0.5", parse.FormatScalar(0.5))
	require.Equal(t, "1e-06", parse.FormatScalar(0.000001))
	require.Equal(t, "3", parse.FormatInt(3))
}
