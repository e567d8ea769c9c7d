// SPDX-License-Identifier: MIT
// Package parse: text splitting and number parsing for the matrix boundary.

package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kalmaren/matcalc/matrix"
)

// rowSeparators splits input into candidate rows; fieldSeparators splits a
// row into numeric fields. Both sets are fixed policy, not configuration.
const (
	rowSeparators   = "\n\r;"
	fieldSeparators = " \t,"
)

// Rows parses free-form text into rows of float64 values.
// Stage 1 (Split): rows on newline/semicolon, fields on space/tab/comma;
// blank rows (and empty fields produced by repeated separators) are skipped.
// Stage 2 (Parse): every field through strconv.ParseFloat.
// Stage 3 (Validate): at least one row with at least one field.
//
// Errors:
//   - matrix.ErrInvalidFormat (wrapped) — empty input or an unparsable field.
//     Raggedness is NOT checked here; matrix.NewFromRows owns shape validation.
//
// Complexity: O(len(text)).
func Rows(text string) ([][]float64, error) {
	var rows [][]float64
	// Split into candidate rows first; empty chunks are dropped.
	for _, line := range strings.FieldsFunc(text, isRowSep) {
		fields := strings.FieldsFunc(line, isFieldSep)
		if len(fields) == 0 {
			continue // blank row, e.g. a trailing newline
		}
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("parse: field %q: %w", f, matrix.ErrInvalidFormat)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("parse: no rows in input: %w", matrix.ErrInvalidFormat)
	}

	return rows, nil
}

// MatrixFromText parses text and builds a *matrix.Dense in one step.
// Shape violations (ragged rows) surface as matrix.ErrInvalidFormat from
// matrix.NewFromRows; this function adds nothing beyond composition.
func MatrixFromText(text string) (*matrix.Dense, error) {
	rows, err := Rows(text)
	if err != nil {
		return nil, err
	}

	return matrix.NewFromRows(rows)
}

// FormatScalar renders a float64 result (e.g. a determinant) in the same
// %g form the matrix renderer uses.
func FormatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FormatInt renders an integer result (e.g. a rank).
func FormatInt(n int) string {
	return strconv.Itoa(n)
}

// isRowSep reports whether r separates rows.
func isRowSep(r rune) bool {
	return strings.ContainsRune(rowSeparators, r)
}

// isFieldSep reports whether r separates fields within a row.
func isFieldSep(r rune) bool {
	return strings.ContainsRune(fieldSeparators, r)
}
