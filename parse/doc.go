// Package parse turns free-form calculator input into rectangular row data
// and renders scalar results back to text.
//
// The parse package provides:
//
//   - Rows — split text into rows (newline or semicolon separated) of
//     float64 fields (space, tab or comma separated).
//   - MatrixFromText — Rows composed with matrix.NewFromRows, so shape
//     validation stays in exactly one place.
//   - FormatScalar / FormatInt — plain numeric textual forms for
//     determinant and rank results.
//
// Malformed input — empty text, an unparsable field — surfaces as an error
// wrapping matrix.ErrInvalidFormat, keeping the caller-facing taxonomy to a
// single invalid-input kind. The package performs no I/O and never logs.
package parse
