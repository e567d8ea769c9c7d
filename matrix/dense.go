// Package matrix: Dense is the concrete, row-major implementation of the
// Matrix interface, storing elements in a flat slice for performance and
// cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// Dimensions are immutable after construction; the only post-construction
// mutation is single-element assignment through Set, which is NOT safe for
// concurrent writers sharing one instance.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate flat slice
	data := make([]float64, rows*cols)

	// Return initialized Dense
	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewFromRows builds a Dense from a rectangular slice of rows, copying every
// element so the result never aliases caller storage.
// Stage 1 (Validate): reject nil/empty input and ragged rows (any row whose
// length differs from the first) with ErrInvalidFormat.
// Stage 2 (Execute): deep-copy row by row into flat storage.
// Complexity: O(r*c) time and memory.
//
// AI-Hints:
//   - This is the ingestion point for parsed user input; shape validation
//     lives here so callers (parsers, adapters) never duplicate it.
func NewFromRows(rows [][]float64) (*Dense, error) {
	// Reject absent or empty source data
	if len(rows) == 0 {
		return nil, ErrInvalidFormat
	}
	// All rows must match the first row's length, and it must be positive
	cols := len(rows[0])
	if cols == 0 {
		return nil, ErrInvalidFormat
	}
	var i int // loop iterator
	for i = 1; i < len(rows); i++ {
		if len(rows[i]) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(rows[i]), cols, ErrInvalidFormat)
		}
	}

	// Allocate and deep-copy (source slices are not retained)
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i = 0; i < m.r; i++ {
		copy(m.data[i*cols:(i+1)*cols], rows[i])
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r // return stored row count
}

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c // return stored column count
}

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Stage 1 (Validate): check 0 ≤ row < r and 0 ≤ col < c.
// Stage 2 (Execute): compute and return linear index.
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	// Validate row index
	if row < 0 || row >= m.r {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}
	// Validate column index
	if col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	// Compute flat offset
	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): read from data slice.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	// Compute flat index or error
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	// Return stored value
	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check via indexOf.
// Stage 2 (Execute): write into data slice.
// Complexity: O(1).
//
// Notes:
//   - Set is the single mutation point of a Dense; concurrent writers on
//     one instance are the caller's race to lose.
func (m *Dense) Set(row, col int, v float64) error {
	// Compute flat index or error
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	// Assign value
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory for copy.
func (m *Dense) Clone() Matrix {
	// Allocate new slice for data copy
	copyData := make([]float64, len(m.data))
	// Copy all elements into new slice
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer: rows are newline-separated, columns are
// tab-separated, each value rendered with %g (shortest readable form,
// scientific notation when warranted).
// Complexity: O(r*c) for string construction.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int // loop iterators
	for i = 0; i < m.r; i++ { // iterate over rows
		for j = 0; j < m.c; j++ { // iterate over columns
			if j > 0 {
				sb.WriteByte('\t') // separate columns with a tab
			}
			// compute flat index directly for performance
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteByte('\n') // close row
	}

	return sb.String()
}
