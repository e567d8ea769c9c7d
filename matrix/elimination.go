// SPDX-License-Identifier: MIT
// Package matrix: Gaussian-elimination analyses — Determinant, Inverse, Rank.
// All three pivot by maximum absolute value in the current column (partial
// pivoting) and share one numeric policy constant, PivotEpsilon. Each kernel
// operates on a private working copy; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// PivotEpsilon is the singularity threshold for elimination kernels: a pivot
// candidate whose absolute value falls below it counts as zero. It is a fixed
// numeric policy — do not re-derive a different tolerance, round-trip test
// expectations depend on it.
const PivotEpsilon = 1e-12

// workingCopy materializes any Matrix into a fresh *Dense scratch buffer.
// Elimination kernels mutate this buffer freely without touching the input.
// Stage 1: *Dense fast-path — flat copy of the backing slice.
// Stage 2: fallback — fixed i→j read via At into flat storage.
// Complexity: O(r*c) time and memory.
func workingCopy(m Matrix) (*Dense, error) {
	rows, cols := m.Rows(), m.Cols()
	w, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	// Fast-path: flat slice copy.
	if dm, ok := m.(*Dense); ok {
		copy(w.data, dm.data)
		return w, nil
	}

	// Fallback: deterministic i→j ingestion.
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			w.data[i*cols+j] = v
		}
	}

	return w, nil
}

// pivotRow returns the index of the row in [from, rows) whose entry in column
// col has the largest absolute value, scanning the flat buffer directly.
// Deterministic: ties keep the earliest row. Complexity: O(rows-from).
func pivotRow(w *Dense, col, from int) int {
	best := from                              // candidate row index
	bestAbs := math.Abs(w.data[from*w.c+col]) // candidate magnitude
	var abs float64
	for i := from + 1; i < w.r; i++ {
		abs = math.Abs(w.data[i*w.c+col])
		if abs > bestAbs {
			best, bestAbs = i, abs
		}
	}

	return best
}

// swapRows exchanges rows a and b of the scratch buffer in place.
// Complexity: O(c).
func swapRows(w *Dense, a, b int) {
	if a == b {
		return // nothing to do
	}
	baseA, baseB := a*w.c, b*w.c
	for j := 0; j < w.c; j++ {
		w.data[baseA+j], w.data[baseB+j] = w.data[baseB+j], w.data[baseA+j]
	}
}

// Determinant computes det(A) by Gaussian elimination with partial pivoting
// on a private working copy, tracking the sign flipped by each row swap.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); materialize a scratch copy.
//   - Stage 2: For each pivot column k: select the max-|value| row at or
//     below k. If its magnitude is below PivotEpsilon the matrix is
//     (numerically) singular — return 0.0 immediately, which is the correct
//     determinant, not an error. Swap the pivot row into place (negating the
//     running sign), then eliminate entries below the pivot.
//   - Stage 3: Return sign × Π diagonal.
//
// Behavior highlights:
//   - Partial pivoting bounds error growth versus naive elimination; the
//     epsilon short-circuit avoids division blow-up near singularity.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square input).
//
// Determinism:
//   - Fixed k→i→j elimination order; ties in the pivot scan keep the
//     earliest row.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the scratch copy.
//
// AI-Hints:
//   - A 0.0 result means "numerically singular", not failure; only Inverse
//     treats that state as an error.
func Determinant(m Matrix) (float64, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	// Materialize the private working copy
	w, err := workingCopy(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	n := w.r
	sign := 1.0 // flipped on every row swap
	var (
		k, i, j      int     // loop iterators
		p            int     // selected pivot row
		pivot, ratio float64 // pivot value and per-row elimination factor
		baseK, baseI int     // flat row offsets
	)
	for k = 0; k < n; k++ {
		// Select the partial pivot for column k
		p = pivotRow(w, k, k)
		pivot = w.data[p*n+k]
		if math.Abs(pivot) < PivotEpsilon {
			return 0.0, nil // numerically singular → determinant is zero
		}
		// Swap the pivot row into place; each swap negates the determinant
		if p != k {
			swapRows(w, p, k)
			sign = -sign
		}

		// Eliminate entries below the pivot in column k
		baseK = k * n
		for i = k + 1; i < n; i++ {
			baseI = i * n
			ratio = w.data[baseI+k] / w.data[baseK+k]
			if ratio == 0 {
				continue // row already eliminated in this column
			}
			for j = k; j < n; j++ {
				w.data[baseI+j] -= ratio * w.data[baseK+j]
			}
		}
	}

	// Product of the diagonal, signed by the swap bookkeeping
	det := sign
	for i = 0; i < n; i++ {
		det *= w.data[i*n+i]
	}

	return det, nil
}

// Inverse computes A⁻¹ by Gauss-Jordan elimination with partial pivoting on
// an augmented n×2n block [A | I]. The right half becomes the inverse once
// every column of the left half is reduced to the identity.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m); build the augmented scratch [A | I].
//   - Stage 2: For each column col: select the max-|value| pivot row at or
//     below col. Magnitude below PivotEpsilon → ErrSingular before any
//     partial result escapes. Swap into place (no sign tracking needed),
//     normalize the pivot row to make the pivot exactly 1, then subtract
//     factor × pivotRow from every other row with a non-negligible entry.
//   - Stage 3: Copy columns n..2n-1 into a fresh result Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular.
//
// Determinism:
//   - Fixed col→r→j order; earliest-row tie-break in the pivot scan.
//
// Complexity:
//   - Time O(n^3), Space O(n^2) for the augmented block.
//
// AI-Hints:
//   - If you only need A⁻¹·b, a dedicated solve is cheaper than forming the
//     full inverse and multiplying.
func Inverse(m Matrix) (*Dense, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// Build the augmented scratch [A | I] with 2n columns
	n := m.Rows()
	aug, err := NewDense(n, 2*n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	src, err := workingCopy(m) // flat read of any Matrix implementation
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var i, j int
	width := 2 * n // augmented row stride
	for i = 0; i < n; i++ {
		copy(aug.data[i*width:i*width+n], src.data[i*n:(i+1)*n]) // left half: A
		aug.data[i*width+n+i] = 1.0                              // right half: I
	}

	var (
		col, r        int     // pivot column and row cursor
		p             int     // selected pivot row
		pivot, factor float64 // pivot value and elimination factor
		baseP, baseR  int     // flat row offsets
	)
	for col = 0; col < n; col++ {
		// Select the partial pivot among remaining rows of column col
		p = pivotRow(aug, col, col)
		pivot = aug.data[p*width+col]
		if math.Abs(pivot) < PivotEpsilon {
			return nil, matrixErrorf(opInverse, ErrSingular) // no inverse exists
		}
		// Swap the pivot row into position col
		swapRows(aug, p, col)

		// Normalize the pivot row so the pivot becomes exactly 1
		baseP = col * width
		pivot = aug.data[baseP+col] // re-read after the swap
		for j = col; j < width; j++ {
			aug.data[baseP+j] /= pivot
		}

		// Zero column col in every other row
		for r = 0; r < n; r++ {
			if r == col {
				continue
			}
			baseR = r * width
			factor = aug.data[baseR+col]
			if math.Abs(factor) < PivotEpsilon {
				continue // already negligible; skip the row update
			}
			for j = col; j < width; j++ {
				aug.data[baseR+j] -= factor * aug.data[baseP+j]
			}
		}
	}

	// Extract the right half — the inverse
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for i = 0; i < n; i++ {
		copy(inv.data[i*n:(i+1)*n], aug.data[i*width+n:i*width+width])
	}

	return inv, nil
}

// Rank computes the number of independent pivot rows found during
// row-echelon reduction with partial pivoting. Any shape is accepted.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); materialize a scratch copy.
//   - Stage 2: Walk columns left to right with an independent pivot-row
//     cursor r. A column whose best remaining candidate is below
//     PivotEpsilon contributes no pivot — advance to the next column
//     without moving r. Otherwise swap the candidate into row r, normalize
//     it from column c onward, eliminate the column below r, and advance
//     both r and the rank counter.
//
// Behavior highlights:
//   - A skipped column is never revisited for a later pivot row; that is
//     standard row-echelon reduction, not an oversight.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c) for the scratch copy.
//
// AI-Hints:
//   - The result is always in [0, min(rows, cols)]; rank(I_n) == n is a
//     cheap sanity probe.
func Rank(m Matrix) (int, error) {
	// Validate input non-nil (rectangular inputs are fine)
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	// Materialize the private working copy
	w, err := workingCopy(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	rows, cols := w.r, w.c
	var (
		c, r, i, j   int     // column cursor, pivot-row cursor, iterators
		p            int     // selected pivot row
		pivot, ratio float64 // pivot value and elimination factor
		baseR, baseI int     // flat row offsets
		rank         int     // independent pivots found so far
	)
	for c = 0; c < cols && r < rows; c++ {
		// Select the partial pivot among rows at or below r
		p = pivotRow(w, c, r)
		pivot = w.data[p*cols+c]
		if math.Abs(pivot) < PivotEpsilon {
			continue // column contributes no new pivot; keep r in place
		}
		// Swap the pivot row into position r
		swapRows(w, p, r)

		// Normalize the pivot row from column c onward
		baseR = r * cols
		pivot = w.data[baseR+c] // re-read after the swap
		for j = c; j < cols; j++ {
			w.data[baseR+j] /= pivot
		}

		// Eliminate column c from all rows below r
		for i = r + 1; i < rows; i++ {
			baseI = i * cols
			ratio = w.data[baseI+c]
			if ratio == 0 {
				continue
			}
			for j = c; j < cols; j++ {
				w.data[baseI+j] -= ratio * w.data[baseR+j]
			}
		}

		// One more independent pivot found
		r++
		rank++
	}

	return rank, nil
}
