// SPDX-License-Identifier: MIT
// Package matrix: integer matrix powers via exponentiation by squaring.

package matrix

// Pow raises a square matrix to an integer power e.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: e == 0 → NewIdentity(n). e < 0 → invert once (propagating
//     ErrSingular) and recurse with -e on the inverse. e > 0 → binary
//     exponentiation: accumulator starts at I, base at m; whenever the low
//     bit of the remaining exponent is set the accumulator is multiplied by
//     the base, then the base is squared and the exponent halved.
//
// Behavior highlights:
//   - ⌈log2(e)⌉-ish multiplications instead of e, each a fresh allocation;
//     neither m nor intermediates are mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular
//     (negative e on a singular matrix).
//
// Complexity:
//   - Time O(n^3 log |e|), Space O(n^2).
//
// AI-Hints:
//   - Pow(m, -1) is exactly Inverse(m); prefer Inverse directly when the
//     exponent is a literal -1.
func Pow(m Matrix, e int) (*Dense, error) {
	// Validate input non-nil and square
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}

	// Zero exponent: the multiplicative identity of the same size
	n := m.Rows()
	if e == 0 {
		id, err := NewIdentity(n)
		if err != nil {
			return nil, matrixErrorf(opPow, err)
		}
		return id, nil
	}

	// Negative exponent: invert once, then raise the inverse to -e
	if e < 0 {
		inv, err := Inverse(m)
		if err != nil {
			return nil, matrixErrorf(opPow, err) // ErrSingular propagates
		}
		return Pow(inv, -e)
	}

	// Binary exponentiation: acc × base^e with base squaring
	acc, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	var base Matrix = m
	for e > 0 {
		if e&1 == 1 { // low bit set → fold the current base into the accumulator
			acc, err = Mul(acc, base)
			if err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
		e >>= 1 // halve the remaining exponent
		if e > 0 {
			base, err = Mul(base, base) // square the running base
			if err != nil {
				return nil, matrixErrorf(opPow, err)
			}
		}
	}

	return acc, nil
}
