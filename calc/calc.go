// SPDX-License-Identifier: MIT
// Package calc routes calculator-style operator requests to the matrix core.
//
// Purpose:
//   - Give presentation layers (CLIs, UIs) one entry point — Evaluate — and
//     one discriminated Result instead of nine separate call sites.
//   - Propagate the core's sentinel errors unchanged; no wrapping into new
//     kinds, no logging, no I/O.

package calc

import (
	"errors"
	"fmt"

	"github.com/kalmaren/matcalc/matrix"
)

// ErrUnknownOp is returned by ParseOp for an unrecognized operator token.
var ErrUnknownOp = errors.New("calc: unknown operation")

// Op enumerates the supported operations.
type Op int

const (
	OpAdd       Op = iota // A + B
	OpSub                 // A - B
	OpScale               // x · A
	OpMul                 // A × B
	OpTranspose           // Aᵀ
	OpPow                 // A^e
	OpDet                 // det(A)
	OpInverse             // A⁻¹
	OpRank                // rank(A)
)

// opNames maps tokens accepted by ParseOp to operations. Tokens mirror the
// calculator front end: short mnemonic words, case-sensitive by intent.
var opNames = map[string]Op{
	"add":   OpAdd,
	"sub":   OpSub,
	"scale": OpScale,
	"mul":   OpMul,
	"t":     OpTranspose,
	"pow":   OpPow,
	"det":   OpDet,
	"inv":   OpInverse,
	"rank":  OpRank,
}

// ParseOp resolves a textual operator token to an Op.
// Errors: ErrUnknownOp (with the offending token in the message).
func ParseOp(s string) (Op, error) {
	op, ok := opNames[s]
	if !ok {
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownOp)
	}

	return op, nil
}

// Kind discriminates which Result field is populated.
type Kind int

const (
	KindMatrix Kind = iota // Result.Matrix holds a fresh matrix
	KindScalar             // Result.Scalar holds a float64 (OpDet)
	KindInt                // Result.Int holds an int (OpRank)
)

// Result is the discriminated outcome of Evaluate: exactly one of Matrix,
// Scalar or Int is meaningful, selected by Kind.
type Result struct {
	Kind   Kind
	Matrix matrix.Matrix
	Scalar float64
	Int    int
}

// Evaluate runs op against the operands and returns a discriminated Result.
//
// Operand contract per op:
//   - OpAdd/OpSub/OpMul: a and b.
//   - OpScale: a and the scalar x.
//   - OpPow: a and the exponent e.
//   - OpTranspose/OpDet/OpInverse/OpRank: a only.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular —
//     propagated unchanged from the core (errors.Is friendly).
//   - ErrUnknownOp for an Op value outside the enumeration.
func Evaluate(op Op, a, b matrix.Matrix, x float64, e int) (Result, error) {
	switch op {
	case OpAdd:
		m, err := matrix.Add(a, b)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpSub:
		m, err := matrix.Sub(a, b)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpScale:
		m, err := matrix.Scale(a, x)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpMul:
		m, err := matrix.Mul(a, b)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpTranspose:
		m, err := matrix.Transpose(a)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpPow:
		m, err := matrix.Pow(a, e)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpDet:
		det, err := matrix.Determinant(a)
		return Result{Kind: KindScalar, Scalar: det}, err
	case OpInverse:
		m, err := matrix.Inverse(a)
		return Result{Kind: KindMatrix, Matrix: m}, err
	case OpRank:
		rank, err := matrix.Rank(a)
		return Result{Kind: KindInt, Int: rank}, err
	default:
		return Result{}, fmt.Errorf("op %d: %w", op, ErrUnknownOp)
	}
}
