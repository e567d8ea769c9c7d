// Package matrix provides a dense, row-major float64 matrix and the
// Gaussian-elimination analyses built on top of it.
//
// The matrix package provides:
//
//   - Dense — a strict row-major store with checked At/Set accessors and
//     deep Clone, constructed by shape (NewDense), from rectangular data
//     (NewFromRows) or as the identity (NewIdentity).
//   - Arithmetic kernels — Add, Sub, Scale, Mul, Transpose and integer
//     Pow (binary exponentiation; negative exponents via inversion).
//   - Analyses — Determinant (partial-pivot elimination with sign
//     bookkeeping), Inverse (Gauss-Jordan on an augmented [A|I] block)
//     and Rank (row-echelon reduction).
//
// Every operation validates its preconditions first and returns a freshly
// allocated result; operands are never mutated and storage is never
// aliased. Failures are package-level sentinels (errors.Is friendly);
// nothing in this package panics on user input, logs, or performs I/O.
//
// Numeric policy: a single named constant, PivotEpsilon (1e-12), decides
// when a pivot candidate counts as zero. Determinant treats that case as
// a legitimate 0.0 result; Inverse reports ErrSingular.
//
// Concurrency: distinct instances are safe to use from distinct
// goroutines; a single Dense must not be written through Set by multiple
// goroutines simultaneously.
package matrix
