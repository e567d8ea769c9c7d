// Package matcalc is a small, dependency-light toolkit for dense
// real-valued matrix arithmetic and Gaussian-elimination analyses.
//
// 🚀 What is matcalc?
//
//	A strict, deterministic library that brings together:
//		• Dense storage: row-major float64 matrices with checked accessors
//		• Arithmetic: Add, Sub, Scale, Mul, Transpose
//		• Integer powers: exponentiation by squaring, negative exponents via inversion
//		• Analyses: Determinant, Inverse and Rank via partial-pivot elimination
//		• Text boundary: free-form parsing and rendering for calculator front ends
//
// ✨ Why choose matcalc?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Explicit failures – sentinel errors, matched with errors.Is, never panics
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, one numeric policy constant
//
// Under the hood, everything is organized under three subpackages:
//
//	matrix/ — Dense type, arithmetic kernels & elimination analyses
//	parse/  — free-form text → rectangular rows, plus scalar rendering
//	calc/   — operator dispatch for calculator-style front ends
//
// Quick example:
//
//	a, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
//	det, _ := matrix.Determinant(a) // -2
//
// Dive into the package docs for the full operation set and error contract.
//
//	go get github.com/kalmaren/matcalc/matrix
package matcalc
