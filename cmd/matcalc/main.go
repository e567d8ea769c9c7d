// Command matcalc evaluates one matrix operation from the command line.
//
// Usage:
//
//	matcalc -op add -a "1 2; 3 4" -b "5 6; 7 8"
//	matcalc -op det -a "1 2; 3 4"
//	matcalc -op pow -a "1 1; 1 0" -e 8
//	matcalc -op scale -a "1 2; 3 4" -x 0.5
//
// Matrices are written inline: semicolons (or newlines) separate rows,
// spaces/tabs/commas separate values. Results print to stdout; failures
// print to stderr and exit with status 1. All algorithmic work happens in
// the matrix package — this binary is glue.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/kalmaren/matcalc/calc"
	"github.com/kalmaren/matcalc/matrix"
	"github.com/kalmaren/matcalc/parse"
)

func main() {
	var (
		opFlag = flag.String("op", "", "operation: add|sub|scale|mul|t|pow|det|inv|rank")
		aFlag  = flag.String("a", "", "first matrix (rows ';'-separated, values ' '/','-separated)")
		bFlag  = flag.String("b", "", "second matrix (binary operations only)")
		xFlag  = flag.Float64("x", 0, "scalar for -op scale")
		eFlag  = flag.Int("e", 0, "exponent for -op pow")
	)
	flag.Parse()

	if err := run(*opFlag, *aFlag, *bFlag, *xFlag, *eFlag); err != nil {
		fmt.Fprintln(os.Stderr, "matcalc:", err)
		os.Exit(1)
	}
}

// run parses inputs, dispatches the operation and prints the result.
func run(opToken, aText, bText string, x float64, e int) error {
	op, err := calc.ParseOp(opToken)
	if err != nil {
		return err
	}

	a, err := parse.MatrixFromText(aText)
	if err != nil {
		return fmt.Errorf("matrix A: %w", err)
	}

	// The second operand is optional; binary operations fail inside the core
	// with matrix.ErrNilMatrix when it is absent.
	var b matrix.Matrix
	if bText != "" {
		dense, err := parse.MatrixFromText(bText)
		if err != nil {
			return fmt.Errorf("matrix B: %w", err)
		}
		b = dense
	}

	res, err := calc.Evaluate(op, a, b, x, e)
	if err != nil {
		return err
	}

	switch res.Kind {
	case calc.KindScalar:
		fmt.Println(parse.FormatScalar(res.Scalar))
	case calc.KindInt:
		fmt.Println(parse.FormatInt(res.Int))
	default:
		fmt.Print(res.Matrix) // Dense.String: tab-separated, newline rows
	}

	return nil
}
