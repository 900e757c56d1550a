package prga

import (
	"gonum.org/v1/gonum/mat"
)

// GainMatrix is a named steady-state gain matrix of a multivariable
// process. Rows index process outputs, columns index process inputs.
type GainMatrix struct {
	// Square matrix of DC gains
	G *mat.Dense
	// Names of the process outputs, one per row
	Outputs []string
	// Names of the process inputs, one per column
	Inputs []string
}

// Dim returns the number of loops n (G is n x n).
func (gm *GainMatrix) Dim() int {
	if gm == nil || gm.G == nil {
		return 0
	}
	n, _ := gm.G.Dims()
	return n
}

// OpenIndices returns the indices in [0, n) that do not appear in
// closed, in their original relative order. This is the same ordering
// the PRG reordering step uses, so the result labels the rows (when
// closed is the closed-output set) or the columns (closed-input set)
// of the PRG array.
func OpenIndices(n int, closed []int) []int {
	isClosed := make([]bool, n)
	for _, idx := range closed {
		if idx >= 0 && idx < n {
			isClosed[idx] = true
		}
	}

	open := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !isClosed[i] {
			open = append(open, i)
		}
	}
	return open
}
