// Package prga computes the Partial Relative Gain (PRG) array of a
// steady-state (DC) gain matrix: the relative-gain relationships among
// the remaining input/output pairs once a chosen subset of loops is
// assumed under perfect control. With no closed loops the PRG reduces
// to the classical Relative Gain Array (RGA), so the package covers
// both diagnostics.
package prga

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// PRG computes the partial relative gain array of the gain matrix g,
// assuming the loops pairing output outCL[i] with input inCL[i] are
// under perfect (zero steady-state error) control.
// g: square n x n gain matrix, rows = outputs, columns = inputs. It is
// never mutated; all work happens on an internal reordered copy.
// outCL, inCL: 0-based index sets of equal length k < n, each with
// distinct entries. nil or empty means no closed loops.
// Returns: (n-k) x (n-k) matrix whose rows/columns correspond, in
// original relative order, to the open outputs/inputs (see OpenIndices).
func PRG(g mat.Matrix, outCL, inCL []int) (*mat.Dense, error) {
	n, k, err := validate(g, outCL, inCL)
	if err != nil {
		return nil, err
	}

	// Reorder rows and columns so the closed loops occupy the trailing
	// k positions; open indices keep their original relative order.
	rowOrder := closedLast(n, outCL)
	colOrder := closedLast(n, inCL)

	reordered := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			reordered.Set(i, j, g.At(rowOrder[i], colOrder[j]))
		}
	}

	// Effective open-loop gain after eliminating the closed loops.
	clGain, err := reduce(reordered, n, k)
	if err != nil {
		return nil, err
	}

	// PRG = CLgain ∘ (CLgain^-1)^T, elementwise.
	var inv mat.Dense
	if err := inv.Inverse(clGain); err != nil {
		return nil, fmt.Errorf("%w: reduced gain matrix is not invertible: %v", ErrSingularMatrix, err)
	}

	m := n - k
	out := mat.NewDense(m, m, nil)
	out.MulElem(clGain, inv.T())

	return out, nil
}

// RGA computes the classical Relative Gain Array of g, i.e. the PRG
// with no loops closed.
func RGA(g mat.Matrix) (*mat.Dense, error) {
	return PRG(g, nil, nil)
}

// reduce computes CLgain = G11 - G12 * (G22 \ G21) on the reordered
// matrix, where the trailing k rows/columns are the closed loops. The
// inverse is applied as a linear solve for better conditioning.
func reduce(reordered *mat.Dense, n, k int) (*mat.Dense, error) {
	m := n - k
	if k == 0 {
		// Nothing to eliminate: the open-loop gain is the matrix itself.
		return reordered, nil
	}

	g11 := reordered.Slice(0, m, 0, m)
	g12 := reordered.Slice(0, m, m, n)
	g21 := reordered.Slice(m, n, 0, m)
	g22 := reordered.Slice(m, n, m, n)

	// x = G22 \ G21
	var x mat.Dense
	if err := x.Solve(g22, g21); err != nil {
		return nil, fmt.Errorf("%w: closed-loop block G22 is not invertible: %v", ErrSingularMatrix, err)
	}

	var g12x mat.Dense
	g12x.Mul(g12, &x)

	clGain := mat.NewDense(m, m, nil)
	clGain.Sub(g11, &g12x)

	return clGain, nil
}

// closedLast returns the permutation 0..n-1 with every index in closed
// moved to the end (in the order given) and all other indices first,
// keeping their original relative order.
func closedLast(n int, closed []int) []int {
	order := OpenIndices(n, closed)
	return append(order, closed...)
}

// validate rejects malformed inputs before any numeric work. It checks,
// in order: nil matrix, squareness, finite entries, index-set length
// agreement, loop count, index bounds, and index uniqueness. Bounds and
// uniqueness go beyond the minimal contract: without them a bad index
// would corrupt the reordering step and fail with a confusing message
// deep inside the solver.
func validate(g mat.Matrix, outCL, inCL []int) (n, k int, err error) {
	if g == nil {
		return 0, 0, ErrNilMatrix
	}

	r, c := g.Dims()
	if r != c {
		return 0, 0, fmt.Errorf("%w: got %d x %d", ErrNonSquare, r, c)
	}
	n = r

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v := g.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, 0, fmt.Errorf("%w: at (%d,%d)", ErrNonFinite, i, j)
			}
		}
	}

	if len(outCL) != len(inCL) {
		return 0, 0, fmt.Errorf("%w: len(outCL)=%d, len(inCL)=%d",
			ErrLengthMismatch, len(outCL), len(inCL))
	}
	k = len(outCL)

	if k >= n {
		return 0, 0, fmt.Errorf("%w: %d closed loops for a %d x %d matrix, at least one open pair must remain",
			ErrTooManyLoops, k, n, n)
	}

	if err := checkIndices("outCL", outCL, n); err != nil {
		return 0, 0, err
	}
	if err := checkIndices("inCL", inCL, n); err != nil {
		return 0, 0, err
	}

	return n, k, nil
}

// checkIndices verifies that every index in idx lies in [0, n) and
// appears at most once.
func checkIndices(name string, idx []int, n int) error {
	seen := make(map[int]bool, len(idx))
	for i, v := range idx {
		if v < 0 || v >= n {
			return fmt.Errorf("%w: %s[%d]=%d, valid range is [0,%d)",
				ErrIndexOutOfRange, name, i, v, n)
		}
		if seen[v] {
			return fmt.Errorf("%w: %s contains %d more than once",
				ErrDuplicateIndex, name, v)
		}
		seen[v] = true
	}
	return nil
}
