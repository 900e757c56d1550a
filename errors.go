package prga

import "errors"

// Sentinel errors for the prga package. All exported functions return
// these (possibly wrapped with fmt.Errorf("...: %w", ...)); callers
// match them with errors.Is. Validation errors are returned before any
// numeric work is attempted.
var (
	// ErrNilMatrix is returned when the gain matrix argument is nil.
	ErrNilMatrix = errors.New("prga: gain matrix is nil")

	// ErrNonFinite is returned when the gain matrix contains a NaN or
	// ±Inf entry. Gains must be finite real values.
	ErrNonFinite = errors.New("prga: gain matrix has NaN or Inf entry")

	// ErrNonSquare is returned when the gain matrix is not square.
	ErrNonSquare = errors.New("prga: gain matrix is not square")

	// ErrLengthMismatch is returned when outCL and inCL differ in length.
	ErrLengthMismatch = errors.New("prga: outCL and inCL have different lengths")

	// ErrTooManyLoops is returned when the number of closed loops is not
	// smaller than the matrix dimension. At least one open input/output
	// pair must remain, so k == n is rejected as well as k > n.
	ErrTooManyLoops = errors.New("prga: cannot close that many loops")

	// ErrIndexOutOfRange is returned when a closed-loop index lies
	// outside [0, n).
	ErrIndexOutOfRange = errors.New("prga: closed-loop index out of range")

	// ErrDuplicateIndex is returned when an index appears more than once
	// within outCL or within inCL.
	ErrDuplicateIndex = errors.New("prga: duplicate closed-loop index")

	// ErrSingularMatrix is returned when the closed-loop block G22 or
	// the reduced gain matrix is singular (or too ill-conditioned for
	// the solver). The wrapped message names the failing step.
	ErrSingularMatrix = errors.New("prga: singular matrix")
)
