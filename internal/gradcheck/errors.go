package gradcheck

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrNoParameters = errors.New("no parameters to check")
	ErrMismatch     = errors.New("analytic and numeric gradients disagree")
)

// MismatchError reports the first parameter whose gradients disagree.
type MismatchError struct {
	Index    int     // Position in the parameter list
	Analytic float64 // Gradient from autodiff.Backward
	Numeric  float64 // Centered finite-difference estimate
}

// Error implements the error interface.
func (e *MismatchError) Error() string {
	return fmt.Sprintf("gradcheck: parameter %d: analytic %g, numeric %g", e.Index, e.Analytic, e.Numeric)
}

// Unwrap makes errors.Is(err, ErrMismatch) hold.
func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
