package solver

import (
	"errors"
	"fmt"
)

var (
	// ErrNonFiniteTimeStep indicates a NaN, infinite or non-positive time step, usually from a bad wave speed
	ErrNonFiniteTimeStep = errors.New("solver: non-finite time step")

	// ErrNonFiniteResidual indicates the residual norm diverged
	ErrNonFiniteResidual = errors.New("solver: non-finite residual")

	// ErrInvalidConfig indicates a driver setting outside its valid range
	ErrInvalidConfig = errors.New("solver: invalid configuration")
)

// IterationError wraps an error with the iteration it occurred in
type IterationError struct {
	Iteration int
	Cell      int // Interior cell that triggered the error, -1 when not cell specific
	Err       error
}

func (e *IterationError) Error() string {
	if e.Cell >= 0 {
		return fmt.Sprintf("iteration %d, cell %d: %v", e.Iteration, e.Cell, e.Err)
	}
	return fmt.Sprintf("iteration %d: %v", e.Iteration, e.Err)
}

func (e *IterationError) Unwrap() error {
	return e.Err
}
