package solvers

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBracket is returned by Bisect when f(a) and f(b) do not have strictly opposite signs.
	ErrInvalidBracket = errors.New("solvers: endpoints do not bracket a sign change")

	// ErrDerivativeDegenerate marks a Newton step whose |f'(x)| fell below the floor.
	ErrDerivativeDegenerate = errors.New("solvers: derivative near zero")

	// ErrDenominatorDegenerate marks a secant step whose |f(x1)-f(x0)| fell below the floor.
	ErrDenominatorDegenerate = errors.New("solvers: secant denominator near zero")

	ErrInvalidConfig = errors.New("solvers: invalid configuration")
	ErrNilFunction   = errors.New("solvers: nil function")
)

// BracketError carries the rejected bracket.
type BracketError struct {
	A, B   float64
	FA, FB float64
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("%v: f(%g)=%g, f(%g)=%g", ErrInvalidBracket, e.A, e.FA, e.B, e.FB)
}

func (e *BracketError) Unwrap() error {
	return ErrInvalidBracket
}

// DegenerateError describes where a Newton or secant iteration could not proceed.
// Iteration is the 0-based loop index, X the iterate at that moment and
// Value the offending derivative or denominator.
type DegenerateError struct {
	Method    Method
	Iteration int
	X         float64
	Value     float64
	Wrapped   error
}

func (e *DegenerateError) Error() string {
	return fmt.Sprintf("%s: %v at iteration %d, x=%g (%g)", e.Method, e.Wrapped, e.Iteration, e.X, e.Value)
}

func (e *DegenerateError) Unwrap() error {
	return e.Wrapped
}
