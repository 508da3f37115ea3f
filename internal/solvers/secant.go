package solvers

import (
	"math"

	"github.com/wildstyl3r/rootfind/internal/constants"
)

// Secant iterates x1 - f(x1)(x1-x0)/(f(x1)-f(x0)) over a sliding window of
// two points which need not bracket the root.
func Secant(f Func, x0, x1 float64, cfg Config) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunction
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Result{}, err
	}

	var trace []float64
	for i := 0; i < cfg.MaxIterations; i++ {
		fx0, fx1 := f(x0), f(x1)
		denominator := fx1 - fx0
		if math.Abs(denominator) < constants.DegenerateFloor {
			return Result{
				Method:     MethodSecant,
				Root:       x1,
				Iterations: i + 1,
				Trace:      trace,
				Status:     DenominatorDegenerate,
				Failure: &DegenerateError{
					Method:    MethodSecant,
					Iteration: i,
					X:         x1,
					Value:     denominator,
					Wrapped:   ErrDenominatorDegenerate,
				},
			}, nil
		}
		xNew := x1 - fx1*(x1-x0)/denominator
		trace = append(trace, math.Abs(xNew-x1))
		if math.Abs(fx1) < cfg.Tolerance {
			return Result{
				Method:     MethodSecant,
				Root:       xNew,
				Iterations: i + 1,
				Trace:      trace,
				Status:     Converged,
			}, nil
		}
		x0, x1 = x1, xNew
	}

	return Result{
		Method:     MethodSecant,
		Root:       x1,
		Iterations: cfg.MaxIterations,
		Trace:      trace,
		Status:     NotConverged,
	}, nil
}
