package solvers

import (
	"math"

	"github.com/wildstyl3r/rootfind/internal/constants"
)

// Newton iterates x = x - f(x)/df(x) from x0.
// The stopping test uses |f(x)| before the update, and the step taken in
// that iteration is kept. A near-zero derivative ends the solve with
// DerivativeDegenerate and the current iterate.
func Newton(f, df Func, x0 float64, cfg Config) (Result, error) {
	if f == nil || df == nil {
		return Result{}, ErrNilFunction
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Result{}, err
	}

	var trace []float64
	x := x0
	for i := 0; i < cfg.MaxIterations; i++ {
		fx := f(x)
		dfx := df(x)
		if math.Abs(dfx) < constants.DegenerateFloor {
			return Result{
				Method:     MethodNewton,
				Root:       x,
				Iterations: i + 1,
				Trace:      trace,
				Status:     DerivativeDegenerate,
				Failure: &DegenerateError{
					Method:    MethodNewton,
					Iteration: i,
					X:         x,
					Value:     dfx,
					Wrapped:   ErrDerivativeDegenerate,
				},
			}, nil
		}
		xNew := x - fx/dfx
		trace = append(trace, math.Abs(xNew-x))
		if math.Abs(fx) < cfg.Tolerance {
			return Result{
				Method:     MethodNewton,
				Root:       xNew,
				Iterations: i + 1,
				Trace:      trace,
				Status:     Converged,
			}, nil
		}
		x = xNew
	}

	return Result{
		Method:     MethodNewton,
		Root:       x,
		Iterations: cfg.MaxIterations,
		Trace:      trace,
		Status:     NotConverged,
	}, nil
}
