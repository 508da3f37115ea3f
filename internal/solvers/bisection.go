package solvers

import "math"

// Bisect halves the bracket [a, b] until |f(c)| or the half-width drops
// below the tolerance. Trace entries are the bracket widths before each
// update. Endpoints given in reverse order are swapped.
func Bisect(f Func, a, b float64, cfg Config) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunction
	}
	cfg, err := cfg.withDefaults()
	if err != nil {
		return Result{}, err
	}
	if b < a {
		a, b = b, a
	}

	fa, fb := f(a), f(b)
	if !(fa*fb < 0) {
		return Result{Method: MethodBisection}, &BracketError{A: a, B: b, FA: fa, FB: fb}
	}

	var trace []float64
	c := a
	for i := 0; i < cfg.MaxIterations; i++ {
		c = (a + b) * 0.5
		trace = append(trace, math.Abs(b-a))
		fc := f(c)
		if math.Abs(fc) < cfg.Tolerance || (b-a)*0.5 < cfg.Tolerance {
			return Result{
				Method:     MethodBisection,
				Root:       c,
				Iterations: i + 1,
				Trace:      trace,
				Status:     Converged,
			}, nil
		}
		// sign test is always against the left endpoint
		if fc*fa < 0 {
			b = c
		} else {
			a, fa = c, fc
		}
	}

	return Result{
		Method:     MethodBisection,
		Root:       c,
		Iterations: cfg.MaxIterations,
		Trace:      trace,
		Status:     NotConverged,
	}, nil
}
