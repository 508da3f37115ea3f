package functions

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/wildstyl3r/rootfind/internal/solvers"
)

var ErrUnknownFunction = errors.New("functions: unknown function")

// Function pairs a test function with its analytic derivative.
type Function struct {
	Name       string
	Expression string
	F          solvers.Func
	DF         solvers.Func
}

var catalogue = map[string]Function{
	"cubic": {
		Expression: "x^3 - 2x - 5",
		F:          func(x float64) float64 { return x*x*x - 2*x - 5 },
		DF:         func(x float64) float64 { return 3*x*x - 2 },
	},
	"cubic-diverging": {
		Expression: "x^3 - 2x + 2",
		F:          func(x float64) float64 { return x*x*x - 2*x + 2 },
		DF:         func(x float64) float64 { return 3*x*x - 2 },
	},
	"cosine": {
		Expression: "cos(x) - x",
		F:          func(x float64) float64 { return math.Cos(x) - x },
		DF:         func(x float64) float64 { return -math.Sin(x) - 1 },
	},
	"quadratic": {
		Expression: "x^2 - 2",
		F:          func(x float64) float64 { return x*x - 2 },
		DF:         func(x float64) float64 { return 2 * x },
	},
	"exponential": {
		Expression: "e^x - 2",
		F:          func(x float64) float64 { return math.Exp(x) - 2 },
		DF:         math.Exp,
	},
	"constant": {
		Expression: "1",
		F:          func(float64) float64 { return 1 },
		DF:         func(float64) float64 { return 0 },
	},
}

func Lookup(name string) (Function, error) {
	fn, some := catalogue[name]
	if !some {
		return Function{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
	}
	fn.Name = name
	return fn, nil
}

// Names returns the catalogue keys sorted.
func Names() []string {
	names := make([]string, 0, len(catalogue))
	for name := range catalogue {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
