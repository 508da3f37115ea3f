package solvers

import (
	"fmt"
	"strings"

	"github.com/wildstyl3r/rootfind/internal/utils"
)

type Func func(float64) float64

type Method int

const (
	MethodNewton Method = iota
	MethodBisection
	MethodSecant
)

var methodNames = map[Method]string{
	MethodNewton:    "Newton-Raphson",
	MethodBisection: "Bisection",
	MethodSecant:    "Secant",
}

func (m Method) String() string {
	if name, some := methodNames[m]; some {
		return name
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// Methods lists every method in display order.
func Methods() []Method {
	return []Method{MethodNewton, MethodBisection, MethodSecant}
}

// ParseMethod accepts the display name or a short alias, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "newton", "newton-raphson", "nr":
		return MethodNewton, nil
	case "bisection", "bisect", "bis":
		return MethodBisection, nil
	case "secant", "sec":
		return MethodSecant, nil
	}
	return 0, fmt.Errorf("unknown method %q", s)
}

type Status int

const (
	NotConverged Status = iota
	Converged
	DerivativeDegenerate
	DenominatorDegenerate
)

func (s Status) String() string {
	switch s {
	case NotConverged:
		return "not converged"
	case Converged:
		return "converged"
	case DerivativeDegenerate:
		return "derivative degenerate"
	case DenominatorDegenerate:
		return "denominator degenerate"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome of one solve. Iterations is 1-based and counts the
// terminating iteration. For degenerate outcomes the failing iteration adds
// no Trace entry, so len(Trace) == Iterations-1.
type Result struct {
	Method     Method
	Root       float64
	Iterations int
	Trace      []float64
	Status     Status
	Failure    *DegenerateError
}

func (r Result) Converged() bool {
	return r.Status == Converged
}

// FinalError returns the last trace entry, or 0 when nothing was recorded.
func (r Result) FinalError() float64 {
	return utils.Last(r.Trace)
}

func (r Result) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}
