package compare

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/wildstyl3r/rootfind/internal/config"
	"github.com/wildstyl3r/rootfind/internal/functions"
	"github.com/wildstyl3r/rootfind/internal/solvers"
)

// Problem holds the starting data for every method. Fields a method does not
// use are ignored.
type Problem struct {
	Name         string
	Function     functions.Function
	NewtonGuess  float64
	BracketLeft  float64
	BracketRight float64
	SecantFirst  float64
	SecantSecond float64
}

// Outcome is either a Result or the precondition error that prevented the solve.
type Outcome struct {
	Method solvers.Method
	Result solvers.Result
	Err    error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// FromParameters builds a Problem from resolved config parameters.
func FromParameters(name string, parameters *config.ProblemParameters) (Problem, error) {
	fn, err := functions.Lookup(parameters.Function)
	if err != nil {
		return Problem{}, fmt.Errorf("problem %s: %w", name, err)
	}
	return Problem{
		Name:         name,
		Function:     fn,
		NewtonGuess:  parameters.NewtonGuess,
		BracketLeft:  parameters.BracketLeft,
		BracketRight: parameters.BracketRight,
		SecantFirst:  parameters.SecantFirst,
		SecantSecond: parameters.SecantSecond,
	}, nil
}

// Solve runs a single method on the problem.
func Solve(problem Problem, method solvers.Method, cfg solvers.Config) (solvers.Result, error) {
	switch method {
	case solvers.MethodNewton:
		return solvers.Newton(problem.Function.F, problem.Function.DF, problem.NewtonGuess, cfg)
	case solvers.MethodBisection:
		return solvers.Bisect(problem.Function.F, problem.BracketLeft, problem.BracketRight, cfg)
	case solvers.MethodSecant:
		return solvers.Secant(problem.Function.F, problem.SecantFirst, problem.SecantSecond, cfg)
	}
	return solvers.Result{}, fmt.Errorf("unsupported method %v", method)
}

// Run solves the problem with every requested method concurrently. Outcomes
// keep the order of methods. A failing method does not stop the others; the
// returned error is reserved for cancellation.
func Run(ctx context.Context, problem Problem, methods []solvers.Method, cfg solvers.Config, logger *slog.Logger) ([]Outcome, error) {
	outcomes := make([]Outcome, len(methods))
	g, ctx := errgroup.WithContext(ctx)
	for i, method := range methods {
		i, method := i, method
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result, err := Solve(problem, method, cfg)
			outcomes[i] = Outcome{Method: method, Result: result, Err: err}
			switch {
			case err != nil:
				logger.Warn("solve rejected", "problem", problem.Name, "method", method.String(), "error", err)
			case result.Failure != nil:
				logger.Warn("solve degenerate", "problem", problem.Name, "method", method.String(), "error", result.Failure)
			default:
				logger.Debug("solve finished", "problem", problem.Name, "method", method.String(),
					"status", result.Status.String(), "root", result.Root, "iterations", result.Iterations)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
