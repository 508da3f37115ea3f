package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/constants"
	"github.com/wildstyl3r/rootfind/internal/functions"
	"github.com/wildstyl3r/rootfind/internal/report"
	"github.com/wildstyl3r/rootfind/internal/solvers"
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve one catalogue function from the command line",
	Example: `  rootfind solve -f cubic --x0 2.5 --a 2 --b 3 --x1 3
  rootfind solve -f cubic-diverging -m newton --x0 0 --max-iter 50`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		name, _ := flags.GetString("function")
		methodNames, _ := flags.GetStringSlice("method")
		tolerance, _ := flags.GetFloat64("tol")
		maxIterations, _ := flags.GetInt("max-iter")
		format, _ := flags.GetString("format")

		fn, err := functions.Lookup(name)
		if err != nil {
			return err
		}
		problem := compare.Problem{Name: name, Function: fn}
		problem.NewtonGuess, _ = flags.GetFloat64("x0")
		problem.SecantFirst = problem.NewtonGuess
		problem.SecantSecond, _ = flags.GetFloat64("x1")
		problem.BracketLeft, _ = flags.GetFloat64("a")
		problem.BracketRight, _ = flags.GetFloat64("b")

		var methods []solvers.Method
		for _, methodName := range methodNames {
			method, err := solvers.ParseMethod(methodName)
			if err != nil {
				return err
			}
			var required []string
			switch method {
			case solvers.MethodNewton:
				required = []string{"x0"}
			case solvers.MethodBisection:
				required = []string{"a", "b"}
			case solvers.MethodSecant:
				required = []string{"x0", "x1"}
			}
			for _, flag := range required {
				if !flags.Changed(flag) {
					return fmt.Errorf("%s requires --%s", method, flag)
				}
			}
			methods = append(methods, method)
		}

		cfg := solvers.Config{Tolerance: tolerance, MaxIterations: maxIterations}
		outcomes, err := compare.Run(cmd.Context(), problem, methods, cfg, logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		switch strings.ToLower(format) {
		case "table":
			return report.Table(out, outcomes)
		case "csv":
			return report.WriteTraces(out, outcomes)
		case "yaml":
			return report.WriteSummary(out, problem, outcomes)
		}
		return fmt.Errorf("unknown format %q", format)
	},
}

func init() {
	flags := solveCmd.Flags()
	flags.StringP("function", "f", "cubic", "catalogue function, see 'rootfind functions'")
	flags.StringSliceP("method", "m", []string{"newton", "bisection", "secant"}, "methods to run")
	flags.Float64("x0", 0, "Newton initial guess and first secant point")
	flags.Float64("x1", 0, "second secant point")
	flags.Float64("a", 0, "left bracket endpoint")
	flags.Float64("b", 0, "right bracket endpoint")
	flags.Float64("tol", constants.DefaultTolerance, "tolerance")
	flags.Int("max-iter", constants.DefaultMaxIterations, "iteration bound")
	flags.String("format", "table", "output format: table, csv or yaml")
	rootCmd.AddCommand(solveCmd)
}
