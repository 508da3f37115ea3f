package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/solvers"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

var (
	okColor   = color.New(color.FgGreen)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed)
)

// Table writes one row per outcome: Method, Root, Iterations, Final Error,
// Order and Status. Status is the last column so color codes do not shift
// the alignment.
func Table(w io.Writer, outcomes []compare.Outcome) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Method\tRoot\tIterations\tFinal Error\tOrder\tStatus")
	for _, outcome := range outcomes {
		if outcome.Failed() {
			fmt.Fprintf(tw, "%s\t-\t-\t-\t-\t%s\n", outcome.Method, failColor.Sprintf("error: %v", outcome.Err))
			continue
		}
		r := outcome.Result
		fmt.Fprintf(tw, "%s\t%.10f\t%d\t%.10f\t%s\t%s\n",
			r.Method, r.Root, r.Iterations, r.FinalError(), formatOrder(utils.ConvergenceOrder(r.Trace)), statusText(r))
	}
	if fastest, some := Fastest(outcomes); some {
		fmt.Fprintf(tw, "\nfastest: %s\n", fastest)
	}
	return tw.Flush()
}

// Fastest returns the converged method with the fewest iterations.
func Fastest(outcomes []compare.Outcome) (solvers.Method, bool) {
	var methods []solvers.Method
	var iterations []int
	for _, outcome := range outcomes {
		if !outcome.Failed() && outcome.Result.Converged() {
			methods = append(methods, outcome.Method)
			iterations = append(iterations, outcome.Result.Iterations)
		}
	}
	i := utils.Argmin(iterations)
	if i < 0 {
		return 0, false
	}
	return methods[i], true
}

func statusText(r solvers.Result) string {
	switch r.Status {
	case solvers.Converged:
		return okColor.Sprint(r.Status)
	case solvers.NotConverged:
		return warnColor.Sprint(r.Status)
	}
	return failColor.Sprint(r.Status)
}

func formatOrder(q float64) string {
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f", q)
}
