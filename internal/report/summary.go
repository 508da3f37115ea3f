package report

import (
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

type Summary struct {
	Problem    string          `yaml:"problem"`
	Function   string          `yaml:"function"`
	Expression string          `yaml:"expression"`
	Fastest    string          `yaml:"fastest,omitempty"`
	Methods    []MethodSummary `yaml:"methods"`
}

type MethodSummary struct {
	Method     string    `yaml:"method"`
	Status     string    `yaml:"status"`
	Root       float64   `yaml:"root"`
	Iterations int       `yaml:"iterations"`
	FinalError float64   `yaml:"final_error"`
	Order      *float64  `yaml:"order,omitempty"`
	MeanRatio  *float64  `yaml:"mean_ratio,omitempty"`
	Error      string    `yaml:"error,omitempty"`
	Trace      []float64 `yaml:"trace,flow"`
}

func NewSummary(problem compare.Problem, outcomes []compare.Outcome) Summary {
	summary := Summary{
		Problem:    problem.Name,
		Function:   problem.Function.Name,
		Expression: problem.Function.Expression,
	}
	if fastest, some := Fastest(outcomes); some {
		summary.Fastest = fastest.String()
	}
	for _, outcome := range outcomes {
		ms := MethodSummary{Method: outcome.Method.String()}
		if outcome.Failed() {
			ms.Status = "error"
			ms.Error = outcome.Err.Error()
			summary.Methods = append(summary.Methods, ms)
			continue
		}
		r := outcome.Result
		ms.Status = r.Status.String()
		ms.Root = r.Root
		ms.Iterations = r.Iterations
		ms.FinalError = r.FinalError()
		ms.Order = finite(utils.ConvergenceOrder(r.Trace))
		ms.MeanRatio = finite(utils.Average(utils.ContractionRatios(r.Trace)))
		if r.Failure != nil {
			ms.Error = r.Failure.Error()
		}
		ms.Trace = r.Trace
		summary.Methods = append(summary.Methods, ms)
	}
	return summary
}

func WriteSummary(w io.Writer, problem compare.Problem, outcomes []compare.Outcome) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(NewSummary(problem, outcomes)); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}
	return encoder.Close()
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
