package report

import (
	"errors"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

// SaveProblem writes the trace CSV and the YAML summary for one problem and
// returns the paths written.
func SaveProblem(outputDir string, makeDir bool, problem compare.Problem, outcomes []compare.Outcome) (paths []string, err error) {
	traces, err := utils.OpenFile(makeDir, outputDir, problem.Name, "traces", "csv")
	if err != nil {
		return nil, err
	}
	err = errors.Join(WriteTraces(traces, outcomes), traces.Close())
	if err != nil {
		return nil, err
	}
	paths = append(paths, traces.Name())

	summary, err := utils.OpenFile(makeDir, outputDir, problem.Name, "summary", "yaml")
	if err != nil {
		return paths, err
	}
	err = errors.Join(WriteSummary(summary, problem, outcomes), summary.Close())
	if err != nil {
		return paths, err
	}
	return append(paths, summary.Name()), nil
}
