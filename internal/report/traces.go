package report

import (
	"io"
	"strconv"

	"github.com/wildstyl3r/rootfind/internal/compare"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

// WriteTraces writes one CSV row per 1-based iteration with a column per
// method. Methods whose trace is shorter leave the cell empty.
func WriteTraces(w io.Writer, outcomes []compare.Outcome) error {
	columns := []string{"iteration"}
	longest := 0
	for _, outcome := range outcomes {
		columns = append(columns, outcome.Method.String())
		longest = max(longest, len(outcome.Result.Trace))
	}

	rows := make(utils.CSV, 0, longest)
	for i := 0; i < longest; i++ {
		row := []string{strconv.Itoa(i + 1)}
		for _, outcome := range outcomes {
			cell := ""
			if i < len(outcome.Result.Trace) {
				cell = strconv.FormatFloat(outcome.Result.Trace[i], 'g', -1, 64)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}
	return utils.WriteAsCSV(w, rows, columns)
}
