package utils

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/facette/natsort"
)

// CSV rows are ordered naturally by their first column, so "10" follows "9".
type CSV [][]string

func (data CSV) Less(i, j int) bool {
	return natsort.Compare(data[i][0], data[j][0])
}

func (data CSV) Len() int {
	return len(data)
}
func (data CSV) Swap(i, j int) {
	data[i], data[j] = data[j], data[i]
}

func WriteAsCSV(w io.Writer, data CSV, columns []string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("error writing csv header: %w", err)
	}
	sort.Sort(data)
	if err := writer.WriteAll(data); err != nil {
		return fmt.Errorf("error writing csv: %w", err)
	}
	return nil
}
