package utils

import (
	"cmp"
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Float | constraints.Integer
}

// Last returns the final element of s, or the zero value for an empty slice.
func Last[T any](s []T) (last T) {
	if len(s) == 0 {
		return
	}
	return s[len(s)-1]
}

// Argmin returns -1 for an empty slice.
func Argmin[T cmp.Ordered](arr []T) (argmin int) {
	if len(arr) == 0 {
		return -1
	}
	for i := range arr {
		if cmp.Compare(arr[i], arr[argmin]) == -1 {
			argmin = i
		}
	}
	return
}

func Average[T Number](s []T) (mean float64) {
	if len(s) == 0 {
		return math.NaN()
	}
	for i := range s {
		mean += float64(s[i])
	}
	mean /= float64(len(s))
	return
}

// ConvergenceOrder estimates q in e_{n+1} ~ C e_n^q from the last three
// consecutive positive finite entries of the trace. NaN when not estimable.
func ConvergenceOrder(trace []float64) float64 {
	for k := len(trace) - 1; k >= 2; k-- {
		e1, e2, e3 := trace[k-2], trace[k-1], trace[k]
		if !positive(e1) || !positive(e2) || !positive(e3) {
			continue
		}
		denominator := math.Log(e2 / e1)
		if denominator == 0 {
			return math.NaN()
		}
		return math.Log(e3/e2) / denominator
	}
	return math.NaN()
}

// ContractionRatios returns e_{n+1}/e_n for every pair of positive entries.
func ContractionRatios(trace []float64) (ratios []float64) {
	for i := 1; i < len(trace); i++ {
		if positive(trace[i-1]) && !math.IsNaN(trace[i]) {
			ratios = append(ratios, trace[i]/trace[i-1])
		}
	}
	return
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}
