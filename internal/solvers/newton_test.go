package solvers_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/rootfind/internal/solvers"
)

func TestNewton_Cubic(t *testing.T) {
	r, err := solvers.Newton(cubic, dCubic, 2.5, defaults)
	require.NoError(t, err)

	assert.Equal(t, solvers.MethodNewton, r.Method)
	assert.Equal(t, solvers.Converged, r.Status)
	assert.Equal(t, 5, r.Iterations)
	assert.InDelta(t, cubicRoot, r.Root, 1e-9)
	assert.InDelta(t, 0.33582089552238825, r.Trace[0], 1e-12)
	assert.Less(t, r.FinalError(), 1e-10)
	assert.NoError(t, r.Err())
}

func TestNewton_PoorGuessDoesNotConverge(t *testing.T) {
	// from 0 the iterates cycle 0 -> 1 -> 0 and never approach the root near -1.77
	r, err := solvers.Newton(diverging, dCubic, 0, solvers.Config{Tolerance: 1e-6, MaxIterations: 50})
	require.NoError(t, err)

	assert.Equal(t, solvers.NotConverged, r.Status)
	assert.False(t, r.Converged())
	assert.Equal(t, 50, r.Iterations)
	require.Len(t, r.Trace, 50)
	for _, e := range r.Trace {
		assert.Equal(t, 1., e)
	}
	assert.Equal(t, 0., r.Root)
	assert.Nil(t, r.Failure)
}

func TestNewton_FlatDerivativeAtStart(t *testing.T) {
	r, err := solvers.Newton(constant, zero, 3, defaults)
	require.NoError(t, err)

	assert.Equal(t, solvers.DerivativeDegenerate, r.Status)
	assert.Equal(t, 1, r.Iterations)
	assert.Empty(t, r.Trace)
	assert.Equal(t, 0., r.FinalError())
	assert.Equal(t, 3., r.Root)

	require.ErrorIs(t, r.Err(), solvers.ErrDerivativeDegenerate)
	var degenerate *solvers.DegenerateError
	require.True(t, errors.As(r.Err(), &degenerate))
	assert.Equal(t, 0, degenerate.Iteration)
	assert.Equal(t, 3., degenerate.X)
	assert.Equal(t, 0., degenerate.Value)
	assert.Equal(t, solvers.MethodNewton, degenerate.Method)
}

func TestNewton_FlatDerivativeMidway(t *testing.T) {
	// x^2 + 1 from 1 steps exactly onto 0 where the derivative vanishes
	f := func(x float64) float64 { return x*x + 1 }
	df := func(x float64) float64 { return 2 * x }

	r, err := solvers.Newton(f, df, 1, defaults)
	require.NoError(t, err)

	assert.Equal(t, solvers.DerivativeDegenerate, r.Status)
	assert.Equal(t, 2, r.Iterations)
	assert.Equal(t, []float64{1}, r.Trace)
	assert.Equal(t, 0., r.Root)
	assert.Equal(t, 1, r.Failure.Iteration)
}

func TestNewton_TinyDerivativeBelowFloor(t *testing.T) {
	r, err := solvers.Newton(cubic, func(float64) float64 { return 1e-13 }, 2, defaults)
	require.NoError(t, err)
	assert.Equal(t, solvers.DerivativeDegenerate, r.Status)
}

func TestNewton_AlreadyAtRoot(t *testing.T) {
	f := func(x float64) float64 { return x - 4 }
	df := func(float64) float64 { return 1 }

	r, err := solvers.Newton(f, df, 4, defaults)
	require.NoError(t, err)
	assert.Equal(t, solvers.Converged, r.Status)
	assert.Equal(t, 1, r.Iterations)
	assert.Equal(t, []float64{0}, r.Trace)
	assert.Equal(t, 4., r.Root)
}

func TestNewton_SingleIterationBudget(t *testing.T) {
	r, err := solvers.Newton(cubic, dCubic, 2.5, solvers.Config{MaxIterations: 1})
	require.NoError(t, err)
	assert.Equal(t, solvers.NotConverged, r.Status)
	assert.Equal(t, 1, r.Iterations)
	assert.Len(t, r.Trace, 1)
	assert.InDelta(t, 2.5-5.625/16.75, r.Root, 1e-12)
}
