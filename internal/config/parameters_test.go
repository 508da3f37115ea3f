package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wildstyl3r/rootfind/internal/solvers"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problems.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func load(t *testing.T, content string) (Config, func(name string) (ProblemParameters, error)) {
	t.Helper()
	cfg, meta, err := LoadConfig(writeConfig(t, content))
	require.NoError(t, err)
	return cfg, func(name string) (ProblemParameters, error) {
		p := cfg.Problems[name]
		return p, p.CheckAndUnify(name, &cfg, &meta)
	}
}

func TestCheckAndUnify_Precedence(t *testing.T) {
	cfg, unify := load(t, `
OutputDir = "out"
Tolerance = 1e-8
Function = "cubic"
NewtonGuess = 2.5

[Problems.global]
BracketLeft = 2.0
BracketRight = 3.0
SecantFirst = 2.0
SecantSecond = 3.0

[Problems.local]
Function = "quadratic"
Tolerance = 1e-4
MaxIterations = 20
Methods = ["newton"]
NewtonGuess = 1.0
`)
	assert.Equal(t, "out", cfg.OutputDir)

	global, err := unify("global")
	require.NoError(t, err)
	assert.Equal(t, "cubic", global.Function)
	assert.Equal(t, 1e-8, global.Tolerance)
	assert.Equal(t, 100, global.MaxIterations)
	assert.Equal(t, 2.5, global.NewtonGuess)
	assert.Equal(t, []string{"newton", "bisection", "secant"}, global.Methods)
	assert.False(t, global.MakeDir)

	local, err := unify("local")
	require.NoError(t, err)
	assert.Equal(t, "quadratic", local.Function)
	assert.Equal(t, solvers.Config{Tolerance: 1e-4, MaxIterations: 20}, local.SolverConfig())
	assert.Equal(t, 1., local.NewtonGuess)

	methods, err := local.MethodList()
	require.NoError(t, err)
	assert.Equal(t, []solvers.Method{solvers.MethodNewton}, methods)
}

func TestCheckAndUnify_ZeroValuesCountAsDefined(t *testing.T) {
	_, unify := load(t, `
[Problems.zero]
Function = "cosine"
Methods = ["newton", "bisect"]
NewtonGuess = 0.0
BracketLeft = 0.0
BracketRight = 1.0
`)
	p, err := unify("zero")
	require.NoError(t, err)
	assert.Equal(t, 0., p.NewtonGuess)
}

func TestCheckAndUnify_Errors(t *testing.T) {
	tests := []struct {
		name    string
		problem string
		want    error
		detail  string
	}{
		{"missing function", `NewtonGuess = 1.0`, ErrMissingParameter, "Function"},
		{"missing start", `Function = "cubic"`, ErrMissingParameter, "Newton-Raphson.NewtonGuess"},
		{"unknown method", "Function = \"cubic\"\nMethods = [\"brent\"]", ErrInvalidParameter, "brent"},
		{"empty methods", "Function = \"cubic\"\nMethods = []", ErrInvalidParameter, "empty"},
		{"negative tolerance", "Function = \"cubic\"\nTolerance = -1.0\nMethods = [\"secant\"]\nSecantFirst = 1.0\nSecantSecond = 2.0", ErrInvalidParameter, "Tolerance"},
		{"zero iterations", "Function = \"cubic\"\nMaxIterations = 0\nMethods = [\"secant\"]\nSecantFirst = 1.0\nSecantSecond = 2.0", ErrInvalidParameter, "MaxIterations"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, unify := load(t, "[Problems.p]\n"+tt.problem+"\n")
			_, err := unify("p")
			require.ErrorIs(t, err, tt.want)
			assert.ErrorContains(t, err, tt.detail)
		})
	}
}

func TestMethodList_Deduplicates(t *testing.T) {
	p := ProblemParameters{Methods: []string{"secant", "nr", "sec"}}
	methods, err := p.MethodList()
	require.NoError(t, err)
	assert.Equal(t, []solvers.Method{solvers.MethodSecant, solvers.MethodNewton}, methods)
}

func TestLoadConfig_BracketsFile(t *testing.T) {
	dir := t.TempDir()
	brackets := filepath.Join(dir, "intervals.txt")
	require.NoError(t, os.WriteFile(brackets, []byte("2 3\n0 2\n"), 0644))

	path := filepath.Join(dir, "run.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
Brackets = "`+filepath.ToSlash(brackets)+`"
Function = "cubic"
Methods = ["bisection", "secant"]
`), 0644))

	cfg, meta, err := LoadConfig(filepath.Join(dir, "run"))
	require.NoError(t, err)
	require.Len(t, cfg.Problems, 2)

	p := cfg.Problems["intervals_l2"]
	require.NoError(t, p.CheckAndUnify("intervals_l2", &cfg, &meta))
	assert.Equal(t, 0., p.BracketLeft)
	assert.Equal(t, 2., p.BracketRight)
	assert.Equal(t, 0., p.SecantFirst)
	assert.Equal(t, 2., p.SecantSecond)
	assert.Equal(t, "cubic", p.Function)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, _, err := LoadConfig(writeConfig(t, `OutputDir = "x"`))
	assert.ErrorIs(t, err, ErrNoProblems)

	_, _, err = LoadConfig(writeConfig(t, "Brackets = \"b.txt\"\n[Problems.p]\nFunction = \"cubic\"\n"))
	assert.ErrorIs(t, err, ErrAmbiguousSource)

	_, _, err = LoadConfig(writeConfig(t, "Tolerance = ["))
	assert.Error(t, err)

	_, _, err = LoadConfig(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
