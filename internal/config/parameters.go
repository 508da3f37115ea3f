package config

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/wildstyl3r/rootfind/internal/constants"
	"github.com/wildstyl3r/rootfind/internal/solvers"
	"github.com/wildstyl3r/rootfind/internal/utils"
)

var (
	ErrNoProblems       = errors.New("config: no problems provided")
	ErrAmbiguousSource  = errors.New("config: brackets file and Problems table are mutually exclusive")
	ErrMissingParameter = errors.New("config: required parameter not found")
	ErrInvalidParameter = errors.New("config: invalid parameter")
)

type Config struct {
	OutputDir string
	Brackets  string
	Problems  map[string]ProblemParameters
	ProblemParameters
	isDefinedMap map[string]struct{}
}

type ProblemParameters struct {
	Function      string
	Methods       []string
	Tolerance     float64
	MaxIterations int
	NewtonGuess   float64
	BracketLeft   float64
	BracketRight  float64
	SecantFirst   float64
	SecantSecond  float64
	MakeDir       bool

	defined map[string]struct{}
}

var defaultValues = map[string]any{
	"Tolerance":     constants.DefaultTolerance,
	"MaxIterations": constants.DefaultMaxIterations,
	"Methods":       []string{"newton", "bisection", "secant"},
	"MakeDir":       false,
}

var methodRequirements = map[solvers.Method][]string{
	solvers.MethodNewton:    {"NewtonGuess"},
	solvers.MethodBisection: {"BracketLeft", "BracketRight"},
	solvers.MethodSecant:    {"SecantFirst", "SecantSecond"},
}

func (c *Config) isDefined(path []string, meta *toml.MetaData) bool {
	if _, sureDefined := c.isDefinedMap[strings.Join(path, "#")]; sureDefined {
		return true
	}
	return meta.IsDefined(path...)
}

// LoadConfig decodes <name>.toml. Problems come either from the Problems
// table or, when Brackets names a file of float pairs, one problem per line
// using the pair as both bracket and secant starting points.
func LoadConfig(configFileName string) (Config, toml.MetaData, error) {
	var config Config
	config.isDefinedMap = map[string]struct{}{}
	configFileName = strings.TrimSuffix(configFileName, ".toml")
	meta, err := toml.DecodeFile(configFileName+".toml", &config)
	if err != nil {
		return config, meta, fmt.Errorf("config: %w", err)
	}

	if len(config.Brackets) > 0 {
		if len(config.Problems) > 0 {
			return config, meta, ErrAmbiguousSource
		}
		pairs, err := utils.ReadFloatPairs(config.Brackets)
		if err != nil {
			return config, meta, fmt.Errorf("config: brackets file: %w", err)
		}
		filename := utils.GetFilename(config.Brackets)
		config.Problems = make(map[string]ProblemParameters, len(pairs))
		for line := range pairs {
			problemName := filename + "_l" + strconv.Itoa(line+1)
			config.Problems[problemName] = ProblemParameters{
				BracketLeft:  pairs[line][0],
				BracketRight: pairs[line][1],
				SecantFirst:  pairs[line][0],
				SecantSecond: pairs[line][1],
			}
			for _, field := range []string{"BracketLeft", "BracketRight", "SecantFirst", "SecantSecond"} {
				config.isDefinedMap[strings.Join([]string{"Problems", problemName, field}, "#")] = struct{}{}
			}
		}
	}
	if len(config.Problems) == 0 {
		return config, meta, ErrNoProblems
	}

	return config, meta, nil
}

/*
field value priority:
1. problem
2. global
3. default
*/

// CheckAndUnify resolves every field of the named problem and validates the result.
func (problem *ProblemParameters) CheckAndUnify(problemName string, config *Config, meta *toml.MetaData) error {
	problem.defined = map[string]struct{}{}
	local := reflect.ValueOf(problem).Elem()
	global := reflect.ValueOf(&config.ProblemParameters).Elem()
	problemType := local.Type()

	for i := 0; i < problemType.NumField(); i++ {
		field := problemType.Field(i)
		if !field.IsExported() {
			continue
		}
		switch {
		case config.isDefined([]string{"Problems", problemName, field.Name}, meta):
		case meta.IsDefined(field.Name):
			local.Field(i).Set(global.Field(i))
		default:
			value, some := defaultValues[field.Name]
			if !some {
				continue
			}
			local.Field(i).Set(reflect.ValueOf(value))
		}
		problem.defined[field.Name] = struct{}{}
	}

	return problem.validate()
}

func (problem *ProblemParameters) validate() error {
	if _, some := problem.defined["Function"]; !some || problem.Function == "" {
		return fmt.Errorf("%w: Function", ErrMissingParameter)
	}
	if !(problem.Tolerance > 0) || math.IsInf(problem.Tolerance, 0) {
		return fmt.Errorf("%w: Tolerance must be positive, got %v", ErrInvalidParameter, problem.Tolerance)
	}
	if problem.MaxIterations <= 0 {
		return fmt.Errorf("%w: MaxIterations must be positive, got %d", ErrInvalidParameter, problem.MaxIterations)
	}
	methods, err := problem.MethodList()
	if err != nil {
		return err
	}
	var missing []string
	for _, method := range methods {
		for _, requirement := range methodRequirements[method] {
			if _, some := problem.defined[requirement]; !some {
				missing = append(missing, method.String()+"."+requirement)
			}
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingParameter, strings.Join(missing, ", "))
	}
	return nil
}

// MethodList parses Methods, dropping duplicates.
func (problem *ProblemParameters) MethodList() ([]solvers.Method, error) {
	if len(problem.Methods) == 0 {
		return nil, fmt.Errorf("%w: Methods is empty", ErrInvalidParameter)
	}
	seen := map[solvers.Method]struct{}{}
	var methods []solvers.Method
	for _, name := range problem.Methods {
		method, err := solvers.ParseMethod(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
		}
		if _, some := seen[method]; some {
			continue
		}
		seen[method] = struct{}{}
		methods = append(methods, method)
	}
	return methods, nil
}

func (problem *ProblemParameters) SolverConfig() solvers.Config {
	return solvers.Config{
		Tolerance:     problem.Tolerance,
		MaxIterations: problem.MaxIterations,
	}
}
