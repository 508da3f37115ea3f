package solvers

import (
	"fmt"
	"math"

	"github.com/wildstyl3r/rootfind/internal/constants"
)

// Config bounds a single solve. Zero fields fall back to the defaults.
type Config struct {
	Tolerance     float64
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		Tolerance:     constants.DefaultTolerance,
		MaxIterations: constants.DefaultMaxIterations,
	}
}

func (c Config) withDefaults() (Config, error) {
	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return c, fmt.Errorf("%w: tolerance %v", ErrInvalidConfig, c.Tolerance)
	}
	if c.MaxIterations < 0 {
		return c, fmt.Errorf("%w: max iterations %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Tolerance == 0 {
		c.Tolerance = constants.DefaultTolerance
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = constants.DefaultMaxIterations
	}
	return c, nil
}
