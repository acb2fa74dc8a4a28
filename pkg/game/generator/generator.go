// Package generator produces the cave-like battle arena grid.
package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"cavearena/pkg/engine/world"
)

// ErrGenerationTimeout is returned when the random walk fails to reach its
// coverage target within the step bound. Recoverable by retrying with a
// fresh seed.
var ErrGenerationTimeout = errors.New("generation timed out before reaching coverage target")

// Config holds the parameters for one arena generation.
type Config struct {
	Dimension int     // logical grid is Dimension×Dimension, at least 3
	Coverage  float64 // target fraction of Empty cells, in (0, 1]
	Scale     int     // enlargement factor for tile projection, at least 1
	Offset    world.Position
	MaxSteps  int // walk step bound; 0 selects a dimension-derived default
}

// Validate checks the config ranges.
func (c Config) Validate() error {
	if c.Dimension < 3 {
		return fmt.Errorf("dimension must be at least 3, got %d", c.Dimension)
	}
	if c.Coverage <= 0 || c.Coverage > 1 {
		return fmt.Errorf("coverage must be in (0, 1], got %v", c.Coverage)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be at least 1, got %d", c.Scale)
	}
	return nil
}

// GridGenerator is an interface for arena generation algorithms
type GridGenerator interface {
	Generate(cfg Config, rng *rand.Rand) (*world.Grid, error)
	Name() string
}

// DefaultGenerator is the default arena generator
var DefaultGenerator GridGenerator = &DrunkardWalk{}
