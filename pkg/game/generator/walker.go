package generator

import (
	"math"
	"math/rand"

	"cavearena/pkg/engine/world"
)

// DrunkardWalk carves a connected cave by walking a cursor randomly across a
// wall-filled grid until a target fraction of cells is empty. Every carved
// cell is adjacent to the previous cursor position, so the carved region is
// 4-connected by construction.
type DrunkardWalk struct{}

// Name returns the name of this generator
func (g *DrunkardWalk) Name() string {
	return "Drunkard's Walk"
}

// Generate creates a new grid for the given config. The walk starts at a
// uniformly random interior cell and stops once ceil(Dimension²·Coverage)
// cells are empty, or fails with ErrGenerationTimeout after cfg.MaxSteps
// steps (default Dimension⁴).
func (g *DrunkardWalk) Generate(cfg Config, rng *rand.Rand) (*world.Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid, err := world.NewGrid(cfg.Dimension)
	if err != nil {
		return nil, err
	}

	dim := cfg.Dimension
	target := int(math.Ceil(float64(dim*dim) * cfg.Coverage))
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = dim * dim * dim * dim
	}

	// Start away from the border so the first carve never touches the edge.
	cursor := world.Position{
		X: 1 + rng.Intn(dim-2),
		Y: 1 + rng.Intn(dim-2),
	}
	grid.SetKind(cursor, world.Empty)
	carved := 1

	for steps := 0; carved < target; steps++ {
		if steps >= maxSteps {
			return nil, ErrGenerationTimeout
		}

		dir := world.Direction(rng.Intn(4))
		next := cursor.Step(dir)
		if !grid.InBounds(next) {
			// Discard the step, cursor unchanged.
			continue
		}
		if grid.IsWall(next) {
			grid.SetKind(next, world.Empty)
			carved++
		}
		cursor = next
	}

	return grid, nil
}
