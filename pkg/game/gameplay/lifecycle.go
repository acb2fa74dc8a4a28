package gameplay

import (
	"fmt"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/caverns"
	"cavearena/pkg/game/generator"
	"cavearena/pkg/game/levelgen"
	"cavearena/pkg/game/setup"
	"cavearena/pkg/game/state"
)

// GenerateOptions parameterizes one arena regeneration.
type GenerateOptions struct {
	Dimension        int
	Coverage         float64
	Scale            int
	Offset           world.Position
	Enemies          int
	MinEnemyDistance int
}

// Regenerate replaces the arena and all its occupants: previous enemies are
// destroyed and the occupancy index reset, a fresh grid is generated and
// projected onto the tile surface (when one is attached), and the long-lived
// player and exit are relocated before the new enemies spawn. Fires
// OnMapGenerated on success. tiles may be nil.
func Regenerate(g *state.Game, opts GenerateOptions, gen generator.GridGenerator, tiles generator.Surface) error {
	g.ClearEnemies()

	grid, err := gen.Generate(generator.Config{
		Dimension: opts.Dimension,
		Coverage:  opts.Coverage,
		Scale:     opts.Scale,
		Offset:    opts.Offset,
	}, g.Rand)
	if err != nil {
		return fmt.Errorf("regenerate arena: %w", err)
	}
	g.Grid = grid

	if err := setup.PlacePlayer(g); err != nil {
		return fmt.Errorf("regenerate arena: %w", err)
	}
	setup.PlaceExitAwayFrom(g, g.Player.Pos())
	if err := setup.PlaceEnemies(g, opts.Enemies, opts.MinEnemyDistance, caverns.BrainFor(g.Level)); err != nil {
		return fmt.Errorf("regenerate arena: %w", err)
	}
	levelgen.SeedSpores(g, g.Rand, levelgen.SporesPerCavern)

	// Projection happens after placement so the exit cell lands on the
	// tile surface as Exit.
	if tiles != nil {
		generator.Project(grid, tiles, opts.Scale, opts.Offset)
	}

	if g.OnMapGenerated != nil {
		g.OnMapGenerated()
	}
	return nil
}

// AdvanceLevel moves the run to the next arena after the player reaches the
// exit: one more enemy, same grid parameters. Escaping the deepest cavern
// ends the run won instead of descending.
func AdvanceLevel(g *state.Game, opts GenerateOptions, gen generator.GridGenerator, tiles generator.Surface) (GenerateOptions, error) {
	if caverns.IsFinalCavern(g.Level) {
		g.Won = true
		g.Over = true
		g.AddMessage("you climb out into daylight")
		return opts, nil
	}

	g.Level++
	opts.Enemies++
	if err := Regenerate(g, opts, gen, tiles); err != nil {
		return opts, err
	}
	g.ClearMessages()
	g.AddMessage(fmt.Sprintf("you descend to cavern %d", g.Level))
	g.AddMessage(caverns.FlavourText(g.Level))
	return opts, nil
}
