package levelgen

import (
	"math/rand"
	"testing"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/state"
)

// openGame builds a game on a dim×dim grid with every cell carved empty and
// the player registered at p.
func openGame(t *testing.T, dim int, p world.Position) *state.Game {
	t.Helper()
	g := state.NewGame(1)
	grid, err := world.NewGrid(dim)
	if err != nil {
		t.Fatalf("NewGrid(%d) error = %v", dim, err)
	}
	grid.ForEachCell(func(pos world.Position, _ world.CellKind) {
		grid.SetKind(pos, world.Empty)
	})
	g.Grid = grid
	g.Player.SetPos(p)
	g.Occupants.Insert(p, g.Player)
	return g
}

func TestSeedSpores_AvoidsPlayerAndWalls(t *testing.T) {
	g := openGame(t, 11, world.Position{X: 5, Y: 5})
	rng := rand.New(rand.NewSource(7))

	SeedSpores(g, rng, 10)

	if g.Spores.Size() != 10 {
		t.Fatalf("seeded %d patches, want 10", g.Spores.Size())
	}
	pp := g.Player.Pos()
	g.Spores.Each(func(p world.Position) {
		if g.Grid.Blocked(p) {
			t.Errorf("spore at %v on a blocked cell", p)
		}
		if _, occupied := g.Occupants.At(p); occupied {
			t.Errorf("spore at %v under an occupant", p)
		}
		dx, dy := p.X-pp.X, p.Y-pp.Y
		if dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1 {
			t.Errorf("spore at %v inside the player's neighbourhood", p)
		}
	})
}

func TestSeedSpores_ClampsToAvailableFloor(t *testing.T) {
	// 5x5 open grid: enterable region is 3x3 minus the player's
	// neighbourhood, which covers all of it.
	g := openGame(t, 5, world.Position{X: 2, Y: 2})
	SeedSpores(g, rand.New(rand.NewSource(1)), 100)
	if g.Spores.Size() != 0 {
		t.Errorf("seeded %d patches with no eligible floor, want 0", g.Spores.Size())
	}
}

func TestSeedSpores_ReplacesPreviousField(t *testing.T) {
	g := openGame(t, 11, world.Position{X: 5, Y: 5})
	g.Spores.Put(world.Position{X: 9, Y: 9})

	SeedSpores(g, rand.New(rand.NewSource(3)), 0)

	if g.Spores.Size() != 0 {
		t.Errorf("field has %d patches after reseeding with 0, want 0", g.Spores.Size())
	}
}
