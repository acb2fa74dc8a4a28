package gameplay

import (
	"errors"
	"testing"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/generator"
	"cavearena/pkg/game/state"
)

var testOpts = GenerateOptions{
	Dimension:        21,
	Coverage:         0.4,
	Scale:            2,
	Enemies:          4,
	MinEnemyDistance: 3,
}

func TestRegenerate_PopulatesArena(t *testing.T) {
	g := state.NewGame(9)
	generated := 0
	g.OnMapGenerated = func() { generated++ }

	if err := Regenerate(g, testOpts, generator.DefaultGenerator, nil); err != nil {
		t.Fatalf("Regenerate error = %v", err)
	}
	if generated != 1 {
		t.Errorf("map-generated fired %d times, want 1", generated)
	}
	if g.Grid == nil || g.Grid.Dim() != testOpts.Dimension {
		t.Fatal("grid missing or wrong dimension after regeneration")
	}
	if len(g.Enemies) != testOpts.Enemies {
		t.Errorf("spawned %d enemies, want %d", len(g.Enemies), testOpts.Enemies)
	}
	// Player + exit + enemies, each on its own cell.
	if want := 2 + testOpts.Enemies; g.Occupants.Len() != want {
		t.Errorf("occupancy has %d entries, want %d", g.Occupants.Len(), want)
	}
}

func TestRegenerate_RelocatesLongLivedOccupants(t *testing.T) {
	g := state.NewGame(13)
	player, exit := g.Player, g.ExitGate

	if err := Regenerate(g, testOpts, generator.DefaultGenerator, nil); err != nil {
		t.Fatalf("first Regenerate error = %v", err)
	}
	firstEnemies := append([]*entities.Enemy(nil), g.Enemies...)

	if err := Regenerate(g, testOpts, generator.DefaultGenerator, nil); err != nil {
		t.Fatalf("second Regenerate error = %v", err)
	}
	if g.Player != player || g.ExitGate != exit {
		t.Error("player or exit recreated across regeneration, want same long-lived objects")
	}
	for _, old := range firstEnemies {
		for _, cur := range g.Enemies {
			if old == cur {
				t.Fatal("enemy survived regeneration, want fresh spawns")
			}
		}
	}
}

func TestRegenerate_ProjectsOntoSurface(t *testing.T) {
	g := state.NewGame(3)
	opts := testOpts
	opts.Offset = world.Position{X: 4, Y: 4}
	side := opts.Offset.X + opts.Dimension*opts.Scale
	buf := generator.NewTileBuffer(side, side)

	if err := Regenerate(g, opts, generator.DefaultGenerator, buf); err != nil {
		t.Fatalf("Regenerate error = %v", err)
	}
	// The exit cell must land on the surface as Exit tiles.
	exitPos := g.ExitGate.Pos()
	tx := opts.Offset.X + exitPos.X*opts.Scale
	ty := opts.Offset.Y + exitPos.Y*opts.Scale
	if got := buf.TileAt(tx, ty); got != world.Exit {
		t.Errorf("projected tile at exit = %v, want Exit", got)
	}
	// Spot-check a logical wall projects as Wall.
	var wall *world.Position
	g.Grid.ForEachCell(func(p world.Position, k world.CellKind) {
		if wall == nil && k == world.Wall {
			q := p
			wall = &q
		}
	})
	if wall != nil {
		wx := opts.Offset.X + wall.X*opts.Scale
		wy := opts.Offset.Y + wall.Y*opts.Scale
		if got := buf.TileAt(wx, wy); got != world.Wall {
			t.Errorf("projected tile at wall %v = %v, want Wall", *wall, got)
		}
	}
}

func TestRegenerate_SurfacesGenerationErrors(t *testing.T) {
	g := state.NewGame(1)
	bad := testOpts
	bad.Coverage = 2.0
	err := Regenerate(g, bad, generator.DefaultGenerator, nil)
	if err == nil {
		t.Fatal("Regenerate with coverage 2.0 error = nil, want validation error")
	}
}

func TestRegenerate_DeterministicUnderSeed(t *testing.T) {
	a := state.NewGame(77)
	b := state.NewGame(77)
	if err := Regenerate(a, testOpts, generator.DefaultGenerator, nil); err != nil {
		t.Fatalf("Regenerate(a) error = %v", err)
	}
	if err := Regenerate(b, testOpts, generator.DefaultGenerator, nil); err != nil {
		t.Fatalf("Regenerate(b) error = %v", err)
	}
	if a.Player.Pos() != b.Player.Pos() {
		t.Errorf("player position differs under same seed: %v vs %v", a.Player.Pos(), b.Player.Pos())
	}
	if a.ExitGate.Pos() != b.ExitGate.Pos() {
		t.Errorf("exit position differs under same seed: %v vs %v", a.ExitGate.Pos(), b.ExitGate.Pos())
	}
	for i := range a.Enemies {
		if a.Enemies[i].Pos() != b.Enemies[i].Pos() {
			t.Errorf("enemy %d position differs under same seed", i)
		}
	}
}

func TestAdvanceLevel_AddsAnEnemy(t *testing.T) {
	g := state.NewGame(5)
	opts := testOpts
	if err := Regenerate(g, opts, generator.DefaultGenerator, nil); err != nil {
		t.Fatalf("Regenerate error = %v", err)
	}
	next, err := AdvanceLevel(g, opts, generator.DefaultGenerator, nil)
	if err != nil {
		t.Fatalf("AdvanceLevel error = %v", err)
	}
	if g.Level != 2 {
		t.Errorf("Level = %d after advancing, want 2", g.Level)
	}
	if next.Enemies != opts.Enemies+1 {
		t.Errorf("next options spawn %d enemies, want %d", next.Enemies, opts.Enemies+1)
	}
	if len(g.Enemies) != opts.Enemies+1 {
		t.Errorf("roster has %d enemies after advancing, want %d", len(g.Enemies), opts.Enemies+1)
	}
}

func TestRegenerate_TimeoutIsRecoverable(t *testing.T) {
	// Directly exercise the generator's step bound through the lifecycle
	// error path.
	g := state.NewGame(2)
	_, err := generator.DefaultGenerator.Generate(generator.Config{
		Dimension: 15, Coverage: 1.0, Scale: 1, MaxSteps: 5,
	}, g.Rand)
	if !errors.Is(err, generator.ErrGenerationTimeout) {
		t.Fatalf("error = %v, want ErrGenerationTimeout", err)
	}
	// A retry with a sane bound succeeds on the same rand stream.
	if err := Regenerate(g, testOpts, generator.DefaultGenerator, nil); err != nil {
		t.Errorf("retry after timeout error = %v, want nil", err)
	}
}
