// Package setup places the player, the exit, and enemies onto a freshly
// generated arena under spacing and occupancy constraints.
package setup

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

// ErrNoValidPlacement is returned when rejection sampling cannot find a
// qualifying cell within the attempt bound.
var ErrNoValidPlacement = errors.New("no valid placement found")

// maxAttempts bounds each rejection-sampling loop so an over-constrained
// arena surfaces an error instead of spinning forever.
const maxAttempts = 10000

// floorCells returns every non-Wall cell of the grid.
func floorCells(grid *world.Grid) []world.Position {
	var cells []world.Position
	grid.ForEachCell(func(p world.Position, k world.CellKind) {
		if k != world.Wall {
			cells = append(cells, p)
		}
	})
	return cells
}

// PlacePlayer relocates the long-lived player onto a uniformly sampled
// unblocked floor cell and registers it in the occupancy index.
func PlacePlayer(g *state.Game) error {
	floor := floorCells(g.Grid)
	if len(floor) == 0 {
		return fmt.Errorf("place player: grid has no floor cells: %w", ErrNoValidPlacement)
	}
	for attempt := 0; attempt < maxAttempts; attempt++ {
		p := floor[g.Rand.Intn(len(floor))]
		if g.Grid.Blocked(p) {
			continue
		}
		g.Player.SetPos(p)
		g.Occupants.Insert(p, g.Player)
		return nil
	}
	return fmt.Errorf("place player: %w", ErrNoValidPlacement)
}

// PlaceExitAwayFrom walks a FIFO breadth-first search from start over
// unblocked 4-neighbors and places the exit at the last dequeued cell. That
// cell approximates (but does not guarantee) the farthest reachable point;
// ties fall to enqueue order. The cell is marked Exit in the grid and the
// long-lived exit marker is registered there.
func PlaceExitAwayFrom(g *state.Game, start world.Position) {
	visited := mapset.New[world.Position]()
	visited.Put(start)
	queue := []world.Position{start}
	last := start

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		last = current

		for _, d := range world.AllDirections() {
			n := current.Step(d)
			if visited.Has(n) || g.Grid.Blocked(n) {
				continue
			}
			visited.Put(n)
			queue = append(queue, n)
		}
	}

	g.Grid.SetKind(last, world.Exit)
	g.ExitGate.SetPos(last)
	g.Occupants.Insert(last, g.ExitGate)
}

// PlaceEnemies spawns amount enemies on uniformly sampled floor cells that
// are unblocked, unoccupied, and at least minDistance BFS steps from the
// player. Each enemy gets the supplied decision capability from brainFor.
func PlaceEnemies(g *state.Game, amount, minDistance int, brainFor func(i int) (kind string, brain entities.Decision)) error {
	floor := floorCells(g.Grid)
	if len(floor) == 0 && amount > 0 {
		return fmt.Errorf("place enemies: grid has no floor cells: %w", ErrNoValidPlacement)
	}
	playerPos := g.Player.Pos()

	for i := 0; i < amount; i++ {
		placed := false
		for attempt := 0; attempt < maxAttempts; attempt++ {
			p := floor[g.Rand.Intn(len(floor))]
			if g.Grid.Blocked(p) {
				continue
			}
			if _, occupied := g.Occupants.At(p); occupied {
				continue
			}
			if DistanceCapped(g.Grid, p, playerPos, minDistance) < minDistance {
				continue
			}
			kind, brain := brainFor(i)
			e := entities.NewEnemy(kind, brain)
			e.SetPos(p)
			g.AddEnemy(e)
			placed = true
			break
		}
		if !placed {
			return fmt.Errorf("place enemies: enemy %d of %d: %w", i+1, amount, ErrNoValidPlacement)
		}
	}
	return nil
}

// DistanceCapped runs a level-order breadth-first search from a over
// unblocked 4-neighbors and returns the depth at which b is dequeued. The
// search gives up after maxCap levels and returns maxCap exactly, as an
// upper-bound stand-in rather than the true distance; callers compare the
// result against the same threshold used as the cap.
func DistanceCapped(grid *world.Grid, a, b world.Position, maxCap int) int {
	if a == b {
		return 0
	}

	visited := mapset.New[world.Position]()
	visited.Put(a)
	frontier := []world.Position{a}

	for depth := 1; depth <= maxCap; depth++ {
		var next []world.Position
		for _, current := range frontier {
			for _, d := range world.AllDirections() {
				n := current.Step(d)
				if visited.Has(n) || grid.Blocked(n) {
					continue
				}
				if n == b {
					return depth
				}
				visited.Put(n)
				next = append(next, n)
			}
		}
		if len(next) == 0 {
			break
		}
		frontier = next
	}
	return maxCap
}
