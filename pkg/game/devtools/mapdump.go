// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// cellSymbol returns the single-character symbol for a cell (no occupant overlay).
func cellSymbol(g *state.Game, p world.Position) rune {
	switch g.Grid.KindAt(p) {
	case world.Wall:
		return '#'
	case world.Exit:
		return 'E'
	}
	if g.Grid.Blocked(p) {
		// Empty but unenterable under the fattened wall rule.
		return ','
	}
	if g.Spores.Has(p) {
		return '%'
	}
	return '.'
}

// writeMapGrid writes the grid to f with the occupant overlay.
func writeMapGrid(f *os.File, g *state.Game) {
	dim := g.Grid.Dim()
	for y := 0; y < dim; y++ {
		for x := 0; x < dim; x++ {
			p := world.Position{X: x, Y: y}
			if occ, ok := g.Occupants.At(p); ok {
				switch occ.(type) {
				case *entities.Player:
					fmt.Fprint(f, "@")
					continue
				case *entities.Enemy:
					fmt.Fprint(f, "e")
					continue
				case *entities.ExitMarker:
					fmt.Fprint(f, "E")
					continue
				}
			}
			fmt.Fprintf(f, "%c", cellSymbol(g, p))
		}
		fmt.Fprintln(f)
	}
}

// DumpMapToFile writes a full debug dump to map.txt: metadata, legend, the
// arena with occupants, and a detailed enemy list. Format is human- and
// LLM-readable (sections, key: value, consistent structure).
func DumpMapToFile(g *state.Game) (string, error) {
	if g.Grid == nil {
		return "", fmt.Errorf("no grid")
	}

	absPath, err := filepath.Abs(mapDumpFilename)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	dim := g.Grid.Dim()
	pp := g.Player.Pos()
	ep := g.ExitGate.Pos()

	fmt.Fprintln(f, "=== ARENA DUMP DEBUG (layout, occupants) ===")
	fmt.Fprintln(f, "")
	fmt.Fprintln(f, "--- Metadata ---")
	fmt.Fprintf(f, "level: %d\n", g.Level)
	fmt.Fprintf(f, "grid_dim: %d\n", dim)
	fmt.Fprintf(f, "coordinate_system: x,y (0-based, x=horizontal, y=vertical)\n")
	fmt.Fprintf(f, "player_cell: %d,%d\n", pp.X, pp.Y)
	fmt.Fprintf(f, "player_hp: %d/%d\n", g.Player.HP(), g.Player.MaxHP())
	fmt.Fprintf(f, "exit_cell: %d,%d\n", ep.X, ep.Y)
	fmt.Fprintf(f, "empty_cells: %d\n", g.Grid.CountKind(world.Empty))
	fmt.Fprintf(f, "enemies: %d\n", len(g.Enemies))
	fmt.Fprintf(f, "game_over: %v\n", g.Over)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Legend (cell symbols) ---")
	fmt.Fprintln(f, "#: wall")
	fmt.Fprintln(f, ".: floor")
	fmt.Fprintln(f, ",: floor, blocked by an adjacent diagonal wall")
	fmt.Fprintln(f, "%: toxic spores")
	fmt.Fprintln(f, "E: exit")
	fmt.Fprintln(f, "@: player")
	fmt.Fprintln(f, "e: enemy")
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Arena ---")
	writeMapGrid(f, g)
	fmt.Fprintln(f, "")

	fmt.Fprintln(f, "--- Enemies ---")
	byPos := make([]*entities.Enemy, len(g.Enemies))
	copy(byPos, g.Enemies)
	sort.Slice(byPos, func(i, j int) bool {
		a, b := byPos[i].Pos(), byPos[j].Pos()
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	for _, enemy := range byPos {
		p := enemy.Pos()
		fmt.Fprintf(f, "%s: cell=%d,%d hp=%d/%d power=%d\n",
			enemy.Name(), p.X, p.Y, enemy.HP(), enemy.MaxHP(), enemy.Power())
	}

	return absPath, nil
}
