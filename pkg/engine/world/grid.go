package world

import "fmt"

// diagonals are the four diagonal neighbor offsets used by the fattened
// blocking rule.
var diagonals = [4]Position{
	{X: -1, Y: -1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: 1, Y: 1},
}

// Grid is a square logical arena of D×D cells. It is mutated only during
// generation and placement; afterwards actors read it through KindAt and
// Blocked.
type Grid struct {
	dim   int
	cells []CellKind
}

// NewGrid creates a dim×dim grid with every cell set to Wall.
func NewGrid(dim int) (*Grid, error) {
	if dim < 3 {
		return nil, fmt.Errorf("grid dimension must be at least 3, got %d", dim)
	}
	return &Grid{
		dim:   dim,
		cells: make([]CellKind, dim*dim),
	}, nil
}

// Dim returns the grid dimension.
func (g *Grid) Dim() int {
	return g.dim
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.dim && p.Y >= 0 && p.Y < g.dim
}

// Interior checks if a position is inside the grid without touching the
// border (a 1-cell margin on every side).
func (g *Grid) Interior(p Position) bool {
	return p.X >= 1 && p.X < g.dim-1 && p.Y >= 1 && p.Y < g.dim-1
}

// KindAt returns the cell kind at p. Out-of-bounds positions read as Wall.
func (g *Grid) KindAt(p Position) CellKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Y*g.dim+p.X]
}

// SetKind sets the cell kind at p. Returns false if out of bounds.
func (g *Grid) SetKind(p Position, k CellKind) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells[p.Y*g.dim+p.X] = k
	return true
}

// IsWall returns true when the cell at p is Wall (or out of bounds).
func (g *Grid) IsWall(p Position) bool {
	return g.KindAt(p) == Wall
}

// Blocked reports whether p is illegal for actors under the fattened wall
// rule: the cell itself, or any of its 4 diagonal neighbors, is Wall. This
// keeps actors and paths one cell away from true wall cells.
func (g *Grid) Blocked(p Position) bool {
	if g.IsWall(p) {
		return true
	}
	for _, d := range diagonals {
		if g.IsWall(Position{X: p.X + d.X, Y: p.Y + d.Y}) {
			return true
		}
	}
	return false
}

// CountKind returns the number of cells of the given kind.
func (g *Grid) CountKind(k CellKind) int {
	n := 0
	for _, c := range g.cells {
		if c == k {
			n++
		}
	}
	return n
}

// ForEachCell iterates over all cells in the grid, calling the provided
// function for each.
func (g *Grid) ForEachCell(fn func(p Position, k CellKind)) {
	for y := 0; y < g.dim; y++ {
		for x := 0; x < g.dim; x++ {
			p := Position{X: x, Y: y}
			fn(p, g.cells[p.Y*g.dim+p.X])
		}
	}
}
