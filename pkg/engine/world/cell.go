// Package world provides generic 2D grid-based arena primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// CellKind is the terrain type of a single grid cell.
type CellKind uint8

// Cell kinds
const (
	Wall CellKind = iota
	Empty
	Exit
)

// String returns the string representation of a cell kind
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Empty:
		return "Empty"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Walkable returns true for cell kinds an actor may stand on.
func (k CellKind) Walkable() bool {
	return k == Empty || k == Exit
}

// Position is a (column, row) coordinate on the logical grid.
// It is a comparable struct and doubles as the exact occupancy-map key:
// two positions collide only when they are the same cell.
type Position struct {
	X int
	Y int
}

// Step returns the position one cell away in the given direction.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}
