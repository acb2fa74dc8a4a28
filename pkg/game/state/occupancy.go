// Package state holds the mutable battle-arena state: the grid occupancy
// index and the game container.
package state

import (
	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
)

// Occupancy is the sparse index from grid position to occupant; the single
// source of truth for "what occupies this cell". Positions are exact map
// keys, so two positions share an entry only when they are the same cell.
//
// Invariant: for every placed entity e, At(e.Pos()) == e, and no other key
// maps to e. Every mutator that moves an entity must go through Move.
type Occupancy struct {
	byPos map[world.Position]entities.Entity
}

// NewOccupancy creates an empty index.
func NewOccupancy() *Occupancy {
	return &Occupancy{byPos: make(map[world.Position]entities.Entity)}
}

// Insert registers e at p, replacing any previous occupant of that cell.
func (o *Occupancy) Insert(p world.Position, e entities.Entity) {
	o.byPos[p] = e
}

// Remove clears the cell at p.
func (o *Occupancy) Remove(p world.Position) {
	delete(o.byPos, p)
}

// At returns the occupant of p, if any.
func (o *Occupancy) At(p world.Position) (entities.Entity, bool) {
	e, ok := o.byPos[p]
	return e, ok
}

// Move re-indexes e from one cell to another. A move onto the same cell is a
// no-op. The caller updates e's own position; Move only maintains the index.
func (o *Occupancy) Move(e entities.Entity, from, to world.Position) {
	if from == to {
		return
	}
	delete(o.byPos, from)
	o.byPos[to] = e
}

// Reset drops every entry.
func (o *Occupancy) Reset() {
	o.byPos = make(map[world.Position]entities.Entity)
}

// Len returns the number of occupied cells.
func (o *Occupancy) Len() int {
	return len(o.byPos)
}

// Each calls fn for every occupied cell.
func (o *Occupancy) Each(fn func(p world.Position, e entities.Entity)) {
	for p, e := range o.byPos {
		fn(p, e)
	}
}
