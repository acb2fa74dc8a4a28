// Package world provides game-specific world extensions for the cave arena.
// It extends the generic engine/world primitives with cave themed overlays.
package world

import (
	"github.com/zyedidia/generic/mapset"

	"cavearena/pkg/engine/world"
)

// SporeField tracks the floor cells overgrown with toxic spores. Spores are
// terrain, not entities: they never move, never block, and poison any
// creature that ends a move on them.
type SporeField struct {
	cells mapset.Set[world.Position]
}

// NewSporeField returns an empty field.
func NewSporeField() *SporeField {
	return &SporeField{cells: mapset.New[world.Position]()}
}

// Put marks a cell as spore-covered.
func (f *SporeField) Put(p world.Position) {
	f.cells.Put(p)
}

// Has reports whether a cell is spore-covered.
func (f *SporeField) Has(p world.Position) bool {
	return f.cells.Has(p)
}

// Clear removes all spores, for arena regeneration.
func (f *SporeField) Clear() {
	f.cells = mapset.New[world.Position]()
}

// Size returns the number of spore-covered cells.
func (f *SporeField) Size() int {
	return f.cells.Size()
}

// Each calls fn for every spore-covered cell.
func (f *SporeField) Each(fn func(p world.Position)) {
	f.cells.Each(fn)
}
