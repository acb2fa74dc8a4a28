package renderer

import (
	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

// Icon constants shared by the rendering backends
const (
	IconPlayer = "@"
	IconWall   = "▒"
	IconFloor  = "·"
	IconExit   = "△"
	IconSpores = "%"
	IconVoid   = " "
)

// Glyph returns the unstyled single-cell glyph for a grid position,
// occupants first. Enemies render as the first letter of their kind.
func Glyph(g *state.Game, p world.Position) string {
	if e, ok := g.Occupants.At(p); ok {
		switch occ := e.(type) {
		case *entities.Player:
			return IconPlayer
		case *entities.Enemy:
			name := occ.Name()
			if name == "" {
				return "?"
			}
			return string([]rune(name)[0])
		case *entities.ExitMarker:
			return IconExit
		}
	}

	if g.Spores != nil && g.Spores.Has(p) {
		return IconSpores
	}

	switch g.Grid.KindAt(p) {
	case world.Wall:
		return IconWall
	case world.Exit:
		return IconExit
	case world.Empty:
		return IconFloor
	}
	return IconVoid
}

// GlyphStyle returns the style that should be applied to a glyph.
func GlyphStyle(g *state.Game, p world.Position) TextStyle {
	if e, ok := g.Occupants.At(p); ok {
		switch e.(type) {
		case *entities.Player:
			return StylePlayer
		case *entities.Enemy:
			return StyleEnemy
		case *entities.ExitMarker:
			return StyleExit
		}
	}

	if g.Spores != nil && g.Spores.Has(p) {
		return StyleDenied
	}

	switch g.Grid.KindAt(p) {
	case world.Wall:
		return StyleWall
	case world.Exit:
		return StyleExit
	}
	return StyleFloor
}
