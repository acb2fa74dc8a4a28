// Package levelgen provides arena seeding utilities for placing hazards.
package levelgen

import (
	"math/rand"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/state"
)

// SporesPerCavern is the default number of spore patches seeded per arena.
const SporesPerCavern = 6

// SeedSpores scatters up to count spore patches across enterable floor cells,
// avoiding occupied cells and the player's immediate neighbourhood so a fresh
// arena never starts with the player standing in spores. Fewer patches are
// placed when the arena has too little open floor.
func SeedSpores(g *state.Game, rng *rand.Rand, count int) {
	g.Spores.Clear()
	if g.Grid == nil || count <= 0 {
		return
	}

	pp := g.Player.Pos()
	var candidates []world.Position
	g.Grid.ForEachCell(func(p world.Position, k world.CellKind) {
		if k != world.Empty || g.Grid.Blocked(p) {
			return
		}
		if _, occupied := g.Occupants.At(p); occupied {
			return
		}
		if abs(p.X-pp.X) <= 1 && abs(p.Y-pp.Y) <= 1 {
			return
		}
		candidates = append(candidates, p)
	})

	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	if count > len(candidates) {
		count = len(candidates)
	}
	for _, p := range candidates[:count] {
		g.Spores.Put(p)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
