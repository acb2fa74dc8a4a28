package entities

import (
	"math/rand"

	"cavearena/pkg/engine/world"
)

// Decision chooses a direction for an enemy's turn. Implementations are
// opaque to the turn machinery; only the returned direction matters.
type Decision interface {
	Choose(rng *rand.Rand, self, player world.Position) world.Direction
}

// Wanderer picks a uniformly random cardinal direction.
type Wanderer struct{}

// Choose returns a random direction.
func (Wanderer) Choose(rng *rand.Rand, _, _ world.Position) world.Direction {
	return world.Direction(rng.Intn(4))
}

// Stalker steps greedily toward the player, preferring the axis with the
// larger gap. It does not path around walls; a blocked step is just a bump.
type Stalker struct{}

// Choose returns the direction that closes the larger axis gap to the player.
func (Stalker) Choose(rng *rand.Rand, self, player world.Position) world.Direction {
	dx := player.X - self.X
	dy := player.Y - self.Y
	if dx == 0 && dy == 0 {
		return world.Direction(rng.Intn(4))
	}
	if abs(dx) >= abs(dy) && dx != 0 {
		if dx > 0 {
			return world.East
		}
		return world.West
	}
	if dy > 0 {
		return world.South
	}
	return world.North
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
