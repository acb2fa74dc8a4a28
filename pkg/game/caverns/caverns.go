// Package caverns defines the fixed cavern count and the depth bands of the
// cave system. The player never sees the total; they discover the end by
// reaching the deepest cavern.
package caverns

import (
	"github.com/leonelquinteros/gotext"

	"cavearena/pkg/game/entities"
)

// Band is the depth band of a cavern.
type Band int

const (
	Shallows Band = iota // Entry caves, weak wandering enemies
	Galleries            // Mid caves, mixed rosters
	Sump                 // Deepest caves, everything hunts
)

// TotalCaverns is the fixed number of caverns in the run (never shown to player).
const TotalCaverns = 10

// IsFinalCavern returns true if the given level (1-based) is the deepest cavern.
func IsFinalCavern(level int) bool {
	return level >= TotalCaverns
}

// BandForLevel returns the depth band for the given cavern level (1-based).
func BandForLevel(level int) Band {
	switch {
	case level <= 3:
		return Shallows
	case level <= 7:
		return Galleries
	default:
		return Sump
	}
}

// spawn is one enemy kind with its behaviour.
type spawn struct {
	kind  string
	brain entities.Decision
}

// rosters maps each band to the enemy kinds that spawn there. Spawns cycle
// through the roster in order.
var rosters = map[Band][]spawn{
	Shallows: {
		{"crawler", entities.Wanderer{}},
		{"bat", entities.Wanderer{}},
	},
	Galleries: {
		{"crawler", entities.Wanderer{}},
		{"hunter", entities.Stalker{}},
	},
	Sump: {
		{"hunter", entities.Stalker{}},
		{"shade", entities.Stalker{}},
	},
}

// BrainFor returns the spawn function for a cavern level, cycling through the
// band's roster by spawn index.
func BrainFor(level int) func(i int) (string, entities.Decision) {
	roster := rosters[BandForLevel(level)]
	return func(i int) (string, entities.Decision) {
		s := roster[i%len(roster)]
		return s.kind, s.brain
	}
}

// FlavourText returns the translated descent line for a cavern level. Later
// bands use more oppressive lines. Constant keys keep vet happy.
func FlavourText(level int) string {
	switch BandForLevel(level) {
	case Galleries:
		return gotext.Get("the air grows stale")
	case Sump:
		return gotext.Get("water drips somewhere far below")
	default:
		return gotext.Get("daylight fades behind you")
	}
}
