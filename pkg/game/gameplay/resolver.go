// Package gameplay provides core game logic: action resolution, combat
// application, turn sequencing, and the level lifecycle.
package gameplay

import (
	"errors"
	"fmt"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

// ErrInvalidDirection rejects directions outside the 4 cardinal unit vectors
// before they reach resolution.
var ErrInvalidDirection = errors.New("direction is not a cardinal unit vector")

// OutcomeKind classifies the result of resolving one action.
type OutcomeKind uint8

// Action outcomes
const (
	OutcomeBump OutcomeKind = iota
	OutcomeMoved
	OutcomeAttack
	OutcomeExit
)

// String returns the string representation of an outcome kind
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeBump:
		return "Bump"
	case OutcomeMoved:
		return "Moved"
	case OutcomeAttack:
		return "Attack"
	case OutcomeExit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// Outcome is the result of one resolved action. Target is set only for
// OutcomeAttack.
type Outcome struct {
	Kind   OutcomeKind
	Target entities.Creature
}

// ResolveAction resolves one step of actor in the given direction against
// the grid and the occupancy index. It classifies the contact: bump on a
// blocked cell or a same-faction creature, attack on an other-faction
// creature, exit trigger on the exit marker. When the destination is free it
// performs the move itself, keeping the index consistent with the actor's
// position and applying spore terrain to the arriving creature. Applying
// attack damage and the exit transition is the caller's job.
func ResolveAction(g *state.Game, actor entities.Creature, dir world.Direction) (Outcome, error) {
	if !dir.IsValid() {
		return Outcome{}, ErrInvalidDirection
	}

	src := actor.Pos()
	dest := src.Step(dir)

	if g.Grid.Blocked(dest) {
		return Outcome{Kind: OutcomeBump}, nil
	}

	if occ, ok := g.Occupants.At(dest); ok {
		switch other := occ.(type) {
		case *entities.ExitMarker:
			return Outcome{Kind: OutcomeExit}, nil
		case *entities.Player:
			return contactOutcome(actor, other), nil
		case *entities.Enemy:
			return contactOutcome(actor, other), nil
		}
	}

	actor.SetPos(dest)
	g.Occupants.Move(actor, src, dest)

	if g.Spores != nil && g.Spores.Has(dest) {
		actor.AddEffect(&entities.Poison{Damage: 1, Remaining: 3})
		g.AddMessage(fmt.Sprintf("spores cling to %s", actor.Name()))
	}
	return Outcome{Kind: OutcomeMoved}, nil
}

// contactOutcome decides bump-vs-attack for creature-on-creature contact.
func contactOutcome(actor, other entities.Creature) Outcome {
	if actor.Faction() == other.Faction() {
		return Outcome{Kind: OutcomeBump}
	}
	return Outcome{Kind: OutcomeAttack, Target: other}
}
