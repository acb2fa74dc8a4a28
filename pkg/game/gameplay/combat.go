package gameplay

import (
	"fmt"

	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

// Attack applies one attack from attacker to target: the attacker's power in
// damage, removal of dead enemies from the roster and the occupancy index,
// and the game-over flag when the player dies.
func Attack(g *state.Game, attacker, target entities.Creature) {
	target.Hurt(attacker.Power())
	g.AddMessage(fmt.Sprintf("%s hit %s for %d damage", attacker.Name(), target.Name(), attacker.Power()))

	if target.Alive() {
		return
	}

	switch dead := target.(type) {
	case *entities.Enemy:
		g.RemoveEnemy(dead)
		g.AddMessage(fmt.Sprintf("the %s dies", dead.Name()))
	case *entities.Player:
		g.Over = true
		g.AddMessage("you die")
	}
}
