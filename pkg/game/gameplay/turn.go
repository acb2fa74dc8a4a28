package gameplay

import (
	"cavearena/pkg/game/entities"
	"cavearena/pkg/game/state"
)

// Phase is one of the two halves of a turn.
type Phase uint8

// Turn phases
const (
	PhaseAwaitingPlayer Phase = iota
	PhaseEnemies
)

// String returns the string representation of a phase
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingPlayer:
		return "AwaitingPlayer"
	case PhaseEnemies:
		return "Enemies"
	default:
		return "Unknown"
	}
}

// TurnCoordinator sequences "player acts" → "every enemy acts" → back to
// awaiting player input. It owns the current phase and the pending counter;
// everything runs as direct synchronous calls on the caller's goroutine.
type TurnCoordinator struct {
	game    *state.Game
	phase   Phase
	pending int
}

// NewTurnCoordinator creates a coordinator awaiting the player's action.
func NewTurnCoordinator(g *state.Game) *TurnCoordinator {
	return &TurnCoordinator{game: g, phase: PhaseAwaitingPlayer}
}

// Phase returns the current phase.
func (tc *TurnCoordinator) Phase() Phase {
	return tc.phase
}

// PlayerTurnEnded starts the enemy phase: it snapshots the enemy cohort in
// spawn order, then resolves each enemy's action in sequence. The snapshot
// size seeds the pending countdown, so a phase with zero enemies resolves
// immediately instead of waiting for decrement events that never come.
func (tc *TurnCoordinator) PlayerTurnEnded() {
	if tc.phase != PhaseAwaitingPlayer {
		return
	}
	tc.game.Player.TickEffects()
	if !tc.game.Player.Alive() {
		tc.game.Over = true
		return
	}

	cohort := make([]*stateEnemy, 0, len(tc.game.Enemies))
	for _, e := range tc.game.Enemies {
		cohort = append(cohort, &stateEnemy{enemy: e})
	}

	tc.phase = PhaseEnemies
	tc.pending = len(cohort)
	if tc.pending == 0 {
		tc.endEnemyPhase()
		return
	}

	for _, entry := range cohort {
		tc.actEnemy(entry)
		tc.OneEnemyTurnEnded()
	}
}

// OneEnemyTurnEnded decrements the pending counter and closes the enemy
// phase once the whole cohort has acted.
func (tc *TurnCoordinator) OneEnemyTurnEnded() {
	if tc.phase != PhaseEnemies {
		return
	}
	tc.pending--
	if tc.pending <= 0 {
		tc.endEnemyPhase()
	}
}

func (tc *TurnCoordinator) endEnemyPhase() {
	tc.phase = PhaseAwaitingPlayer
	tc.pending = 0
	if tc.game.OnEnemyPhaseEnded != nil {
		tc.game.OnEnemyPhaseEnded()
	}
}

// stateEnemy is one cohort entry. Enemies can die mid-phase (an earlier
// enemy's poison, for example); dead entries still count down but do not act.
type stateEnemy struct {
	enemy *entities.Enemy
}

func (tc *TurnCoordinator) actEnemy(entry *stateEnemy) {
	e := entry.enemy
	if !e.Alive() {
		return
	}
	e.TickEffects()
	if !e.Alive() {
		tc.game.RemoveEnemy(e)
		return
	}

	dir := e.Brain.Choose(tc.game.Rand, e.Pos(), tc.game.Player.Pos())
	out, err := ResolveAction(tc.game, e, dir)
	if err != nil {
		// A brain returning a non-cardinal direction forfeits the turn.
		return
	}
	if out.Kind == OutcomeAttack {
		Attack(tc.game, e, out.Target)
	}
}
