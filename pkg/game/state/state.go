package state

import (
	"math/rand"

	"cavearena/pkg/engine/world"
	"cavearena/pkg/game/entities"
	gameworld "cavearena/pkg/game/world"
)

// Game represents the state of one battle-arena run. The grid and the
// occupancy index are owned exclusively by the gameplay core; frontends only
// read them.
type Game struct {
	Grid      *world.Grid
	Occupants *Occupancy

	// Player and ExitGate are long-lived: regeneration relocates them onto
	// the new grid instead of recreating them.
	Player   *entities.Player
	ExitGate *entities.ExitMarker

	// Enemies in spawn order. Iteration order during the enemy phase is an
	// observable contract: it decides which enemy claims a contested cell.
	Enemies []*entities.Enemy

	// Spores is the toxic terrain overlay, reseeded with each arena.
	Spores *gameworld.SporeField

	// Rand is the explicit random source threaded through generation and
	// placement; a fixed seed makes a run deterministic.
	Rand *rand.Rand

	Messages []string

	Level int
	Over  bool
	Won   bool

	// Notifications consumed by the presentation layer.
	OnMapGenerated    func()
	OnEnemyPhaseEnded func()
}

// NewGame creates a new game instance seeded with the given value.
func NewGame(seed int64) *Game {
	return &Game{
		Occupants: NewOccupancy(),
		Player:    entities.NewPlayer(),
		ExitGate:  entities.NewExitMarker(),
		Spores:    gameworld.NewSporeField(),
		Rand:      rand.New(rand.NewSource(seed)),
		Messages:  make([]string, 0),
		Level:     1,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddEnemy appends an enemy to the roster and indexes it.
func (g *Game) AddEnemy(e *entities.Enemy) {
	g.Enemies = append(g.Enemies, e)
	g.Occupants.Insert(e.Pos(), e)
}

// RemoveEnemy drops an enemy from the roster and the index, preserving the
// order of the remaining enemies.
func (g *Game) RemoveEnemy(target *entities.Enemy) {
	for i, e := range g.Enemies {
		if e == target {
			g.Enemies = append(g.Enemies[:i], g.Enemies[i+1:]...)
			break
		}
	}
	if occ, ok := g.Occupants.At(target.Pos()); ok && occ == entities.Entity(target) {
		g.Occupants.Remove(target.Pos())
	}
}

// ClearEnemies destroys every enemy and resets the occupancy index. The
// player and exit are re-registered by the next placement pass.
func (g *Game) ClearEnemies() {
	g.Enemies = g.Enemies[:0]
	g.Occupants.Reset()
}
