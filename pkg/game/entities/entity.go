// Package entities defines the occupants of the battle arena: the player,
// enemies, and the exit marker.
package entities

import "cavearena/pkg/engine/world"

// Faction groups creatures for the bump-vs-attack decision on contact.
type Faction int

// Factions
const (
	FactionPlayer Faction = iota
	FactionEnemy
)

// String returns the string representation of a faction
func (f Faction) String() string {
	switch f {
	case FactionPlayer:
		return "Player"
	case FactionEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Entity is anything that can occupy a grid cell. The variant set is closed:
// *Player, *Enemy, and *ExitMarker.
type Entity interface {
	Pos() world.Position
	SetPos(world.Position)
}

// Creature is an entity that takes turns and can fight: the player or an
// enemy. The exit marker is not a creature.
type Creature interface {
	Entity
	Name() string
	Faction() Faction
	Power() int
	Hurt(damage int)
	Heal(amount int)
	Alive() bool
	AddEffect(e StatusEffect)
	TickEffects()
}

// creatureCore carries the state shared by player and enemies.
type creatureCore struct {
	pos     world.Position
	hp      int
	maxHP   int
	power   int
	effects []StatusEffect
}

func (c *creatureCore) Pos() world.Position {
	return c.pos
}

func (c *creatureCore) SetPos(p world.Position) {
	c.pos = p
}

// HP returns the creature's current hit points.
func (c *creatureCore) HP() int {
	return c.hp
}

// MaxHP returns the creature's maximum hit points.
func (c *creatureCore) MaxHP() int {
	return c.maxHP
}

// Power returns the damage dealt by one of this creature's attacks.
func (c *creatureCore) Power() int {
	return c.power
}

// Hurt reduces hit points, clamping at zero.
func (c *creatureCore) Hurt(damage int) {
	c.hp -= damage
	if c.hp < 0 {
		c.hp = 0
	}
}

// Heal restores hit points, clamping at the maximum.
func (c *creatureCore) Heal(amount int) {
	c.hp += amount
	if c.hp > c.maxHP {
		c.hp = c.maxHP
	}
}

// Alive returns true while the creature has hit points left.
func (c *creatureCore) Alive() bool {
	return c.hp > 0
}

// Player is the long-lived player creature. It is relocated onto each new
// arena rather than recreated.
type Player struct {
	creatureCore
}

// NewPlayer creates the player
func NewPlayer() *Player {
	return &Player{creatureCore: creatureCore{hp: 20, maxHP: 20, power: 4}}
}

// Name returns the player's display name.
func (p *Player) Name() string {
	return "you"
}

// Faction returns FactionPlayer.
func (p *Player) Faction() Faction {
	return FactionPlayer
}

// Enemy is a hostile creature. Its turn direction comes from its Brain.
type Enemy struct {
	creatureCore
	kind  string
	Brain Decision
}

// NewEnemy creates an enemy of the given kind with the given decision
// capability.
func NewEnemy(kind string, brain Decision) *Enemy {
	return &Enemy{
		creatureCore: creatureCore{hp: 6, maxHP: 6, power: 2},
		kind:         kind,
		Brain:        brain,
	}
}

// Name returns the enemy's display name.
func (e *Enemy) Name() string {
	return e.kind
}

// Faction returns FactionEnemy.
func (e *Enemy) Faction() Faction {
	return FactionEnemy
}

// ExitMarker is the inert exit occupant: a trigger target, not a combatant.
// Like the player it is long-lived and relocated on each generation.
type ExitMarker struct {
	pos world.Position
}

// NewExitMarker creates the exit marker
func NewExitMarker() *ExitMarker {
	return &ExitMarker{}
}

func (m *ExitMarker) Pos() world.Position {
	return m.pos
}

func (m *ExitMarker) SetPos(p world.Position) {
	m.pos = p
}
