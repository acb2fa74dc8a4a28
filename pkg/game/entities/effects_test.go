package entities

import (
	"math/rand"
	"testing"

	"cavearena/pkg/engine/world"
)

func TestPoison_TicksAndExpires(t *testing.T) {
	e := NewEnemy("rat", Wanderer{})
	start := e.HP()
	e.AddEffect(&Poison{Damage: 1, Remaining: 2})

	e.TickEffects()
	if e.HP() != start-1 {
		t.Errorf("after first tick HP = %d, want %d", e.HP(), start-1)
	}
	e.TickEffects()
	if e.HP() != start-2 {
		t.Errorf("after second tick HP = %d, want %d", e.HP(), start-2)
	}
	// Expired: further ticks change nothing.
	e.TickEffects()
	if e.HP() != start-2 {
		t.Errorf("after expiry HP = %d, want %d (expired poison still ticking)", e.HP(), start-2)
	}
}

// drain hurts its target every tick until it runs out. It exercises the
// EffectTarget surface the way an externally defined effect would.
type drain struct{ remaining int }

func (d *drain) Describe() string { return "drained" }

func (d *drain) Tick(target EffectTarget) bool {
	if d.remaining <= 0 || !target.Alive() {
		return false
	}
	target.Hurt(1)
	d.remaining--
	return d.remaining > 0
}

func (d *drain) Merge(other StatusEffect) bool { return false }

func TestTickEffects_DrivesExternallyDefinedEffect(t *testing.T) {
	p := NewPlayer()
	start := p.HP()
	p.AddEffect(&drain{remaining: 1})
	p.TickEffects()
	if p.HP() != start-1 {
		t.Errorf("drain tick left HP = %d, want %d", p.HP(), start-1)
	}
	if got := len(p.Effects()); got != 0 {
		t.Errorf("expired drain still attached, %d effects, want 0", got)
	}
}

func TestAddEffect_MergesSameKind(t *testing.T) {
	p := NewPlayer()
	p.AddEffect(&Poison{Damage: 1, Remaining: 2})
	p.AddEffect(&Poison{Damage: 2, Remaining: 3})

	if got := len(p.Effects()); got != 1 {
		t.Fatalf("after merging two poisons, %d effects attached, want 1", got)
	}
	// Merged poison: damage 2, remaining 5.
	start := p.HP()
	p.TickEffects()
	if p.HP() != start-2 {
		t.Errorf("merged poison tick dealt %d damage, want 2", start-p.HP())
	}
}

func TestAddEffect_DifferentKindsDoNotMerge(t *testing.T) {
	p := NewPlayer()
	p.AddEffect(&Poison{Damage: 1, Remaining: 1})
	p.AddEffect(&Regeneration{Amount: 1, Remaining: 1})
	if got := len(p.Effects()); got != 2 {
		t.Errorf("poison + regeneration: %d effects attached, want 2", got)
	}
}

func TestRegeneration_HealClampsAtMax(t *testing.T) {
	p := NewPlayer()
	p.Hurt(1)
	p.AddEffect(&Regeneration{Amount: 5, Remaining: 2})
	p.TickEffects()
	if p.HP() != p.MaxHP() {
		t.Errorf("HP = %d after regeneration, want max %d", p.HP(), p.MaxHP())
	}
}

func TestStalker_StepsTowardPlayer(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	cases := []struct {
		self, player world.Position
		want         world.Direction
	}{
		{world.Position{X: 0, Y: 0}, world.Position{X: 5, Y: 0}, world.East},
		{world.Position{X: 5, Y: 0}, world.Position{X: 0, Y: 0}, world.West},
		{world.Position{X: 0, Y: 0}, world.Position{X: 1, Y: 5}, world.South},
		{world.Position{X: 0, Y: 5}, world.Position{X: 1, Y: 0}, world.North},
	}
	for _, c := range cases {
		if got := (Stalker{}).Choose(rng, c.self, c.player); got != c.want {
			t.Errorf("Stalker.Choose(%v -> %v) = %v, want %v", c.self, c.player, got, c.want)
		}
	}
}

func TestWanderer_ReturnsValidDirection(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		if d := (Wanderer{}).Choose(rng, world.Position{}, world.Position{}); !d.IsValid() {
			t.Fatalf("Wanderer returned invalid direction %v", d)
		}
	}
}
