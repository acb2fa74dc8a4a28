package entities

import "fmt"

// EffectTarget is the narrow slice of a creature that effects act on.
type EffectTarget interface {
	Hurt(damage int)
	Heal(amount int)
	Alive() bool
}

// StatusEffect is a minor capability attached to creatures: it can describe
// itself, apply one tick, and merge with another instance of its own kind.
type StatusEffect interface {
	Describe() string
	// Tick applies one turn's worth of the effect and reports whether the
	// effect is still active afterwards.
	Tick(target EffectTarget) bool
	// Merge folds another instance of the same kind into this one and
	// reports whether the merge happened.
	Merge(other StatusEffect) bool
}

// AddEffect attaches an effect, merging it into an existing instance of the
// same kind when possible.
func (c *creatureCore) AddEffect(e StatusEffect) {
	for _, existing := range c.effects {
		if existing.Merge(e) {
			return
		}
	}
	c.effects = append(c.effects, e)
}

// TickEffects applies one tick of every attached effect and drops the
// expired ones.
func (c *creatureCore) TickEffects() {
	active := c.effects[:0]
	for _, e := range c.effects {
		if e.Tick(c) {
			active = append(active, e)
		}
	}
	c.effects = active
}

// Effects returns descriptions of the currently attached effects.
func (c *creatureCore) Effects() []string {
	var out []string
	for _, e := range c.effects {
		out = append(out, e.Describe())
	}
	return out
}

// Poison damages its target once per turn for a number of turns. Merging two
// poisons stacks their remaining durations.
type Poison struct {
	Damage    int
	Remaining int
}

// Describe returns a short human-readable summary.
func (p *Poison) Describe() string {
	return fmt.Sprintf("poisoned (%d damage, %d turns left)", p.Damage, p.Remaining)
}

// Tick applies one turn of poison damage.
func (p *Poison) Tick(target EffectTarget) bool {
	if p.Remaining <= 0 {
		return false
	}
	target.Hurt(p.Damage)
	p.Remaining--
	return p.Remaining > 0
}

// Merge stacks another poison's duration into this one.
func (p *Poison) Merge(other StatusEffect) bool {
	o, ok := other.(*Poison)
	if !ok {
		return false
	}
	p.Remaining += o.Remaining
	if o.Damage > p.Damage {
		p.Damage = o.Damage
	}
	return true
}

// Regeneration heals its target once per turn for a number of turns.
type Regeneration struct {
	Amount    int
	Remaining int
}

// Describe returns a short human-readable summary.
func (r *Regeneration) Describe() string {
	return fmt.Sprintf("regenerating (%d healing, %d turns left)", r.Amount, r.Remaining)
}

// Tick applies one turn of healing.
func (r *Regeneration) Tick(target EffectTarget) bool {
	if r.Remaining <= 0 {
		return false
	}
	target.Heal(r.Amount)
	r.Remaining--
	return r.Remaining > 0
}

// Merge stacks another regeneration's duration into this one.
func (r *Regeneration) Merge(other StatusEffect) bool {
	o, ok := other.(*Regeneration)
	if !ok {
		return false
	}
	r.Remaining += o.Remaining
	if o.Amount > r.Amount {
		r.Amount = o.Amount
	}
	return true
}
