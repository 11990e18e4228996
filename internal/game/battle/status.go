package battle

import (
	"fmt"

	"github.com/tmwork1/jpoke/internal/model"
)

// Primary status names.
const (
	StatusPoison    = "poison"
	StatusToxic     = "toxic"
	StatusParalysis = "paralysis"
	StatusBurn      = "burn"
	StatusSleep     = "sleep"
	StatusFreeze    = "freeze"
)

// statusImmunity lists the types that can never receive a status.
var statusImmunity = map[string][]string{
	StatusPoison:    {"poison", "steel"},
	StatusToxic:     {"poison", "steel"},
	StatusParalysis: {"electric"},
	StatusBurn:      {"fire"},
	StatusFreeze:    {"ice"},
}

// InflictStatus gives target a primary status. It fails when the target
// already has one, is type-immune, or a handler vetoes EventTryStatus.
func (b *Battle) InflictStatus(target, source *model.Combatant, status string) bool {
	if target == nil || target.Fainted() || target.Status.Name != model.StatusNone {
		return false
	}
	rec := mustLookup(KindStatus, status)
	for _, t := range statusImmunity[status] {
		if target.HasType(t) {
			return false
		}
	}
	if !b.FireBool(EventTryStatus, &Context{Source: source, Target: target, Effect: status}, true) {
		return false
	}

	counter := 0
	switch status {
	case StatusSleep:
		counter = 1 + b.rng.IntN(3)
	case StatusToxic:
		counter = 1
	}
	target.Status = model.StatusSlot{Name: status, Counter: counter}
	if b.IsActive(target) {
		b.activate(rec, target.Handle)
	}
	b.Log(target.Handle, status, fmt.Sprintf("%s is afflicted with %s", target.Name(), status))
	return true
}

// CureStatus clears the primary status of c.
func (b *Battle) CureStatus(c *model.Combatant) bool {
	if c.Status.Name == model.StatusNone {
		return false
	}
	prev := c.Status.Name
	b.deactivate(mustLookup(KindStatus, prev), c.Handle)
	c.Status = model.StatusSlot{Name: model.StatusNone}
	b.Log(c.Handle, prev, c.Name()+" was cured of "+prev)
	return true
}

// AddVolatile attaches a volatile condition to an active combatant.
func (b *Battle) AddVolatile(c *model.Combatant, name string, counter int, source *model.Combatant) bool {
	if c == nil || c.Fainted() || c.HasVolatile(name) || !b.IsActive(c) {
		return false
	}
	rec := mustLookup(KindVolatile, name)
	v := &model.Volatile{Counter: counter, Source: c.Handle}
	if source != nil {
		v.Source = source.Handle
	}
	c.Volatiles[name] = v
	b.activate(rec, c.Handle)
	if !rec.HasFlag(flagSilent) {
		b.Log(c.Handle, name, c.Name()+" is affected by "+name)
	}
	return true
}

// RemoveVolatile detaches a volatile condition.
func (b *Battle) RemoveVolatile(c *model.Combatant, name string) bool {
	if !c.HasVolatile(name) {
		return false
	}
	rec := mustLookup(KindVolatile, name)
	b.deactivate(rec, c.Handle)
	delete(c.Volatiles, name)
	if !rec.HasFlag(flagSilent) {
		b.Log(c.Handle, name, name+" wore off "+c.Name())
	}
	return true
}

func (b *Battle) clearVolatiles(c *model.Combatant) {
	for _, name := range c.VolatileNames() {
		b.deactivate(mustLookup(KindVolatile, name), c.Handle)
		delete(c.Volatiles, name)
	}
}

// BoostStage changes a stage of target by delta after EventTryStatChange
// had its say, and returns the delta actually applied.
func (b *Battle) BoostStage(target, source *model.Combatant, stage model.Stage, delta int) int {
	if target == nil || target.Fainted() || delta == 0 {
		return 0
	}
	ctx := &Context{Source: source, Target: target, Effect: stage.String()}
	delta = b.FireInt(EventTryStatChange, ctx, delta)
	if delta == 0 {
		return 0
	}
	applied := target.AddStage(stage, delta)
	switch {
	case applied > 0:
		b.logf(target, "%s's %s rose by %d", target.Name(), stage, applied)
	case applied < 0:
		b.logf(target, "%s's %s fell by %d", target.Name(), stage, -applied)
	default:
		b.logf(target, "%s's %s won't go any further", target.Name(), stage)
	}
	return applied
}

// ChipDamage removes HP outside of a direct hit (residuals, recoil,
// hazards) and returns the amount removed.
func (b *Battle) ChipDamage(c *model.Combatant, n int, cause string) int {
	if c == nil || c.Fainted() {
		return 0
	}
	n = c.Damage(max(n, 1))
	b.Log(c.Handle, cause, fmt.Sprintf("%s lost %d HP", c.Name(), n))
	b.logFaint(c)
	return n
}

// RestoreHP heals c and returns the amount restored.
func (b *Battle) RestoreHP(c *model.Combatant, n int, cause string) int {
	if c == nil {
		return 0
	}
	n = c.Heal(n)
	if n > 0 {
		b.Log(c.Handle, cause, fmt.Sprintf("%s restored %d HP", c.Name(), n))
	}
	return n
}

// Fraction returns max(1, maxHP*num/den).
func Fraction(c *model.Combatant, num, den int) int {
	return max(1, c.MaxHP()*num/den)
}

func (b *Battle) logFaint(c *model.Combatant) {
	if c.Fainted() {
		b.logf(c, "%s fainted", c.Name())
	}
}

// Grounded reports whether c is affected by terrain and ground hazards.
func (b *Battle) Grounded(c *model.Combatant) bool {
	return b.FireBool(EventGrounded, &Context{Source: c, Target: b.Foe(c)}, !c.HasType("flying"))
}
