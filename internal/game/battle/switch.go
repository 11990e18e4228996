package battle

import (
	"fmt"

	"github.com/tmwork1/jpoke/internal/model"
)

// SwitchIn puts roster slot of player p on the field. The player must have
// no active; a second active is an invariant violation.
func (b *Battle) SwitchIn(p, slot int) {
	pl := b.players[p]
	if pl.Active >= 0 {
		panic(&model.InvariantError{Op: "SwitchIn",
			Detail: fmt.Sprintf("player %d already has %s active", p+1, pl.ActiveCombatant().Name())})
	}
	if !pl.IsSelected(slot) || pl.Roster[slot].Fainted() {
		panic(&model.InvariantError{Op: "SwitchIn",
			Detail: fmt.Sprintf("player %d slot %d cannot enter", p+1, slot)})
	}

	b.enter(p, slot)
	b.announce(pl.Roster[slot])
}

// enter places a combatant on the field and registers its handlers.
func (b *Battle) enter(p, slot int) {
	pl := b.players[p]
	c := pl.Roster[slot]
	pl.Active = slot
	c.TurnsActive = 1
	b.logf(c, "%s sent out %s", pl.Name, c.Name())
	b.activateCombatant(c)
}

// announce fires the entry event for a combatant already on the field.
func (b *Battle) announce(c *model.Combatant) {
	if c == nil || c.Fainted() || !b.IsActive(c) {
		return
	}
	b.FireAction(EventSwitchIn, &Context{Source: c, Target: b.Foe(c)})
}

// SwitchOut removes the active of player p from the field. Volatiles and
// stages do not survive the bench.
func (b *Battle) SwitchOut(p int) {
	pl := b.players[p]
	c := pl.ActiveCombatant()
	if c == nil {
		panic(&model.InvariantError{Op: "SwitchOut", Detail: fmt.Sprintf("player %d has no active", p+1)})
	}
	if !c.Fainted() {
		b.FireAction(EventSwitchOut, &Context{Source: c, Target: b.Foe(c)})
		b.logf(c, "%s withdrew %s", pl.Name, c.Name())
	}

	b.deactivateCombatant(c)
	b.clearVolatiles(c)
	c.ResetStages()
	if c.Status.Name == StatusToxic {
		c.Status.Counter = 1
	}
	c.Flags.SwitchedOut = true
	pl.Active = -1
}

// Switch performs a voluntary switch of player p to slot. A trapped active
// stays in and the switch fails.
func (b *Battle) Switch(p, slot int) bool {
	c := b.Active(p)
	if c == nil {
		return false
	}
	if !b.FireBool(EventTrapCheck, &Context{Source: c, Target: b.Foe(c)}, true) {
		b.logf(c, "%s can't escape", c.Name())
		return false
	}
	b.SwitchOut(p)
	b.SwitchIn(p, slot)
	return true
}

// activateCombatant registers the ability, item and status handlers of a
// combatant entering the field.
func (b *Battle) activateCombatant(c *model.Combatant) {
	for _, rec := range b.combatantRecords(c) {
		b.activate(rec, c.Handle)
	}
}

func (b *Battle) deactivateCombatant(c *model.Combatant) {
	for _, rec := range b.combatantRecords(c) {
		b.deactivate(rec, c.Handle)
	}
}

func (b *Battle) combatantRecords(c *model.Combatant) []*EffectRecord {
	recs := make([]*EffectRecord, 0, 3)
	if c.Ability != "" {
		recs = append(recs, mustLookup(KindAbility, c.Ability))
	}
	if c.Item != "" {
		recs = append(recs, mustLookup(KindItem, c.Item))
	}
	return append(recs, mustLookup(KindStatus, c.Status.Name))
}

// ConsumeItem removes the held item of an active combatant for the rest of
// the battle.
func (b *Battle) ConsumeItem(c *model.Combatant) {
	if c.Item == "" {
		return
	}
	b.deactivate(mustLookup(KindItem, c.Item), c.Handle)
	b.Log(c.Handle, c.Item, c.Name()+" used up its "+c.Item)
	c.Item = ""
	c.ItemRevealed = true
}
