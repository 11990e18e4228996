package battle

import (
	"fmt"

	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

// MoveStruggle is the fallback move used when no move has PP left.
const MoveStruggle = "struggle"

// ActiveMove is one use of a move: its static definition plus the
// per-use state the pipeline and handlers read.
type ActiveMove struct {
	Name     string
	Def      *data.MoveDef
	Record   *EffectRecord // nil when the move has no special behavior
	Type     string
	Category data.Category
	Tera     bool
	Critical bool
}

// HasFlag reports whether the move definition carries flag f.
func (m *ActiveMove) HasFlag(f string) bool {
	return m.Def.HasFlag(f)
}

// Contact reports whether the move makes contact.
func (m *ActiveMove) Contact() bool {
	return m.Def.HasFlag(data.FlagContact)
}

// NewActiveMove builds an ActiveMove by name.
func NewActiveMove(name string) (*ActiveMove, error) {
	def, err := data.Move(name)
	if err != nil {
		return nil, err
	}
	m := &ActiveMove{Name: name, Def: def, Type: def.Type, Category: def.Category}
	if rec, err := Lookup(KindMove, name); err == nil {
		m.Record = rec
	}
	return m, nil
}

// newActiveMove resolves the move a command would use, without side effects.
func (b *Battle) newActiveMove(c *model.Combatant, cmd model.Command) *ActiveMove {
	name := MoveStruggle
	if cmd.Kind != model.CmdStruggle {
		name = c.Moves[cmd.Index].Name
	}
	m, err := NewActiveMove(name)
	if err != nil {
		// Moves were validated when the battle was built.
		panic(&model.InvariantError{Op: "newActiveMove", Detail: err.Error()})
	}
	m.Tera = cmd.Kind == model.CmdTeraMove
	return m
}

func (b *Battle) movePriority(c *model.Combatant, m *ActiveMove) int {
	return b.FireInt(EventModifyPriority, &Context{Source: c, Target: b.Foe(c), Move: m}, m.Def.Priority)
}

// executeMove runs a queued move command for c: it spends PP, applies
// terastallization and runs the move pipeline.
func (b *Battle) executeMove(c *model.Combatant, cmd model.Command) {
	m := b.newActiveMove(c, cmd)
	if cmd.Kind != model.CmdStruggle {
		c.Moves[cmd.Index].PP--
	}
	if m.Tera && b.canTera(c.Handle.Player) {
		c.Terastallized = true
		b.players[c.Handle.Player].TeraUsed = true
		b.logf(c, "%s terastallized into the %s type", c.Name(), c.TeraType)
	}
	b.UseMove(c, m)
}

// UseMove runs the move pipeline: try-hit, accuracy, damage and the hit and
// after-move events. The move's own handlers are registered against the
// user for the duration of the use.
func (b *Battle) UseMove(user *model.Combatant, m *ActiveMove) {
	b.logf(user, "%s used %s", user.Name(), m.Name)
	if m.Record != nil {
		b.activate(m.Record, user.Handle)
		defer b.deactivate(m.Record, user.Handle)
	}

	ctx := &Context{Source: user, Target: b.Foe(user), Move: m}
	if m.Def.Target == data.TargetSelf {
		ctx.Target = user
	}

	if m.Def.TargetsFoe() {
		foe := ctx.Target
		if foe == nil || foe.Fainted() {
			b.logf(user, "but there was no target")
			return
		}
		if !b.FireBool(EventTryHit, ctx, true) {
			b.logf(user, "but it failed")
			return
		}
		if !b.accuracyCheck(ctx) {
			b.logf(user, "%s's attack missed", user.Name())
			return
		}
	}

	if m.Def.Damaging() && !b.strike(ctx) {
		return
	}
	b.FireAction(EventHit, ctx)
	b.FireAction(EventAfterMove, ctx)
}

func (b *Battle) accuracyCheck(ctx *Context) bool {
	if !ctx.Move.Def.CanMiss() {
		return true
	}
	acc := b.FireInt(EventModifyAccuracy, ctx, ctx.Move.Def.Accuracy)
	num, den := model.AccuracyMultiplier(ctx.Source.Stage(model.StageAccuracy))
	return b.chance(ChanceAccuracy, acc*num/den, 100)
}

// strike deals the damage of a damaging move. It returns false when the
// target turned out to be immune.
func (b *Battle) strike(ctx *Context) bool {
	target := ctx.Target
	crit := b.rollCritical(ctx)
	calc := b.CalcDamage(ctx, crit)
	if calc.Immune() {
		b.logf(target, "it doesn't affect %s", target.Name())
		return false
	}
	dmg := calc.Rolls[b.rng.IntN(NumRolls)]
	if crit {
		b.logf(target, "a critical hit")
	}
	switch {
	case calc.Effectiveness > 1:
		b.logf(target, "it's super effective")
	case calc.Effectiveness < 1:
		b.logf(target, "it's not very effective")
	}

	dmg = b.FireInt(EventBeforeDamage, ctx, dmg)
	ctx.Damage = target.Damage(dmg)
	target.Flags.Damaged = true
	b.Log(target.Handle, "", fmt.Sprintf("%s lost %d HP", target.Name(), ctx.Damage))
	b.logFaint(target)
	return true
}

// Secondary rolls a secondary effect with a base chance in percent.
func (b *Battle) Secondary(ctx *Context, percent int) bool {
	p := b.FireInt(EventSecondaryChance, ctx, percent)
	return b.chance(ChanceSecondary, p, 100)
}
