package battle

import (
	"math"

	"github.com/tmwork1/jpoke/internal/data"
	"github.com/tmwork1/jpoke/internal/model"
)

// NumRolls is the number of damage rolls, 85%..100% in 1% steps.
const NumRolls = 16

// DamageCalc is the outcome of the damage pipeline for one hit.
type DamageCalc struct {
	Rolls         [NumRolls]int
	Effectiveness float64
	Critical      bool
}

// Immune reports whether the target takes no damage at all.
func (d DamageCalc) Immune() bool { return d.Effectiveness == 0 }

// CalcDamage runs the damage pipeline for ctx.Move from ctx.Source against
// ctx.Target. Every roll of a non-immune hit is at least 1.
func (b *Battle) CalcDamage(ctx *Context, crit bool) DamageCalc {
	atk, def, m := ctx.Source, ctx.Target, ctx.Move
	m.Critical = crit
	out := DamageCalc{Critical: crit}

	eff := data.Effectiveness(m.Type, def.CurrentTypes())
	out.Effectiveness = b.FireFloat(EventDefenderTypeModifier, ctx, eff)
	if out.Effectiveness == 0 {
		return out
	}

	power := b.FireInt(EventModifyPower, ctx, m.Def.Power)
	offense := b.offense(ctx, crit)
	defense := b.defense(ctx, crit)

	base := ((atk.Level*2/5+2)*power*offense/defense)/50 + 2
	if crit {
		base = roundHalfDown(float64(base) * 1.5)
	}

	stab := b.FireFloat(EventAttackerTypeModifier, ctx, sameTypeBonus(atk, m))
	mod := b.FireInt(EventDamageModifier, ctx, 4096)

	for i := range out.Rolls {
		d := base * (85 + i) / 100
		d = roundHalfDown(float64(d) * stab)
		d = int(float64(d) * out.Effectiveness)
		d = (d*mod + 2047) / 4096
		if d == 0 && stab != 0 {
			d = 1
		}
		out.Rolls[i] = d
	}
	return out
}

// DamageRolls is CalcDamage for a bare attacker/defender pair.
func (b *Battle) DamageRolls(attacker, defender *model.Combatant, m *ActiveMove, crit bool) [NumRolls]int {
	return b.CalcDamage(&Context{Source: attacker, Target: defender, Move: m}, crit).Rolls
}

func (b *Battle) offense(ctx *Context, crit bool) int {
	holder, stat := ctx.Source, model.StatAttack
	if ctx.Move.Category == data.Special {
		stat = model.StatSpAttack
	}
	switch {
	case ctx.Move.HasFlag(data.FlagTargetOffense):
		holder = ctx.Target
	case ctx.Move.HasFlag(data.FlagDefenseOffense):
		stat = model.StatDefense
	}
	stage := holder.Stage(model.StageOf(stat))
	if stage < 0 && (crit || b.FireBool(EventIgnoreStages, ctx, false)) {
		stage = 0
	}
	v := model.ApplyStage(holder.Stat(stat), stage)
	return max(1, b.FireInt(EventModifyOffense, ctx, v))
}

func (b *Battle) defense(ctx *Context, crit bool) int {
	stat := model.StatDefense
	if ctx.Move.Category == data.Special {
		stat = model.StatSpDefense
	}
	def := ctx.Target
	stage := def.Stage(model.StageOf(stat))
	if stage > 0 && (crit || b.FireBool(EventIgnoreStages, ctx, false)) {
		stage = 0
	}
	v := model.ApplyStage(def.Stat(stat), stage)
	return max(1, b.FireInt(EventModifyDefense, ctx, v))
}

// sameTypeBonus is 1.5 when the move shares a type with the user, 2.0 when
// it matches both an original type and the tera type.
func sameTypeBonus(c *model.Combatant, m *ActiveMove) float64 {
	if m.Type == "" {
		return 1
	}
	original := false
	for _, t := range c.Types {
		if t == m.Type {
			original = true
		}
	}
	tera := c.Terastallized && c.TeraType == m.Type
	switch {
	case original && tera:
		return 2
	case original || tera:
		return 1.5
	}
	return 1
}

// roundHalfDown rounds to the nearest integer with .5 going down.
func roundHalfDown(x float64) int {
	return int(math.Ceil(x - 0.5))
}

// critChance maps a critical-hit stage to its probability.
func critChance(stage int) (num, den int) {
	switch {
	case stage <= 0:
		return 1, 24
	case stage == 1:
		return 1, 8
	case stage == 2:
		return 1, 2
	}
	return 1, 1
}

func (b *Battle) rollCritical(ctx *Context) bool {
	stage := b.FireInt(EventModifyCritStage, ctx, ctx.Move.Def.CritStage)
	num, den := critChance(stage)
	if num == den {
		return true
	}
	return b.chance(ChanceCritical, num, den)
}
