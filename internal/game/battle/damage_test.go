package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tmwork1/jpoke/internal/model"
)

func flatCombatant(h model.Handle, level int, types []string, stat int) *model.Combatant {
	stats := [model.NumStats]int{200, stat, stat, stat, stat, stat}
	return model.NewCombatant(h, model.Spec{Species: "dummy", Level: level}, types, stats, nil)
}

func TestDamageRolls_Reference(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	atk := flatCombatant(model.Handle{Player: 0, Slot: 5}, 50, []string{"water"}, 100)
	def := flatCombatant(model.Handle{Player: 1, Slot: 5}, 50, []string{"fighting"}, 100)

	rolls := b.DamageRolls(atk, def, mustMove(t, "tackle"), false)
	want := [NumRolls]int{16, 16, 16, 16, 16, 17, 17, 17, 17, 17, 18, 18, 18, 18, 18, 19}
	assert.Equal(t, want, rolls)
	for _, r := range rolls {
		assert.GreaterOrEqual(t, r, 1)
	}

	crit := b.DamageRolls(atk, def, mustMove(t, "tackle"), true)
	assert.Equal(t, 28, crit[NumRolls-1])
}

func TestRoundHalfDown(t *testing.T) {
	assert.Equal(t, 28, roundHalfDown(19*1.5))
	assert.Equal(t, 29, roundHalfDown(28.6))
	assert.Equal(t, 3, roundHalfDown(3.5))
	assert.Equal(t, 4, roundHalfDown(4))
	assert.Equal(t, 4, roundHalfDown(3.51))
}

func TestDamageRolls_SameTypeBonus(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	atk := flatCombatant(model.Handle{Player: 0, Slot: 5}, 50, []string{"normal"}, 100)
	def := flatCombatant(model.Handle{Player: 1, Slot: 5}, 50, []string{"fighting"}, 100)

	rolls := b.DamageRolls(atk, def, mustMove(t, "tackle"), false)
	assert.Equal(t, 28, rolls[NumRolls-1])
}

func TestDamageRolls_MinimumOne(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	atk := flatCombatant(model.Handle{Player: 0, Slot: 5}, 1, []string{"water"}, 1)
	def := flatCombatant(model.Handle{Player: 1, Slot: 5}, 1, []string{"rock", "steel"}, 999)

	for _, r := range b.DamageRolls(atk, def, mustMove(t, "tackle"), false) {
		assert.Equal(t, 1, r)
	}
}

func TestCalcDamage_Immune(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	atk := flatCombatant(model.Handle{Player: 0, Slot: 5}, 50, []string{"normal"}, 100)
	def := flatCombatant(model.Handle{Player: 1, Slot: 5}, 50, []string{"ghost"}, 100)

	calc := b.CalcDamage(&Context{Source: atk, Target: def, Move: mustMove(t, "tackle")}, false)
	assert.True(t, calc.Immune())
	assert.Equal(t, [NumRolls]int{}, calc.Rolls)
}

func TestCalcDamage_CritIgnoresUnfavorableStages(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	atk := flatCombatant(model.Handle{Player: 0, Slot: 5}, 50, []string{"water"}, 100)
	def := flatCombatant(model.Handle{Player: 1, Slot: 5}, 50, []string{"fighting"}, 100)
	neutral := b.DamageRolls(atk, def, mustMove(t, "tackle"), true)

	atk.SetStage(model.StageAttack, -2)
	def.SetStage(model.StageDefense, 3)
	assert.Equal(t, neutral, b.DamageRolls(atk, def, mustMove(t, "tackle"), true))

	lowered := b.DamageRolls(atk, def, mustMove(t, "tackle"), false)
	assert.Less(t, lowered[NumRolls-1], neutral[NumRolls-1])
}

func TestCalcDamage_SpecialExceptions(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	atk := flatCombatant(model.Handle{Player: 0, Slot: 5}, 50, []string{"water"}, 100)
	def := flatCombatant(model.Handle{Player: 1, Slot: 5}, 50, []string{"water"}, 100)

	base := b.DamageRolls(atk, def, mustMove(t, "body-press"), false)
	atk.SetStage(model.StageDefense, 2)
	assert.Greater(t, b.DamageRolls(atk, def, mustMove(t, "body-press"), false)[15], base[15],
		"body press reads the attacker's defense")

	foul := b.DamageRolls(atk, def, mustMove(t, "foul-play"), false)
	def.SetStage(model.StageAttack, 2)
	assert.Greater(t, b.DamageRolls(atk, def, mustMove(t, "foul-play"), false)[15], foul[15],
		"foul play reads the defender's attack")
}
