package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func TestInflictStatus_Rules(t *testing.T) {
	b := startedBattle(t, plainTeam("corviknight"), plainTeam("snorlax"))
	corv, lax := b.Active(0), b.Active(1)

	assert.False(t, b.InflictStatus(corv, lax, StatusPoison), "steel types cannot be poisoned")
	require.True(t, b.InflictStatus(lax, corv, StatusPoison))
	assert.False(t, b.InflictStatus(lax, corv, StatusBurn), "one primary status at a time")

	require.True(t, b.CureStatus(lax))
	assert.False(t, b.CureStatus(lax))
	assert.True(t, b.InflictStatus(lax, corv, StatusBurn))
}

func TestStatus_Residuals(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("clefable"))
	lax, clef := b.Active(0), b.Active(1)
	require.True(t, b.InflictStatus(lax, nil, StatusPoison))
	require.True(t, b.InflictStatus(clef, nil, StatusToxic))

	b.FireAction(EventEndResidual, nil)
	assert.Equal(t, lax.MaxHP()-lax.MaxHP()/8, lax.HP())
	assert.Equal(t, clef.MaxHP()-clef.MaxHP()/16, clef.HP())

	b.FireAction(EventEndResidual, nil)
	assert.Equal(t, clef.MaxHP()-clef.MaxHP()/16-clef.MaxHP()*2/16, clef.HP())
	assert.Equal(t, 3, clef.Status.Counter)
}

func TestStatus_SleepWearsOff(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("clefable"))
	lax := b.Active(0)
	require.True(t, b.InflictStatus(lax, nil, StatusSleep))
	lax.Status.Counter = 1

	ctx := &Context{Source: lax, Target: b.Foe(lax)}
	assert.False(t, b.FireBool(EventBeforeMove, ctx, true))
	assert.True(t, b.FireBool(EventBeforeMove, ctx, true))
	assert.Equal(t, model.StatusNone, lax.Status.Name)
	assert.Zero(t, b.Registry().Count(EventBeforeMove))
}

func TestStatus_TerrainBlocksSleep(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("gyarados"))
	b.Terrain().Activate(ElectricTerrain, 5, nil)

	assert.False(t, b.InflictStatus(b.Active(0), nil, StatusSleep), "grounded")
	assert.True(t, b.InflictStatus(b.Active(1), nil, StatusSleep), "flying types are not grounded")
}

func TestBoostStage_ClampAndClearBody(t *testing.T) {
	b := startedBattle(t,
		[]model.Spec{withAbility(testSpec("gyarados", "tackle"), "intimidate")},
		[]model.Spec{withAbility(testSpec("corviknight", "tackle"), "clear-body")})
	corv := b.Active(1)

	assert.Zero(t, corv.Stage(model.StageAttack), "clear body blocks intimidate")
	assert.True(t, corv.AbilityRevealed)
	assert.Equal(t, -1, b.BoostStage(corv, corv, model.StageDefense, -1), "self-inflicted drops still apply")

	assert.Equal(t, 6, b.BoostStage(corv, corv, model.StageSpeed, 8))
	assert.Zero(t, b.BoostStage(corv, corv, model.StageSpeed, 1))
	assert.Equal(t, model.MaxStage, corv.Stage(model.StageSpeed))
}

func TestVolatile_FlinchIsOneTurn(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("clefable"))
	lax := b.Active(0)
	ctx := &Context{Source: lax, Target: b.Foe(lax)}

	require.True(t, b.AddVolatile(lax, VolatileFlinch, 0, nil))
	assert.False(t, b.AddVolatile(lax, VolatileFlinch, 0, nil))
	assert.False(t, b.FireBool(EventBeforeMove, ctx, true))

	b.FireAction(EventEndVolatile, nil)
	assert.True(t, b.FireBool(EventBeforeMove, ctx, true))
}
