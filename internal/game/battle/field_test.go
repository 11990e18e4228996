package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func TestExclusiveField_ReplacesCurrent(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	w := b.Weather()

	require.True(t, w.Activate(Sun, 5, nil))
	assert.Equal(t, Sun, w.Current())
	assert.Equal(t, 2, b.Registry().Count(EventDamageModifier), "registered for both owners")

	require.True(t, w.Activate(Rain, 5, nil))
	assert.Equal(t, Rain, w.Current())
	assert.False(t, w.IsActive(Sun))
	assert.Len(t, w.ActiveNames(), 1)
	assert.Equal(t, 2, b.Registry().Count(EventDamageModifier))

	assert.False(t, w.Activate(Rain, 3, nil), "re-activating the current member is a no-op")
	assert.Equal(t, 5, w.Get(Rain).Duration)
}

func TestStackableField_Independent(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	side := b.Side(0)

	require.True(t, side.Activate(Reflect, 5, nil))
	require.True(t, side.Activate(LightScreen, 5, nil))
	assert.ElementsMatch(t, []string{Reflect, LightScreen}, side.ActiveNames())

	assert.False(t, side.Activate(Reflect, 2, nil))
	assert.Equal(t, 5, side.Get(Reflect).Duration)
	assert.Empty(t, b.Side(1).ActiveNames())
}

func TestStackableField_Layers(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	side := b.Side(1)

	for i := 1; i <= 3; i++ {
		require.True(t, side.Stack(Spikes, 3, nil))
		assert.Equal(t, i, side.Get(Spikes).Layers)
	}
	assert.False(t, side.Stack(Spikes, 3, nil))
	assert.Equal(t, 3, side.Get(Spikes).Layers)
}

func TestField_Tick(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	side := b.Side(0)

	side.Activate(Tailwind, 2, nil)
	assert.False(t, side.Tick(Tailwind))
	assert.True(t, side.Tick(Tailwind))
	assert.False(t, side.IsActive(Tailwind))
	assert.False(t, side.Tick(Tailwind), "inactive members do not expire twice")

	side.Activate(StealthRock, Permanent, nil)
	for range 10 {
		assert.False(t, side.Tick(StealthRock))
	}
	assert.True(t, side.IsActive(StealthRock))
}

func TestField_DurationExtendedByItem(t *testing.T) {
	team := []model.Spec{withItem(testSpec("ninetales", "sunny-day"), "heat-rock")}
	b := startedBattle(t, team, plainTeam("snorlax"))

	require.True(t, b.Weather().Activate(Sun, 5, b.Active(0)))
	assert.Equal(t, 8, b.Weather().Get(Sun).Duration)
}

func TestField_UnknownMemberPanics(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	r := catchPanic(func() { b.Weather().Activate(TrickRoom, 5, nil) })
	_, ok := r.(*model.InvariantError)
	assert.True(t, ok)
}

func TestField_HandlersFollowActive(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "pikachu"), plainTeam("jolteon", "golem"))
	b.Side(0).Activate(Tailwind, 4, nil)

	before := b.EffectiveSpeed(b.Active(0))
	require.True(t, b.Switch(0, 1))
	pika := b.Active(0)
	assert.Equal(t, "pikachu", pika.Name())
	assert.Equal(t, pika.Stat(model.StatSpeed)*2, b.EffectiveSpeed(pika))
	assert.Equal(t, b.Player(0).Roster[0].Stat(model.StatSpeed)*2, before)
}
