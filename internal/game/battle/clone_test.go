package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func TestClone_BenchHandlerIsIndependent(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon", "clefable"))
	bench := model.Handle{Player: 0, Slot: 1}
	hurt := &Handler{
		Role: SourceSelf,
		Func: func(_ *Battle, c *Context, _ any) Result {
			c.Source.Damage(10)
			return Done()
		},
	}
	require.True(t, b.Register(EventEndResidual, hurt, bench))

	cp := b.Clone()
	cp.FireAction(EventEndResidual, nil)

	golem := b.Combatant(bench)
	assert.Equal(t, golem.MaxHP(), golem.HP(), "original untouched")
	assert.Equal(t, golem.MaxHP()-10, cp.Combatant(bench).HP())

	require.True(t, cp.Unregister(EventEndResidual, hurt, bench))
	assert.True(t, b.Registry().Registered(EventEndResidual, hurt, bench))
}

func TestClone_SubjectsResolveIntoClone(t *testing.T) {
	team := []model.Spec{withAbility(testSpec("gyarados", "tackle"), "intimidate"), testSpec("golem", "tackle")}
	b := startedBattle(t, team, plainTeam("snorlax", "clefable"))
	cp := b.Clone()

	for ev := range numEvents {
		for _, h := range cp.Registry().Subjects(ev) {
			c := cp.Combatant(h)
			require.NotNil(t, c)
			assert.Same(t, cp.Player(h.Player).Roster[c.Handle.Slot], c)
			assert.NotSame(t, b.Combatant(h), c)
		}
	}

	cp.Active(1).SetHP(1)
	cp.BoostStage(cp.Active(1), nil, model.StageSpeed, 2)
	assert.Equal(t, b.Active(1).MaxHP(), b.Active(1).HP())
	assert.Zero(t, b.Active(1).Stage(model.StageSpeed))
}

func TestClone_FieldsAreIndependent(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("clefable"))
	cp := b.Clone()

	require.True(t, cp.Weather().Activate(Rain, 5, nil))
	cp.Side(1).Stack(Spikes, 3, nil)

	assert.Empty(t, b.Weather().Current())
	assert.False(t, b.Side(1).IsActive(Spikes))
	assert.Zero(t, b.Registry().Count(EventDamageModifier))
	assert.NotZero(t, cp.Registry().Count(EventDamageModifier))
}

func TestClone_SharesRandomStream(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("clefable"))
	b.Rand().Uint64()
	cp := b.Clone()

	for range 8 {
		assert.Equal(t, b.Rand().Uint64(), cp.Rand().Uint64())
	}
}

func TestClone_PlaysOutIdentically(t *testing.T) {
	b := startedBattle(t,
		plainTeam("garchomp", "snorlax", "golem"),
		plainTeam("corviknight", "jolteon", "toxapex"))
	require.NoError(t, b.PlayTurn())
	cp := b.Clone()

	w1, err := b.Run(context.Background(), 50)
	require.NoError(t, err)
	w2, err := cp.Run(context.Background(), 50)
	require.NoError(t, err)

	assert.Equal(t, w1, w2)
	assert.Equal(t, b.Entries(), cp.Entries())
	assert.Equal(t, b.Transcript(), cp.Transcript())
}

func TestSnapshot(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("clefable", "jolteon"))
	require.True(t, b.InflictStatus(b.Active(1), nil, StatusBurn))

	s := b.Snapshot()
	assert.Equal(t, 0, s.Players[0].Active)
	assert.Equal(t, []string{model.StatusNone, model.StatusNone}, s.Players[0].Status)
	assert.Equal(t, StatusBurn, s.Players[1].Status[0])
	assert.Equal(t, 1, s.Players[1].Registered[EventEndResidual.String()])
	assert.InDelta(t, 2.0+2.0/3, s.Players[0].Score, 1e-9)
}
