package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func TestActionOrder_TieIsUniform(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("snorlax"))

	const trials = 2000
	first := 0
	for range trials {
		order := b.ActionOrder()
		require.Len(t, order, 2)
		if order[0].Player == 0 {
			first++
		}
	}
	assert.InDelta(t, trials/2, first, 150, "player 1 first %d of %d", first, trials)
}

func TestActionOrder_PriorityBeatsSpeed(t *testing.T) {
	slow := []model.Spec{testSpec("snorlax", "quick-attack")}
	b := startedBattle(t, slow, plainTeam("jolteon"))
	b.Player(0).Queued = model.MoveCommand(0)
	b.Player(1).Queued = model.MoveCommand(0)

	order := b.ActionOrder()
	assert.Equal(t, 0, order[0].Player)
}

func TestActionOrder_TrickRoomReversesSpeed(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	assert.Equal(t, 1, b.ActionOrder()[0].Player)

	b.Global().Activate(TrickRoom, 5, nil)
	assert.Equal(t, 0, b.ActionOrder()[0].Player)
}

func TestActionOrder_SkipsSwitchedOut(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	b.Active(1).Flags.SwitchedOut = true

	order := b.ActionOrder()
	require.Len(t, order, 1)
	assert.Equal(t, 0, order[0].Player)
}

func TestEffectiveSpeed_Modifiers(t *testing.T) {
	team := []model.Spec{withItem(testSpec("weavile", "tackle"), "choice-scarf")}
	b := startedBattle(t, team, plainTeam("snorlax"))
	j := b.Active(0)
	raw := j.Stat(model.StatSpeed)

	assert.Equal(t, raw*3/2, b.EffectiveSpeed(j))

	j.SetStage(model.StageSpeed, 1)
	assert.Equal(t, raw*3/2*3/2, b.EffectiveSpeed(j))

	require.True(t, b.InflictStatus(j, nil, StatusParalysis))
	assert.Equal(t, raw*3/2*3/2/2, b.EffectiveSpeed(j))
}

func TestSpeedOrder_FasterFirst(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	order := b.SpeedOrder()
	require.Len(t, order, 2)
	assert.Equal(t, model.Handle{Player: 1, Slot: 0}, order[0])
}
