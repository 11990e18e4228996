package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func TestSelectionCommands(t *testing.T) {
	b := newTestBattle(t, plainTeam("snorlax", "golem", "clefable", "jolteon"), plainTeam("gyarados", "toxapex", "weavile"))
	assert.Len(t, b.SelectionCommands(0), 4)
	assert.Equal(t, PhaseSelect, b.Phase())
	assert.Len(t, b.AvailableCommands(1), 3)
	assert.Equal(t, 3, b.SelectSize())
}

func TestSelectSize_LimitedBySmallestTeam(t *testing.T) {
	b := newTestBattle(t, plainTeam("snorlax", "golem", "clefable", "jolteon"), plainTeam("gyarados", "toxapex"))
	assert.Equal(t, 2, b.SelectSize())
}

func TestSwitchCommands_OnlyBenchedSelection(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem", "clefable", "jolteon"), plainTeam("gyarados", "toxapex", "weavile"))

	assert.Equal(t, []model.Command{model.SwitchCommand(1), model.SwitchCommand(2)}, b.SwitchCommands(0))
	b.Player(0).Roster[1].SetHP(0)
	assert.Equal(t, []model.Command{model.SwitchCommand(2)}, b.SwitchCommands(0))
}

func TestAvailableCommands_MovesThenSwitches(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("gyarados", "toxapex"))
	b.phase = PhaseCollect

	want := []model.Command{model.MoveCommand(0), model.MoveCommand(1), model.SwitchCommand(1)}
	assert.Equal(t, want, b.AvailableCommands(0))
}

func TestMoveCommands_SkipsEmptyPP(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("gyarados"))
	b.Active(0).Moves[0].PP = 0
	assert.Equal(t, []model.Command{model.MoveCommand(1)}, b.MoveCommands(0))
}

func TestSelection_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		picks []int
	}{
		{"too few", []int{0}},
		{"duplicate", []int{0, 0}},
		{"out of range", []int{0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBattle(t, plainTeam("snorlax", "golem"), plainTeam("gyarados", "toxapex"),
				fixedSelection(tt.picks))
			err := b.Start()
			require.Error(t, err)
			assert.True(t, IsIllegalCommand(err))
		})
	}
}

func TestReplacement_Rejected(t *testing.T) {
	bad := &scriptDecider{replace: []model.Command{model.SwitchCommand(0)}}
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("gyarados", "toxapex"), bad)
	b.Active(0).SetHP(0)
	require.True(t, b.RequestInterrupt(0, model.InterruptFainted))

	err := b.resolveInterrupts(model.InterruptFainted)
	require.Error(t, err)
	assert.True(t, IsIllegalCommand(err))
}

type fixedSelection []int

func (f fixedSelection) Select(*Battle, int, int) []int { return f }

func (fixedSelection) Command(_ *Battle, _ int, options []model.Command) model.Command {
	return options[0]
}

func (fixedSelection) Replacement(_ *Battle, _ int, options []model.Command) model.Command {
	return options[0]
}
