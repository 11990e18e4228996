package battle

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func TestStart_SelectsAndSendsLeads(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem", "jolteon", "pikachu"), plainTeam("gengar", "clefable", "toxapex"))

	assert.Equal(t, 3, b.SelectSize())
	assert.Equal(t, []int{0, 1, 2}, b.Player(0).Selected)
	assert.Equal(t, "snorlax", b.Active(0).Name())
	assert.Equal(t, "gengar", b.Active(1).Name())
	assert.Equal(t, PhaseInitialSwitch, b.Phase())
	assert.False(t, b.Decided())
}

func TestFaintSwitch_ChainTerminates(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem", "clefable"), plainTeam("jolteon", "pikachu", "alakazam"))
	b.Side(1).Activate(StealthRock, Permanent, nil)
	for _, i := range b.Player(1).Selected {
		b.Player(1).Roster[i].SetHP(1)
	}
	b.Active(1).SetHP(0)

	require.NoError(t, b.faintSwitch())

	winner, decided := b.Winner()
	assert.True(t, decided)
	assert.Equal(t, 0, winner)
	assert.Zero(t, b.Player(1).Alive())
}

func TestFaintSwitch_ReplacesAndStops(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon", "pikachu"))
	b.Active(1).SetHP(0)

	require.NoError(t, b.faintSwitch())
	assert.False(t, b.Decided())
	assert.Equal(t, "pikachu", b.Active(1).Name())
	assert.Equal(t, model.InterruptNone, b.Player(1).Interrupt)
}

func TestRequestSwitch_ResolvedBeforeCommands(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon", "pikachu"))

	require.True(t, b.RequestSwitch(0))
	assert.Equal(t, model.InterruptRequested, b.Player(0).Interrupt)
	assert.False(t, b.RequestSwitch(0), "pending request is kept")

	require.NoError(t, b.PlayTurn())
	assert.Equal(t, "golem", b.Active(0).Name())
	assert.Equal(t, model.InterruptNone, b.Player(0).Interrupt)
	assert.Equal(t, "jolteon", b.Active(1).Name())
}

func TestRequestSwitch_Refused(t *testing.T) {
	b := newTestBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon", "pikachu"))
	assert.False(t, b.RequestSwitch(0), "not started")

	b = startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	assert.False(t, b.RequestSwitch(0), "empty bench")
}

func TestWinner_BothOutIsDraw(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	b.Active(0).SetHP(0)
	b.Active(1).SetHP(0)
	b.checkWinner()

	winner, decided := b.Winner()
	assert.True(t, decided)
	assert.Equal(t, Draw, winner)
	assert.ErrorIs(t, b.PlayTurn(), ErrBattleOver)
}

func TestRun_PlaysToCompletion(t *testing.T) {
	team0 := []model.Spec{
		testSpec("garchomp", "earthquake", "stone-edge"),
		testSpec("volcarona", "flamethrower", "u-turn"),
		testSpec("rotom-wash", "thunderbolt", "volt-switch"),
	}
	team1 := []model.Spec{
		testSpec("tyranitar", "rock-slide", "earthquake"),
		testSpec("clefable", "moonblast", "recover"),
		testSpec("corviknight", "iron-head", "roar"),
	}
	b := newTestBattle(t, team0, team1)

	winner, err := b.Run(context.Background(), 300)
	require.NoError(t, err)
	assert.True(t, b.Decided())
	assert.Contains(t, []int{0, 1, Draw}, winner)
	assert.Positive(t, b.Turn())
	assert.NotEmpty(t, b.Entries())
}

func TestRun_TurnLimitDecidesByScore(t *testing.T) {
	team := []model.Spec{testSpec("toxapex", "recover")}
	b := newTestBattle(t, team, team)

	_, err := b.Run(context.Background(), 3)
	require.NoError(t, err)
	assert.True(t, b.Decided())
	assert.Equal(t, 3, b.Turn())
}

func TestRun_Cancelled(t *testing.T) {
	b := newTestBattle(t, plainTeam("snorlax"), plainTeam("jolteon"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Run(ctx, 0)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlayTurn_IllegalCommand(t *testing.T) {
	cheat := &scriptDecider{commands: []model.Command{model.SwitchCommand(5)}}
	b := newTestBattle(t, plainTeam("snorlax"), plainTeam("jolteon"), cheat)

	err := b.PlayTurn()
	assert.ErrorIs(t, err, ErrIllegalCommand)
	assert.True(t, IsIllegalCommand(err))
}

func TestPlayTurn_SwitchBeforeMoves(t *testing.T) {
	d0 := &scriptDecider{commands: []model.Command{model.SwitchCommand(1)}}
	b := newTestBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon", "pikachu"), d0)

	require.NoError(t, b.PlayTurn())
	golem := b.Active(0)
	assert.Equal(t, "golem", golem.Name())
	assert.Less(t, golem.HP(), golem.MaxHP(), "the incoming combatant takes the foe's attack")
	assert.Equal(t, []string{"SELECT_0", "SELECT_1"}, b.Transcript().Players[0].Commands[0])
	assert.Equal(t, []string{"SWITCH_1"}, b.Transcript().Players[0].Commands[1])
}

func TestSwitchIn_SecondActivePanics(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon"))
	r := catchPanic(func() { b.SwitchIn(0, 1) })
	_, ok := r.(*model.InvariantError)
	assert.True(t, ok)
}

func TestSwitch_ShadowTagTraps(t *testing.T) {
	tagger := []model.Spec{withAbility(testSpec("alakazam", "psychic"), "shadow-tag")}
	b := startedBattle(t, plainTeam("snorlax", "golem"), tagger)

	assert.False(t, b.Switch(0, 1))
	assert.Equal(t, "snorlax", b.Active(0).Name())
}

func TestSwitch_ClearsVolatilesAndStages(t *testing.T) {
	b := startedBattle(t, plainTeam("snorlax", "golem"), plainTeam("jolteon", "pikachu"))
	s := b.Active(0)
	s.AddStage(model.StageAttack, 2)
	require.True(t, b.AddVolatile(s, VolatileConfusion, 3, nil))

	require.True(t, b.Switch(0, 1))
	assert.Zero(t, s.Stage(model.StageAttack))
	assert.Empty(t, s.Volatiles)
	assert.True(t, s.Flags.SwitchedOut)
	assert.Zero(t, b.Registry().Count(EventBeforeMove))
}

func TestOnceAbility_SurvivesSwitching(t *testing.T) {
	team := []model.Spec{withAbility(testSpec("garchomp", "earthquake"), "intrepid-sword"), testSpec("golem", "tackle")}
	b := startedBattle(t, team, plainTeam("jolteon", "pikachu"))
	assert.Equal(t, 1, b.Active(0).Stage(model.StageAttack))

	require.True(t, b.Switch(0, 1))
	require.True(t, b.Switch(0, 0))
	assert.Zero(t, b.Active(0).Stage(model.StageAttack))
}
