package replay

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/game/battle"
	"github.com/tmwork1/jpoke/internal/model"
)

// rotating picks a different option every turn so that recorded games
// contain moves, tera moves and switches.
type rotating struct{}

func (rotating) Select(_ *battle.Battle, p, size int) []int {
	picks := make([]int, size)
	for i := range picks {
		picks[i] = (i + p) % 4
	}
	return picks
}

func (rotating) Command(b *battle.Battle, p int, options []model.Command) model.Command {
	return options[(b.Turn()*3+p)%len(options)]
}

func (rotating) Replacement(b *battle.Battle, p int, options []model.Command) model.Command {
	return options[(b.Turn()+p)%len(options)]
}

func spec(species, ability, item, tera string, moves ...string) model.Spec {
	return model.Spec{
		Species: species, Level: 50, Nature: "jolly", Ability: ability, Item: item,
		Moves: moves, IVs: model.MaxIVs, EVs: [model.NumStats]int{4, 252, 0, 0, 0, 252}, TeraType: tera,
	}
}

func teams() ([]model.Spec, []model.Spec) {
	a := []model.Spec{
		spec("garchomp", "", "choice-scarf", "fire", "earthquake", "stone-edge", "dragon-tail", "swords-dance"),
		spec("rotom-wash", "levitate", "leftovers", "", "volt-switch", "hydro-pump", "will-o-wisp", "protect"),
		spec("ferrothorn", "", "rocky-helmet", "", "stealth-rock", "leech-seed", "iron-head", "spikes"),
		spec("clefable", "", "sitrus-berry", "steel", "moonblast", "thunder-wave", "recover", "flamethrower"),
	}
	b := []model.Spec{
		spec("gyarados", "intimidate", "", "flying", "dragon-dance", "tackle", "earthquake", "ice-beam"),
		spec("tyranitar", "sand-stream", "", "", "rock-slide", "foul-play", "toxic", "roar"),
		spec("volcarona", "", "heat-rock", "", "u-turn", "flamethrower", "sunny-day", "psychic"),
		spec("jolteon", "", "focus-sash", "", "thunderbolt", "shadow-ball", "reflect", "quick-attack"),
	}
	return a, b
}

func playRecorded(t *testing.T, seed uint64, maxTurns int) Record {
	t.Helper()
	a, c := teams()
	b, err := battle.New(battle.Options{
		Seed: seed,
		Players: [2]battle.PlayerOptions{
			{Name: "alice", Team: a, Decider: rotating{}},
			{Name: "bob", Team: c, Decider: rotating{}},
		},
	})
	require.NoError(t, err)
	_, err = b.Run(context.Background(), maxTurns)
	require.NoError(t, err)
	return FromBattle(b, maxTurns)
}

func TestVerify_ReproducesGames(t *testing.T) {
	for seed := range uint64(8) {
		r := playRecorded(t, seed, 40)
		require.NoError(t, Verify(context.Background(), r), "seed %d", seed)
	}
}

func TestEncodeDecode_KeepsDigest(t *testing.T) {
	r := playRecorded(t, 42, 40)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r))
	got, err := Decode(&buf)
	require.NoError(t, err)

	want, err := r.Digest()
	require.NoError(t, err)
	have, err := got.Digest()
	require.NoError(t, err)
	assert.Equal(t, want, have)
	assert.Len(t, want, 64)
	assert.NoError(t, Verify(context.Background(), got))
}

func TestVerify_DetectsTampering(t *testing.T) {
	r := playRecorded(t, 7, 40)
	require.NotEmpty(t, r.Players[0].Commands[1])

	r.Winner = 7
	assert.ErrorIs(t, Verify(context.Background(), r), ErrMismatch)

	r = playRecorded(t, 7, 40)
	r.Players[0].Commands[1] = []string{"SWITCH_9"}
	err := Verify(context.Background(), r)
	require.Error(t, err)
	assert.True(t, battle.IsIllegalCommand(err))

	r = playRecorded(t, 7, 40)
	r.Players[1].Commands[999] = []string{"MOVE_0"}
	assert.ErrorIs(t, Verify(context.Background(), r), ErrMismatch)
}

func TestSaveLoad(t *testing.T) {
	r := playRecorded(t, 3, 20)
	path := filepath.Join(t.TempDir(), "game.yaml")

	require.NoError(t, Save(path, r))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.Seed, got.Seed)
	assert.Equal(t, r.Players[1].Team, got.Players[1].Team)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestScript_RunsOut(t *testing.T) {
	s := NewScript(Player{Commands: map[int][]string{
		1: {"MOVE_0"},
		0: {"SELECT_2", "SELECT_0", "bogus"},
	}})
	assert.Equal(t, 1, s.bad)
	assert.Equal(t, []int{2, 0}, s.Select(nil, 0, 2))
	assert.Equal(t, model.Command{}, s.Command(nil, 0, nil))
	assert.Equal(t, model.MoveCommand(0), s.Command(nil, 0, nil))
	assert.Equal(t, model.Command{}, s.Replacement(nil, 0, nil))
	assert.Zero(t, s.Remaining())
}
