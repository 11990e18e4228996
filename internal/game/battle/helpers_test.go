package battle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/model"
)

func testSpec(species string, moves ...string) model.Spec {
	return model.Spec{Species: species, Level: 50, Nature: "hardy", Moves: moves, IVs: model.MaxIVs}
}

func withAbility(s model.Spec, ability string) model.Spec {
	s.Ability = ability
	return s
}

func withItem(s model.Spec, item string) model.Spec {
	s.Item = item
	return s
}

// scriptDecider plays queued answers and falls back to the first option.
type scriptDecider struct {
	commands []model.Command
	replace  []model.Command
}

func (d *scriptDecider) Select(b *Battle, p, size int) []int {
	return FirstOption{}.Select(b, p, size)
}

func (d *scriptDecider) Command(_ *Battle, _ int, options []model.Command) model.Command {
	if len(d.commands) == 0 {
		return options[0]
	}
	cmd := d.commands[0]
	d.commands = d.commands[1:]
	return cmd
}

func (d *scriptDecider) Replacement(_ *Battle, _ int, options []model.Command) model.Command {
	if len(d.replace) == 0 {
		return options[0]
	}
	cmd := d.replace[0]
	d.replace = d.replace[1:]
	return cmd
}

func newTestBattle(t *testing.T, team0, team1 []model.Spec, deciders ...Decider) *Battle {
	t.Helper()
	d := [2]Decider{FirstOption{}, FirstOption{}}
	copy(d[:], deciders)
	b, err := New(Options{
		Seed: 1,
		Players: [2]PlayerOptions{
			{Name: "alice", Team: team0, Decider: d[0]},
			{Name: "bob", Team: team1, Decider: d[1]},
		},
		Chance: AlwaysHit,
	})
	require.NoError(t, err)
	return b
}

func startedBattle(t *testing.T, team0, team1 []model.Spec, deciders ...Decider) *Battle {
	t.Helper()
	b := newTestBattle(t, team0, team1, deciders...)
	require.NoError(t, b.Start())
	return b
}

func mustMove(t *testing.T, name string) *ActiveMove {
	t.Helper()
	m, err := NewActiveMove(name)
	require.NoError(t, err)
	return m
}

func plainTeam(species ...string) []model.Spec {
	team := make([]model.Spec, len(species))
	for i, s := range species {
		team[i] = testSpec(s, "tackle", "earthquake")
	}
	return team
}

func catchPanic(f func()) (r any) {
	defer func() { r = recover() }()
	f()
	return nil
}
