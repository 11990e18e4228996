package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPlayer(n int) *Player {
	p := NewPlayer(0, "alice")
	for i := range n {
		c := newTestCombatant()
		c.Handle = Handle{Player: 0, Slot: i}
		p.Roster = append(p.Roster, c)
	}
	return p
}

func TestPlayer_Bench(t *testing.T) {
	p := newTestPlayer(4)
	assert.Nil(t, p.ActiveCombatant())

	p.Selected = []int{2, 0, 3}
	p.Active = 2
	assert.Equal(t, []int{0, 3}, p.Bench())
	assert.False(t, p.IsSelected(1))

	p.Roster[3].SetHP(0)
	assert.Equal(t, []int{0}, p.Bench())
}

func TestPlayer_Score(t *testing.T) {
	p := newTestPlayer(3)
	p.Selected = []int{0, 1, 2}
	assert.InDelta(t, 3.75, p.Score(), 1e-9)

	p.Roster[0].SetHP(0)
	p.Roster[1].SetHP(p.Roster[1].MaxHP() / 5)
	assert.Less(t, p.Score(), 3.0)
	assert.Greater(t, p.Score(), 2.0)

	p.Roster[1].SetHP(0)
	p.Roster[2].SetHP(0)
	assert.Zero(t, p.Score())
}

func TestPlayer_Clone(t *testing.T) {
	p := newTestPlayer(2)
	p.Selected = []int{0, 1}
	cp := p.Clone()

	cp.Selected[0] = 1
	cp.Roster[0].SetHP(1)
	assert.Equal(t, 0, p.Selected[0])
	assert.Equal(t, p.Roster[0].MaxHP(), p.Roster[0].HP())
}
