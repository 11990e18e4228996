package battle

import (
	"math/rand/v2"
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// Clone returns an independent copy of the battle for look-ahead search.
// Players, combatants, the registry, fields, the log and the generator
// state are copied; handlers, deciders and the chance strategy are shared.
// Because registrations and fields refer to combatants by handle, every
// reference in the copy resolves into the copy's own arenas.
func (b *Battle) Clone() *Battle {
	cp := *b
	src := *b.src
	cp.src = &src
	cp.rng = rand.New(cp.src)

	for i, p := range b.players {
		cp.players[i] = p.Clone()
		tr := make(map[int][]string, len(b.transcript[i]))
		for turn, cmds := range b.transcript[i] {
			tr[turn] = slices.Clone(cmds)
		}
		cp.transcript[i] = tr
	}
	cp.reg = b.reg.clone()

	cp.weather = b.weather.clone(&cp)
	cp.terrain = b.terrain.clone(&cp)
	cp.global = b.global.clone(&cp)
	for i := range b.sides {
		cp.sides[i] = b.sides[i].clone(&cp)
	}
	cp.log = slices.Clone(b.log)
	return &cp
}

// SetDeciders replaces both deciders, typically on a clone used to play
// out hypothetical lines.
func (b *Battle) SetDeciders(d0, d1 Decider) {
	b.deciders = [2]Decider{d0, d1}
}

// Snapshot summarizes the observable state of the battle.
type Snapshot struct {
	Turn    int
	Phase   Phase
	Winner  int
	Decided bool
	Players [2]PlayerSnapshot
	Weather string
	Terrain string
	Global  []string
	Sides   [2][]string
}

// PlayerSnapshot is one side of a Snapshot.
type PlayerSnapshot struct {
	Active     int
	HP         []int
	Status     []string
	Stages     [][model.NumStages]int
	Volatiles  [][]string
	Score      float64
	Registered map[string]int
}

// Snapshot captures the current state.
func (b *Battle) Snapshot() Snapshot {
	s := Snapshot{
		Turn:    b.turn,
		Phase:   b.phase,
		Winner:  b.winner,
		Decided: b.decided,
		Weather: b.weather.Current(),
		Terrain: b.terrain.Current(),
		Global:  b.global.ActiveNames(),
	}
	for i, side := range b.sides {
		s.Sides[i] = side.ActiveNames()
	}
	for i, pl := range b.players {
		ps := PlayerSnapshot{Active: pl.Active, Score: pl.Score(), Registered: map[string]int{}}
		for _, c := range pl.Roster {
			ps.HP = append(ps.HP, c.HP())
			ps.Status = append(ps.Status, c.Status.Name)
			var st [model.NumStages]int
			for j := range st {
				st[j] = c.Stage(model.Stage(j))
			}
			ps.Stages = append(ps.Stages, st)
			ps.Volatiles = append(ps.Volatiles, c.VolatileNames())
		}
		s.Players[i] = ps
	}
	for ev := range numEvents {
		for _, h := range b.reg.Subjects(ev) {
			s.Players[h.Player].Registered[ev.String()]++
		}
	}
	return s
}
