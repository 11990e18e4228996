package model

// Player is one side of a battle: its roster arena, the selected subset,
// the active index and the queued command.
type Player struct {
	Index    int
	Name     string
	Roster   []*Combatant
	Selected []int
	Active   int // roster index, -1 when nobody is on the field

	Queued    Command
	Interrupt Interrupt
	TeraUsed  bool
}

// NewPlayer creates a player with no active combatant.
func NewPlayer(index int, name string) *Player {
	return &Player{Index: index, Name: name, Active: -1}
}

// ActiveCombatant returns the combatant on the field, or nil.
func (p *Player) ActiveCombatant() *Combatant {
	if p.Active < 0 {
		return nil
	}
	return p.Roster[p.Active]
}

// IsSelected reports whether roster slot i was brought to the battle.
func (p *Player) IsSelected(i int) bool {
	for _, s := range p.Selected {
		if s == i {
			return true
		}
	}
	return false
}

// Bench returns the roster slots that could be switched in right now:
// selected, not fainted and not active.
func (p *Player) Bench() []int {
	bench := make([]int, 0, len(p.Selected))
	for _, i := range p.Selected {
		if i == p.Active || p.Roster[i].Fainted() {
			continue
		}
		bench = append(bench, i)
	}
	return bench
}

// Alive counts selected combatants that have not fainted.
func (p *Player) Alive() int {
	n := 0
	for _, i := range p.Selected {
		if !p.Roster[i].Fainted() {
			n++
		}
	}
	return n
}

// Score is the survival score: remaining non-fainted selected combatants plus
// a fractional HP-ratio tie-break that always stays below 1.
func (p *Player) Score() float64 {
	alive := 0
	ratio := 0.0
	for _, i := range p.Selected {
		c := p.Roster[i]
		if c.Fainted() {
			continue
		}
		alive++
		ratio += c.HPRatio()
	}
	if alive == 0 {
		return 0
	}
	return float64(alive) + ratio/float64(len(p.Selected)+1)
}

// Clone deep-copies the player and its roster arena.
func (p *Player) Clone() *Player {
	cp := *p
	cp.Roster = make([]*Combatant, len(p.Roster))
	for i, c := range p.Roster {
		cp.Roster[i] = c.Clone()
	}
	cp.Selected = append([]int(nil), p.Selected...)
	return &cp
}
