package model

import (
	"maps"
	"slices"
)

// StatusNone is the always-present empty primary status.
const StatusNone = "none"

// MoveSlot is one known move with its remaining power points.
type MoveSlot struct {
	Name  string
	PP    int
	MaxPP int
}

// StatusSlot holds the primary status and its counter
// (sleep turns left, toxic escalation, ...).
type StatusSlot struct {
	Name    string
	Counter int
}

// Volatile is a turn-scoped condition cleared on switch-out.
type Volatile struct {
	Counter int
	Source  Handle
}

// TurnFlags are per-turn mutable flags reset at the end of each turn.
type TurnFlags struct {
	SwitchedOut bool // left the field this turn
	Moved       bool // executed a move this turn
	Damaged     bool // lost HP to a direct hit this turn
}

// Combatant is a battling creature. It lives in its Player's roster
// for the whole battle and is addressed elsewhere by Handle.
type Combatant struct {
	Handle  Handle
	Spec    Spec
	Species string
	Level   int
	Types   []string

	stats  [NumStats]int
	hp     int
	stages [NumStages]int

	Ability string
	Item    string
	Moves   []MoveSlot

	Status    StatusSlot
	Volatiles map[string]*Volatile
	Flags     TurnFlags

	// TurnsActive counts turns since the last switch-in, starting at 1.
	TurnsActive int

	TeraType      string
	Terastallized bool

	AbilityRevealed bool
	ItemRevealed    bool
}

// NewCombatant creates a combatant at full HP from precomputed stats.
func NewCombatant(h Handle, spec Spec, types []string, stats [NumStats]int, moves []MoveSlot) *Combatant {
	if stats[StatHP] < 1 {
		violate("NewCombatant", "%s has max hp %d", spec.Species, stats[StatHP])
	}
	return &Combatant{
		Handle:    h,
		Spec:      spec,
		Species:   spec.Species,
		Level:     spec.Level,
		Types:     types,
		stats:     stats,
		hp:        stats[StatHP],
		Ability:   spec.Ability,
		Item:      spec.Item,
		Moves:     moves,
		Status:    StatusSlot{Name: StatusNone},
		Volatiles: make(map[string]*Volatile, 4),
		TeraType:  spec.TeraType,
	}
}

// Name returns the species name.
func (c *Combatant) Name() string { return c.Species }

// HP returns current HP.
func (c *Combatant) HP() int { return c.hp }

// MaxHP returns maximum HP.
func (c *Combatant) MaxHP() int { return c.stats[StatHP] }

// Fainted reports whether HP reached zero.
func (c *Combatant) Fainted() bool { return c.hp == 0 }

// HPRatio returns hp/maxHP in [0,1].
func (c *Combatant) HPRatio() float64 {
	return float64(c.hp) / float64(c.stats[StatHP])
}

// Stat returns the raw (unstaged) stat value.
func (c *Combatant) Stat(s Stat) int { return c.stats[s] }

// SetHP sets current HP, clamped to [0, maxHP].
func (c *Combatant) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	if hp > c.stats[StatHP] {
		hp = c.stats[StatHP]
	}
	c.hp = hp
}

// Damage removes up to n HP and returns the amount actually removed.
func (c *Combatant) Damage(n int) int {
	if n <= 0 {
		return 0
	}
	if n > c.hp {
		n = c.hp
	}
	c.hp -= n
	return n
}

// Heal restores up to n HP and returns the amount actually restored.
func (c *Combatant) Heal(n int) int {
	if n <= 0 || c.hp == 0 {
		return 0
	}
	if missing := c.stats[StatHP] - c.hp; n > missing {
		n = missing
	}
	c.hp += n
	return n
}

// Stage returns the current stage of s.
func (c *Combatant) Stage(s Stage) int { return c.stages[s] }

// SetStage stores a stage value. Out-of-range values are engine bugs.
func (c *Combatant) SetStage(s Stage, v int) {
	if v < MinStage || v > MaxStage {
		violate("SetStage", "%s stage %s=%d out of range", c.Species, s, v)
	}
	c.stages[s] = v
}

// AddStage shifts a stage by delta, clamping to [-6,6], and returns the
// delta actually applied.
func (c *Combatant) AddStage(s Stage, delta int) int {
	before := c.stages[s]
	after := min(max(before+delta, MinStage), MaxStage)
	c.stages[s] = after
	return after - before
}

// ResetStages zeroes all stages.
func (c *Combatant) ResetStages() {
	c.stages = [NumStages]int{}
}

// HasType reports whether t is one of the combatant's current types.
func (c *Combatant) HasType(t string) bool {
	for _, ct := range c.CurrentTypes() {
		if ct == t {
			return true
		}
	}
	return false
}

// CurrentTypes returns the defensive types, honoring terastallization.
func (c *Combatant) CurrentTypes() []string {
	if c.Terastallized && c.TeraType != "" {
		return []string{c.TeraType}
	}
	return c.Types
}

// HasVolatile reports whether the named volatile is present.
func (c *Combatant) HasVolatile(name string) bool {
	_, ok := c.Volatiles[name]
	return ok
}

// MoveIndex returns the slot of a known move or -1.
func (c *Combatant) MoveIndex(name string) int {
	for i, m := range c.Moves {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// HasPP reports whether any move has PP left.
func (c *Combatant) HasPP() bool {
	for _, m := range c.Moves {
		if m.PP > 0 {
			return true
		}
	}
	return false
}

// Clone returns an independent copy.
func (c *Combatant) Clone() *Combatant {
	cp := *c
	cp.Types = append([]string(nil), c.Types...)
	cp.Moves = append([]MoveSlot(nil), c.Moves...)
	cp.Spec.Moves = append([]string(nil), c.Spec.Moves...)
	cp.Volatiles = make(map[string]*Volatile, len(c.Volatiles))
	for name, v := range c.Volatiles {
		vv := *v
		cp.Volatiles[name] = &vv
	}
	return &cp
}

// VolatileNames returns the present volatile names in sorted order.
func (c *Combatant) VolatileNames() []string {
	return slices.Sorted(maps.Keys(c.Volatiles))
}
