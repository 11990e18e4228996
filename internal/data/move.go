package data

import (
	"fmt"
	"slices"
)

// Category is the damage category of a move.
type Category string

const (
	Physical Category = "physical"
	Special  Category = "special"
	Status   Category = "status"
)

// Move targets.
const (
	TargetNormal   = "normal"    // the opposing active combatant
	TargetSelf     = "self"      // the user
	TargetAllySide = "ally-side" // the user's side of the field
	TargetFoeSide  = "foe-side"  // the opposing side of the field
	TargetField    = "field"     // the whole battlefield
)

// Move flags.
const (
	FlagContact       = "contact"
	FlagBypassProtect = "bypass-protect"
	FlagSound         = "sound"
	// FlagTargetOffense reads the defender's attack and attack stage.
	FlagTargetOffense = "target-offense"
	// FlagDefenseOffense reads the attacker's defense as its offense stat.
	FlagDefenseOffense = "defense-offense"
)

// MoveDef is the static description of a move. Power 0 means the move deals
// no direct damage; Accuracy 0 means it cannot miss.
type MoveDef struct {
	Name      string   `yaml:"-"`
	Type      string   `yaml:"type"`
	Category  Category `yaml:"category"`
	PP        int      `yaml:"pp"`
	Power     int      `yaml:"power"`
	Accuracy  int      `yaml:"accuracy"`
	Priority  int      `yaml:"priority"`
	Target    string   `yaml:"target"`
	CritStage int      `yaml:"crit_stage"`
	Flags     []string `yaml:"flags"`
}

// HasFlag reports whether the move carries flag f.
func (m *MoveDef) HasFlag(f string) bool {
	return slices.Contains(m.Flags, f)
}

// Damaging reports whether the move has a base power.
func (m *MoveDef) Damaging() bool {
	return m.Power > 0
}

// CanMiss reports whether the move rolls accuracy at all.
func (m *MoveDef) CanMiss() bool {
	return m.Accuracy > 0
}

// TargetsFoe reports whether the move is aimed at the opposing combatant.
func (m *MoveDef) TargetsFoe() bool {
	return m.Target == TargetNormal
}

// Move returns the move definition.
func Move(name string) (*MoveDef, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	m, ok := moveTable[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMove, name)
	}
	return m, nil
}
