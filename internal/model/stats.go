package model

// Stat indexes the six permanent stats of a combatant.
type Stat uint8

const (
	StatHP Stat = iota
	StatAttack
	StatDefense
	StatSpAttack
	StatSpDefense
	StatSpeed

	NumStats = 6
)

var statNames = [NumStats]string{"hp", "atk", "def", "spa", "spd", "spe"}

func (s Stat) String() string {
	if int(s) < NumStats {
		return statNames[s]
	}
	return "stat?"
}

// StatByName resolves a short stat name ("atk", "spe", ...).
func StatByName(name string) (Stat, bool) {
	for i, n := range statNames {
		if n == name {
			return Stat(i), true
		}
	}
	return 0, false
}

// Stage indexes the six stat stages (ranks).
// Accuracy is a net stage: evasion changes are folded into it.
type Stage uint8

const (
	StageAttack Stage = iota
	StageDefense
	StageSpAttack
	StageSpDefense
	StageSpeed
	StageAccuracy

	NumStages = 6
)

// Stage bounds.
const (
	MinStage = -6
	MaxStage = 6
)

var stageNames = [NumStages]string{"atk", "def", "spa", "spd", "spe", "acc"}

func (s Stage) String() string {
	if int(s) < NumStages {
		return stageNames[s]
	}
	return "stage?"
}

// StageOf maps a non-HP stat to its stage slot.
func StageOf(s Stat) Stage {
	switch s {
	case StatAttack:
		return StageAttack
	case StatDefense:
		return StageDefense
	case StatSpAttack:
		return StageSpAttack
	case StatSpDefense:
		return StageSpDefense
	case StatSpeed:
		return StageSpeed
	}
	panic(&InvariantError{Op: "StageOf", Detail: "hp has no stage"})
}

// StageMultiplier returns the stage multiplier as an exact fraction:
// (2+stage)/2 for stage >= 0, 2/(2-stage) otherwise.
func StageMultiplier(stage int) (num, den int) {
	if stage >= 0 {
		return 2 + stage, 2
	}
	return 2, 2 - stage
}

// ApplyStage scales value by the stage multiplier with integer truncation.
func ApplyStage(value, stage int) int {
	num, den := StageMultiplier(stage)
	return value * num / den
}

// AccuracyMultiplier returns the accuracy stage fraction: (3+s)/3 or 3/(3-s).
func AccuracyMultiplier(stage int) (num, den int) {
	if stage >= 0 {
		return 3 + stage, 3
	}
	return 3, 3 - stage
}
