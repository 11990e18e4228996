package battle

import "math/rand/v2"

// ChanceKind classifies a probability check so tests can pin its outcome.
type ChanceKind uint8

const (
	ChanceAccuracy  ChanceKind = iota // move accuracy
	ChanceSecondary                   // secondary-effect procs and flinches
	ChanceCritical                    // critical hits
	ChanceStatus                      // status-driven checks: full paralysis, thaw, confusion
)

// Chance resolves probability checks. Production code always uses
// RNGChance; tests substitute a fixed-outcome strategy. Implementations must
// draw randomness only from the rng they are given.
type Chance interface {
	Check(kind ChanceKind, num, den int, rng *rand.Rand) bool
}

// RNGChance draws every check from the battle generator.
type RNGChance struct{}

// Check succeeds with probability num/den. Certain and impossible checks
// consume no randomness.
func (RNGChance) Check(_ ChanceKind, num, den int, rng *rand.Rand) bool {
	if num >= den {
		return true
	}
	if num <= 0 {
		return false
	}
	return rng.IntN(den) < num
}

// FixedChance pins the outcome of the listed kinds and falls back to the
// generator for the rest.
type FixedChance map[ChanceKind]bool

// Check implements Chance.
func (f FixedChance) Check(kind ChanceKind, num, den int, rng *rand.Rand) bool {
	if v, ok := f[kind]; ok {
		return v
	}
	return RNGChance{}.Check(kind, num, den, rng)
}

// AlwaysHit is a fixed strategy for deterministic damage tests: moves never
// miss, secondaries and crits never proceed, status checks never trigger.
var AlwaysHit = FixedChance{
	ChanceAccuracy:  true,
	ChanceSecondary: false,
	ChanceCritical:  false,
	ChanceStatus:    false,
}

// chance runs one check through the battle's strategy.
func (b *Battle) chance(kind ChanceKind, num, den int) bool {
	return b.chanceFn.Check(kind, num, den, b.rng)
}
