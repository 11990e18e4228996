package sim

import (
	"math/rand/v2"

	"github.com/tmwork1/jpoke/internal/game/battle"
	"github.com/tmwork1/jpoke/internal/model"
)

// RandomDecider picks uniformly among the offered options. It draws from
// its own generator so the battle's random stream only depends on the seed
// and the chosen commands, which keeps recorded games replayable.
type RandomDecider struct {
	rng *rand.Rand
}

// NewRandomDecider returns a decider seeded with seed.
func NewRandomDecider(seed uint64) *RandomDecider {
	return &RandomDecider{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Select picks size distinct roster slots; the first one leads.
func (d *RandomDecider) Select(b *battle.Battle, p, size int) []int {
	return d.rng.Perm(len(b.Player(p).Roster))[:size]
}

// Command picks any offered command.
func (d *RandomDecider) Command(_ *battle.Battle, _ int, options []model.Command) model.Command {
	return options[d.rng.IntN(len(options))]
}

// Replacement picks any benched combatant.
func (d *RandomDecider) Replacement(_ *battle.Battle, _ int, options []model.Command) model.Command {
	return options[d.rng.IntN(len(options))]
}
