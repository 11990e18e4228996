package battle

import (
	"cmp"
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// EffectiveSpeed is the staged speed of c after EventModifySpeed handlers.
func (b *Battle) EffectiveSpeed(c *model.Combatant) int {
	base := model.ApplyStage(c.Stat(model.StatSpeed), c.Stage(model.StageSpeed))
	return b.FireInt(EventModifySpeed, &Context{Source: c, Target: b.Foe(c)}, base)
}

type orderKey struct {
	h        model.Handle
	priority int
	speed    int
}

// ActionOrder returns the handles of the actives that still act this turn,
// highest (priority, speed) first. Under trick room slower goes first within
// a priority bracket. Exact ties are shuffled with the battle generator.
func (b *Battle) ActionOrder() []model.Handle {
	reversed := b.global.IsActive(TrickRoom)
	keys := make([]orderKey, 0, 2)
	for p := range b.players {
		c := b.Active(p)
		if c == nil || c.Flags.SwitchedOut {
			continue
		}
		k := orderKey{h: c.Handle, speed: b.EffectiveSpeed(c)}
		if reversed {
			k.speed = -k.speed
		}
		if cmd := b.players[p].Queued; cmd.IsMove() {
			k.priority = b.movePriority(c, b.newActiveMove(c, cmd))
		}
		keys = append(keys, k)
	}
	return b.orderKeys(keys)
}

// SpeedOrder returns the handles of all actives, fastest first. It decides
// who resolves first when both sides act simultaneously outside the move
// phase (lead entry, interrupts).
func (b *Battle) SpeedOrder() []model.Handle {
	keys := make([]orderKey, 0, 2)
	for p := range b.players {
		if c := b.Active(p); c != nil {
			keys = append(keys, orderKey{h: c.Handle, speed: b.EffectiveSpeed(c)})
		}
	}
	return b.orderKeys(keys)
}

func (b *Battle) orderKeys(keys []orderKey) []model.Handle {
	compare := func(x, y orderKey) int {
		if c := cmp.Compare(y.priority, x.priority); c != 0 {
			return c
		}
		return cmp.Compare(y.speed, x.speed)
	}

	if len(keys) == 2 {
		c := compare(keys[0], keys[1])
		if c > 0 || (c == 0 && b.rng.IntN(2) == 1) {
			keys[0], keys[1] = keys[1], keys[0]
		}
	} else {
		slices.SortStableFunc(keys, compare)
		for i := 0; i < len(keys); {
			j := i + 1
			for j < len(keys) && compare(keys[i], keys[j]) == 0 {
				j++
			}
			if j-i > 1 {
				group := keys[i:j]
				b.rng.Shuffle(len(group), func(x, y int) { group[x], group[y] = group[y], group[x] })
			}
			i = j
		}
	}

	out := make([]model.Handle, len(keys))
	for i, k := range keys {
		out[i] = k.h
	}
	return out
}

// playerOrder lists both players, fastest active first; players without an
// active come last.
func (b *Battle) playerOrder() []int {
	out := make([]int, 0, 2)
	for _, h := range b.SpeedOrder() {
		out = append(out, h.Player)
	}
	for p := range b.players {
		if !slices.Contains(out, p) {
			out = append(out, p)
		}
	}
	return out
}
