package battle

import (
	"fmt"
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// maxChainRounds bounds interrupt and faint-switch chains. Every round
// consumes a benched combatant or ends the chain, so a longer chain is an
// engine bug.
const maxChainRounds = 4 * MaxTeamSize

// RequestInterrupt flags a pending forced action on player p. A pending
// interrupt is never overwritten.
func (b *Battle) RequestInterrupt(p int, kind model.Interrupt) bool {
	pl := b.players[p]
	if pl.Interrupt != model.InterruptNone || len(pl.Bench()) == 0 {
		return false
	}
	pl.Interrupt = kind
	return true
}

// RequestSwitch asks for an out-of-turn replacement of player p's active.
// The owner's decider picks the replacement when the next phase begins.
// The request itself is not part of the transcript, so a replay of a battle
// that used it needs the same request issued at the same point.
func (b *Battle) RequestSwitch(p int) bool {
	if b.decided || !b.started {
		return false
	}
	return b.RequestInterrupt(p, model.InterruptRequested)
}

// Interrupted reports whether any player has a pending interrupt.
func (b *Battle) Interrupted() bool {
	for _, pl := range b.players {
		if pl.Interrupt != model.InterruptNone {
			return true
		}
	}
	return false
}

// resolveInterrupts resolves the pending interrupts of the given kinds
// (any kind when none are given), fastest side first, until none remain.
// Switch-ins can raise new interrupts, which are picked up by the next round.
func (b *Battle) resolveInterrupts(kinds ...model.Interrupt) error {
	for round := 0; ; round++ {
		b.checkWinner()
		if b.decided {
			return nil
		}
		var pending []int
		for _, p := range b.playerOrder() {
			k := b.players[p].Interrupt
			if k != model.InterruptNone && (len(kinds) == 0 || slices.Contains(kinds, k)) {
				pending = append(pending, p)
			}
		}
		if len(pending) == 0 {
			return nil
		}
		if round >= maxChainRounds {
			panic(&model.InvariantError{Op: "resolveInterrupts",
				Detail: fmt.Sprintf("chain exceeded %d rounds", maxChainRounds)})
		}
		for _, p := range pending {
			if err := b.resolveInterrupt(p); err != nil {
				return err
			}
		}
	}
}

// resolveInterrupt performs the forced switch of player p and clears the
// flag. Forced-out replacements are random; the rest are the owner's call.
func (b *Battle) resolveInterrupt(p int) error {
	pl := b.players[p]
	kind := pl.Interrupt
	pl.Interrupt = model.InterruptNone

	bench := pl.Bench()
	if len(bench) == 0 {
		return nil
	}
	if c := pl.ActiveCombatant(); c != nil && !c.Fainted() && kind == model.InterruptFainted {
		return nil
	}

	var slot int
	if kind == model.InterruptForcedOut {
		slot = bench[b.rng.IntN(len(bench))]
	} else {
		var err error
		if slot, err = b.askReplacement(p); err != nil {
			return err
		}
	}

	if c := pl.ActiveCombatant(); c != nil {
		b.Log(c.Handle, "", fmt.Sprintf("%s leaves the field (%s)", c.Name(), kind))
		b.SwitchOut(p)
	}
	b.SwitchIn(p, slot)
	return nil
}
