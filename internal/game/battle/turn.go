package battle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmwork1/jpoke/internal/model"
)

// Phase is a step of the turn state machine.
type Phase uint8

const (
	PhaseSelect Phase = iota
	PhaseInitialSwitch
	PhaseCollect
	PhaseSwitch
	PhaseMove
	PhaseEnd1 // weather
	PhaseEnd2 // terrain and global fields
	PhaseEnd3 // status residuals
	PhaseEnd4 // volatiles
	PhaseEnd5 // side fields
	PhaseEnd6 // abilities and items
	PhaseFaintSwitch
)

var phaseNames = [...]string{
	"SELECT", "INITIAL_SWITCH", "COLLECT_COMMANDS", "SWITCH_PHASE", "MOVE_PHASE",
	"END_1", "END_2", "END_3", "END_4", "END_5", "END_6", "FAINT_SWITCH",
}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "PHASE?"
}

// Start runs selection and the lead switch-ins. It is idempotent.
func (b *Battle) Start() error {
	if b.started {
		return nil
	}
	b.phase = PhaseSelect
	for p := range b.players {
		if err := b.askSelection(p); err != nil {
			return err
		}
	}
	b.started = true

	b.phase = PhaseInitialSwitch
	order := b.leadOrder()
	for _, p := range order {
		b.enter(p, b.players[p].Selected[0])
	}
	for _, p := range order {
		b.announce(b.Active(p))
	}
	if err := b.resolveInterrupts(); err != nil {
		return err
	}
	b.checkWinner()
	return nil
}

// leadOrder orders the players by their leads' speed so that entry
// effects resolve fastest first.
func (b *Battle) leadOrder() []int {
	keys := make([]orderKey, 2)
	for p, pl := range b.players {
		lead := pl.Roster[pl.Selected[0]]
		keys[p] = orderKey{h: lead.Handle, speed: b.EffectiveSpeed(lead)}
	}
	hs := b.orderKeys(keys)
	return []int{hs[0].Player, hs[1].Player}
}

type phaseStep struct {
	phase Phase
	run   func() error
}

// PlayTurn advances the battle by one full turn.
func (b *Battle) PlayTurn() error {
	if err := b.Start(); err != nil {
		return err
	}
	if b.decided {
		return ErrBattleOver
	}
	b.turn++
	steps := []phaseStep{
		{PhaseCollect, b.collectCommands},
		{PhaseSwitch, b.switchPhase},
		{PhaseMove, b.movePhase},
		{PhaseEnd1, b.endWeather},
		{PhaseEnd2, b.endTerrain},
		{PhaseEnd3, b.endStep(EventEndResidual)},
		{PhaseEnd4, b.endStep(EventEndVolatile)},
		{PhaseEnd5, b.endSide},
		{PhaseEnd6, b.endAbility},
		{PhaseFaintSwitch, b.faintSwitch},
	}
	for _, s := range steps {
		if err := b.runPhase(s.phase, s.run); err != nil {
			return fmt.Errorf("turn %d %s: %w", b.turn, s.phase, err)
		}
		b.checkWinner()
	}
	return nil
}

// runPhase enters a phase. While any interrupt is pending only interrupt
// resolution runs; the phase body runs once everything is resolved.
func (b *Battle) runPhase(ph Phase, run func() error) error {
	b.phase = ph
	if b.decided {
		return nil
	}
	if b.Interrupted() {
		if err := b.resolveInterrupts(); err != nil {
			return err
		}
		if b.decided {
			return nil
		}
	}
	return run()
}

// Run plays turns until the battle is decided, the context is cancelled,
// or maxTurns is reached, in which case the higher score wins. maxTurns <= 0
// means no limit.
func (b *Battle) Run(ctx context.Context, maxTurns int) (int, error) {
	if err := b.Start(); err != nil {
		return Draw, err
	}
	for !b.decided {
		if err := ctx.Err(); err != nil {
			return Draw, err
		}
		if maxTurns > 0 && b.turn >= maxTurns {
			slog.Debug("turn limit reached", "turn", b.turn, "score1", b.Score(0), "score2", b.Score(1))
			b.decideByScore()
			break
		}
		if err := b.PlayTurn(); err != nil {
			return Draw, err
		}
	}
	return b.winner, nil
}

func (b *Battle) collectCommands() error {
	for p := range b.players {
		b.players[p].Queued = model.Command{}
		if b.Active(p) == nil {
			continue
		}
		if err := b.askCommand(p); err != nil {
			return err
		}
	}
	return nil
}

func (b *Battle) switchPhase() error {
	for _, h := range b.SpeedOrder() {
		pl := b.players[h.Player]
		cmd := pl.Queued
		if cmd.Kind != model.CmdSwitch {
			continue
		}
		pl.Queued = model.Command{}
		if pl.Active != h.Slot || !pl.IsSelected(cmd.Index) || pl.Roster[cmd.Index].Fainted() {
			continue
		}
		b.Switch(h.Player, cmd.Index)
	}
	return b.resolveInterrupts()
}

func (b *Battle) movePhase() error {
	for _, h := range b.ActionOrder() {
		if b.decided {
			return nil
		}
		pl := b.players[h.Player]
		c := b.Combatant(h)
		if pl.Active != h.Slot || c.Flags.SwitchedOut || c.Fainted() {
			continue
		}
		cmd := pl.Queued
		if !cmd.IsMove() {
			continue
		}
		pl.Queued = model.Command{}

		if b.FireBool(EventBeforeMove, &Context{Source: c, Target: b.Foe(c)}, true) {
			b.executeMove(c, cmd)
		}
		c.Flags.Moved = true

		if err := b.afterMoveInterrupts(); err != nil {
			return err
		}
	}
	return nil
}

// afterMoveInterrupts resolves what a move may have raised, in a fixed
// order: switches forced by the hit, then the user's pivot, then
// self-preservation switches.
func (b *Battle) afterMoveInterrupts() error {
	groups := [][]model.Interrupt{
		{model.InterruptHitSwitch, model.InterruptForcedOut},
		{model.InterruptPivot},
		{model.InterruptEmergency},
	}
	for _, kinds := range groups {
		if err := b.resolveInterrupts(kinds...); err != nil {
			return err
		}
	}
	return nil
}

func (b *Battle) endStep(ev Event) func() error {
	return func() error {
		b.FireAction(ev, nil)
		return nil
	}
}

func (b *Battle) endWeather() error {
	b.FireAction(EventEndWeather, nil)
	b.weather.TickAll()
	return nil
}

func (b *Battle) endTerrain() error {
	b.FireAction(EventEndTerrain, nil)
	b.terrain.TickAll()
	b.global.TickAll()
	return nil
}

func (b *Battle) endSide() error {
	b.FireAction(EventEndSide, nil)
	for _, s := range b.sides {
		s.TickAll()
	}
	return nil
}

func (b *Battle) endAbility() error {
	b.FireAction(EventEndAbility, nil)
	for _, pl := range b.players {
		pl.Queued = model.Command{}
		for _, c := range pl.Roster {
			c.Flags = model.TurnFlags{}
		}
		if c := pl.ActiveCombatant(); c != nil {
			c.TurnsActive++
		}
	}
	return nil
}

// faintSwitch replaces fainted actives until nobody needs replacing or the
// battle is decided. Replacements can faint on entry, hence the loop.
func (b *Battle) faintSwitch() error {
	for round := 0; ; round++ {
		b.checkWinner()
		if b.decided {
			return nil
		}
		if round >= maxChainRounds {
			panic(&model.InvariantError{Op: "faintSwitch",
				Detail: fmt.Sprintf("chain exceeded %d rounds", maxChainRounds)})
		}
		marked := false
		for _, pl := range b.players {
			if c := pl.ActiveCombatant(); c != nil && c.Fainted() && len(pl.Bench()) > 0 {
				pl.Interrupt = model.InterruptFainted
				marked = true
			}
		}
		if !marked {
			return nil
		}
		if err := b.resolveInterrupts(); err != nil {
			return err
		}
	}
}
