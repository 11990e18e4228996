package battle

import (
	"fmt"
	"slices"

	"github.com/tmwork1/jpoke/internal/model"
)

// SelectionCommands lists SELECT_i for every roster slot of player p.
func (b *Battle) SelectionCommands(p int) []model.Command {
	roster := b.players[p].Roster
	out := make([]model.Command, len(roster))
	for i := range roster {
		out[i] = model.SelectCommand(i)
	}
	return out
}

// SwitchCommands lists SWITCH_i for every benched, non-fainted selected
// combatant of player p.
func (b *Battle) SwitchCommands(p int) []model.Command {
	bench := b.players[p].Bench()
	out := make([]model.Command, len(bench))
	for i, slot := range bench {
		out[i] = model.SwitchCommand(slot)
	}
	return out
}

// MoveCommands lists MOVE_i for every move with PP left, TERA_MOVE_i when
// terastallization is still available, and STRUGGLE when no move has PP.
// A choice-locked combatant is offered its locked move only.
func (b *Battle) MoveCommands(p int) []model.Command {
	c := b.Active(p)
	if c == nil {
		return nil
	}
	tera := b.canTera(p)
	locked := -1
	if v, ok := c.Volatiles[VolatileChoiceLock]; ok {
		locked = v.Counter
	}
	var out []model.Command
	for i, m := range c.Moves {
		if m.PP <= 0 || (locked >= 0 && i != locked) {
			continue
		}
		out = append(out, model.MoveCommand(i))
		if tera {
			out = append(out, model.TeraMoveCommand(i))
		}
	}
	if len(out) == 0 {
		out = append(out, model.StruggleCommand())
	}
	return out
}

// AvailableCommands lists the legal choices of player p at the current
// decision point.
func (b *Battle) AvailableCommands(p int) []model.Command {
	switch b.phase {
	case PhaseSelect:
		return b.SelectionCommands(p)
	case PhaseCollect:
		return append(b.MoveCommands(p), b.SwitchCommands(p)...)
	default:
		return b.SwitchCommands(p)
	}
}

func (b *Battle) canTera(p int) bool {
	pl := b.players[p]
	c := pl.ActiveCombatant()
	return c != nil && c.TeraType != "" && !pl.TeraUsed && !c.Terastallized
}

func illegal(p int, what string, cmd model.Command, options []model.Command) error {
	return fmt.Errorf("%w: player %d %s %s not in %v", ErrIllegalCommand, p+1, what, cmd, options)
}

// askSelection runs the selection decision of player p.
func (b *Battle) askSelection(p int) error {
	pl := b.players[p]
	picks := b.deciders[p].Select(b, p, b.selectSize)
	if len(picks) != b.selectSize {
		return fmt.Errorf("%w: player %d selected %d of %d", ErrIllegalCommand, p+1, len(picks), b.selectSize)
	}
	seen := make(map[int]bool, len(picks))
	for _, i := range picks {
		if i < 0 || i >= len(pl.Roster) || seen[i] {
			return fmt.Errorf("%w: player %d selection %v", ErrIllegalCommand, p+1, picks)
		}
		seen[i] = true
		b.record(p, model.SelectCommand(i))
	}
	pl.Selected = slices.Clone(picks)
	return nil
}

// askCommand runs the per-turn decision of player p and queues the result.
func (b *Battle) askCommand(p int) error {
	options := b.AvailableCommands(p)
	if len(options) == 0 {
		return nil
	}
	cmd := b.deciders[p].Command(b, p, options)
	if !slices.Contains(options, cmd) {
		return illegal(p, "command", cmd, options)
	}
	b.players[p].Queued = cmd
	b.record(p, cmd)
	return nil
}

// askReplacement asks player p which benched combatant to bring in.
func (b *Battle) askReplacement(p int) (int, error) {
	options := b.SwitchCommands(p)
	cmd := b.deciders[p].Replacement(b, p, options)
	if !slices.Contains(options, cmd) {
		return 0, illegal(p, "replacement", cmd, options)
	}
	b.record(p, cmd)
	return cmd.Index, nil
}
