package battle

import "github.com/tmwork1/jpoke/internal/model"

// Decider makes the choices of one player. The battle validates every answer
// against the options it offered; an illegal choice aborts the turn with
// ErrIllegalCommand.
type Decider interface {
	// Select picks size distinct roster slots; the first one leads.
	Select(b *Battle, player, size int) []int
	// Command picks the turn's action from options.
	Command(b *Battle, player int, options []model.Command) model.Command
	// Replacement picks which benched combatant enters after a faint or
	// an owner-chosen forced switch.
	Replacement(b *Battle, player int, options []model.Command) model.Command
}

// FirstOption is a decider that always takes the first option and leads
// with the first roster slots. Useful as a deterministic baseline.
type FirstOption struct{}

// Select implements Decider.
func (FirstOption) Select(_ *Battle, _ int, size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = i
	}
	return out
}

// Command implements Decider.
func (FirstOption) Command(_ *Battle, _ int, options []model.Command) model.Command {
	return options[0]
}

// Replacement implements Decider.
func (FirstOption) Replacement(_ *Battle, _ int, options []model.Command) model.Command {
	return options[0]
}
