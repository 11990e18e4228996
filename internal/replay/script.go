package replay

import (
	"maps"
	"slices"

	"github.com/tmwork1/jpoke/internal/game/battle"
	"github.com/tmwork1/jpoke/internal/model"
)

// Script is a battle.Decider that answers every decision point with the
// next recorded command of its player. When the recording runs out or the
// recorded command no longer parses, it answers NONE, which the battle
// rejects as an illegal command.
type Script struct {
	queue []model.Command
	bad   int
}

// NewScript flattens a player's per-turn commands in turn order.
func NewScript(p Player) *Script {
	s := &Script{}
	for _, turn := range slices.Sorted(maps.Keys(p.Commands)) {
		for _, name := range p.Commands[turn] {
			cmd, err := model.ParseCommand(name)
			if err != nil {
				s.bad++
				cmd = model.Command{}
			}
			s.queue = append(s.queue, cmd)
		}
	}
	return s
}

// Remaining reports how many recorded commands have not been consumed.
func (s *Script) Remaining() int { return len(s.queue) }

func (s *Script) next() model.Command {
	if len(s.queue) == 0 {
		return model.Command{}
	}
	cmd := s.queue[0]
	s.queue = s.queue[1:]
	return cmd
}

// Select implements battle.Decider.
func (s *Script) Select(_ *battle.Battle, _ int, size int) []int {
	picks := make([]int, 0, size)
	for range size {
		cmd := s.next()
		if cmd.Kind != model.CmdSelect {
			// Out-of-range picks fail selection validation.
			picks = append(picks, -1)
			continue
		}
		picks = append(picks, cmd.Index)
	}
	return picks
}

// Command implements battle.Decider.
func (s *Script) Command(*battle.Battle, int, []model.Command) model.Command {
	return s.next()
}

// Replacement implements battle.Decider.
func (s *Script) Replacement(*battle.Battle, int, []model.Command) model.Command {
	return s.next()
}
