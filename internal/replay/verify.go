package replay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tmwork1/jpoke/internal/game/battle"
)

// Rebuild constructs a fresh battle from r whose deciders replay the
// recorded commands.
func Rebuild(r Record) (*battle.Battle, [2]*Script, error) {
	var scripts [2]*Script
	opts := battle.Options{Seed: r.Seed, SelectSize: r.SelectSize}
	for i, p := range r.Players {
		scripts[i] = NewScript(p)
		opts.Players[i] = battle.PlayerOptions{Name: p.Name, Team: p.Team, Decider: scripts[i]}
	}
	b, err := battle.New(opts)
	if err != nil {
		return nil, scripts, fmt.Errorf("rebuilding battle: %w", err)
	}
	return b, scripts, nil
}

// Replay rebuilds r and plays it to the end.
func Replay(ctx context.Context, r Record) (*battle.Battle, error) {
	b, scripts, err := Rebuild(r)
	if err != nil {
		return nil, err
	}
	if _, err := b.Run(ctx, r.MaxTurns); err != nil {
		return b, fmt.Errorf("replaying seed %d: %w", r.Seed, err)
	}
	for i, s := range scripts {
		if s.bad > 0 {
			return b, fmt.Errorf("%w: player %d has %d unparsable commands", ErrMismatch, i+1, s.bad)
		}
		if s.Remaining() > 0 {
			return b, fmt.Errorf("%w: player %d has %d unused commands", ErrMismatch, i+1, s.Remaining())
		}
	}
	return b, nil
}

// Verify replays r and checks that the replay ends the same way and
// records exactly the same commands.
func Verify(ctx context.Context, r Record) error {
	b, err := Replay(ctx, r)
	if err != nil {
		return err
	}
	got := FromBattle(b, r.MaxTurns)
	if got.Winner != r.Winner || got.Turns != r.Turns {
		return fmt.Errorf("%w: winner %d after %d turns, recorded %d after %d",
			ErrMismatch, got.Winner, got.Turns, r.Winner, r.Turns)
	}

	want, err := r.Digest()
	if err != nil {
		return err
	}
	have, err := got.Digest()
	if err != nil {
		return err
	}
	if want != have {
		return fmt.Errorf("%w: digest %s, recorded %s", ErrMismatch, have, want)
	}
	slog.Debug("replay verified", "seed", r.Seed, "turns", r.Turns, "digest", want)
	return nil
}
