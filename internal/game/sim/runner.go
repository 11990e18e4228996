// Package sim runs batches of seeded battles between two teams with
// random deciders and hands every finished game to replay sinks.
package sim

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/tmwork1/jpoke/internal/game/battle"
	"github.com/tmwork1/jpoke/internal/replay"
)

// Config controls a batch.
type Config struct {
	Games      int
	Workers    int // <= 0 means GOMAXPROCS
	BaseSeed   uint64
	MaxTurns   int
	SelectSize int
}

// Summary aggregates the outcome of a batch.
type Summary struct {
	Games int
	Wins  [2]int
	Draws int
	Turns int
}

// Sink receives finished games.
type Sink interface {
	Store(ctx context.Context, r replay.Record) error
}

// Runner plays games concurrently. Battles are independent, so each one
// runs on its own goroutine with no shared state besides the sinks.
type Runner struct {
	cfg   Config
	teams [2]Team
	sinks []Sink
}

// NewRunner creates a runner for one pairing.
func NewRunner(cfg Config, teams [2]Team, sinks ...Sink) *Runner {
	return &Runner{cfg: cfg, teams: teams, sinks: sinks}
}

// Run plays cfg.Games battles with seeds BaseSeed, BaseSeed+1, ... and
// stops at the first error.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	workers := r.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		mu  sync.Mutex
		sum Summary
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range r.cfg.Games {
		if gctx.Err() != nil {
			break
		}
		seed := r.cfg.BaseSeed + uint64(i)
		g.Go(func() error {
			rec, err := r.Play(gctx, seed)
			if err != nil {
				return err
			}
			for _, s := range r.sinks {
				if err := s.Store(gctx, rec); err != nil {
					return fmt.Errorf("storing game %d: %w", seed, err)
				}
			}

			mu.Lock()
			defer mu.Unlock()
			sum.Games++
			sum.Turns += rec.Turns
			if rec.Winner == battle.Draw {
				sum.Draws++
			} else {
				sum.Wins[rec.Winner]++
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}
	if err := ctx.Err(); err != nil {
		return sum, err
	}
	slog.Info("batch finished",
		"games", sum.Games,
		"wins1", sum.Wins[0],
		"wins2", sum.Wins[1],
		"draws", sum.Draws,
		"turns", sum.Turns)
	return sum, nil
}

// Play runs a single game with the given seed and returns its record.
func (r *Runner) Play(ctx context.Context, seed uint64) (replay.Record, error) {
	opts := battle.Options{Seed: seed, SelectSize: r.cfg.SelectSize}
	for i, t := range r.teams {
		opts.Players[i] = battle.PlayerOptions{
			Name:    t.Name,
			Team:    t.Members,
			Decider: NewRandomDecider(seed*2 + uint64(i)),
		}
	}
	b, err := battle.New(opts)
	if err != nil {
		return replay.Record{}, fmt.Errorf("game %d: %w", seed, err)
	}
	winner, err := b.Run(ctx, r.cfg.MaxTurns)
	if err != nil {
		return replay.Record{}, fmt.Errorf("game %d: %w", seed, err)
	}
	slog.Debug("game finished", "seed", seed, "turns", b.Turn(), "winner", winner)
	return replay.FromBattle(b, r.cfg.MaxTurns), nil
}
