package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/tmwork1/jpoke/internal/config"
	"github.com/tmwork1/jpoke/internal/db"
	"github.com/tmwork1/jpoke/internal/game/sim"
)

const ConfigPath = "config/battlesim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("JPOKE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulator(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, err := cfg.SlogLevel()
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))
	slog.Info("config loaded", "games", cfg.Games, "workers", cfg.Workers, "seed", cfg.BaseSeed, "max_turns", cfg.MaxTurns)

	teams, err := sim.LoadTeams(cfg.TeamsFile)
	if err != nil {
		return fmt.Errorf("loading teams: %w", err)
	}
	var pairing [2]sim.Team
	for i, name := range []string{cfg.Team1, cfg.Team2} {
		t, ok := sim.FindTeam(teams, name)
		if !ok {
			return fmt.Errorf("team %q not found", name)
		}
		pairing[i] = t
	}

	var sinks []sim.Sink
	if cfg.ReplayDir != "" {
		dir, err := sim.NewDirSink(cfg.ReplayDir)
		if err != nil {
			return err
		}
		sinks = append(sinks, dir)
		slog.Info("writing replays", "dir", cfg.ReplayDir)
	}

	if cfg.Database.Enabled {
		dsn := cfg.Database.DSN()
		database, err := db.New(ctx, dsn)
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, dsn); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
		sinks = append(sinks, db.NewReplayRepository(database.Pool()))
	}

	runner := sim.NewRunner(sim.Config{
		Games:      cfg.Games,
		Workers:    cfg.Workers,
		BaseSeed:   cfg.BaseSeed,
		MaxTurns:   cfg.MaxTurns,
		SelectSize: cfg.SelectSize,
	}, pairing, sinks...)

	sum, err := runner.Run(ctx)
	if err != nil {
		return fmt.Errorf("running batch: %w", err)
	}
	fmt.Printf("%s vs %s: %d games, %d-%d, %d draws, %.1f turns/game\n",
		pairing[0].Name, pairing[1].Name, sum.Games, sum.Wins[0], sum.Wins[1], sum.Draws,
		float64(sum.Turns)/float64(max(sum.Games, 1)))
	return nil
}
