// Command replaycheck replays recorded games and reports any that no
// longer reproduce. Arguments are replay files or directories of them.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tmwork1/jpoke/internal/replay"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(ctx, os.Args[1:]); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("usage: replaycheck <file-or-dir>...")
	}

	var files []string
	for _, arg := range args {
		matches, err := expand(arg)
		if err != nil {
			return err
		}
		files = append(files, matches...)
	}

	failed := 0
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		r, err := replay.Load(path)
		if err == nil {
			err = replay.Verify(ctx, r)
		}
		if err != nil {
			failed++
			slog.Warn("replay failed", "file", path, "err", err)
			continue
		}
		slog.Debug("replay ok", "file", path)
	}

	fmt.Printf("%d replays checked, %d failed\n", len(files), failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d replays did not reproduce", failed, len(files))
	}
	return nil
}

func expand(arg string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", arg, err)
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}
	matches, err := filepath.Glob(filepath.Join(arg, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", arg, err)
	}
	return matches, nil
}
