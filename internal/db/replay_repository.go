package db

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tmwork1/jpoke/internal/replay"
)

// ReplaySummary is one row of a replay listing.
type ReplaySummary struct {
	Digest    string
	Seed      uint64
	Winner    int
	Turns     int
	Players   [2]string
	CreatedAt time.Time
}

// ReplayRepository stores replay records in PostgreSQL, keyed by digest.
type ReplayRepository struct {
	pool *pgxpool.Pool
}

// NewReplayRepository creates a new repository.
func NewReplayRepository(pool *pgxpool.Pool) *ReplayRepository {
	return &ReplayRepository{pool: pool}
}

// Store saves a record. Storing the same game twice is a no-op.
func (r *ReplayRepository) Store(ctx context.Context, rec replay.Record) error {
	digest, err := rec.Digest()
	if err != nil {
		return err
	}
	var body bytes.Buffer
	if err := replay.Encode(&body, rec); err != nil {
		return err
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for replay %s: %w", digest, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("rollback failed", "digest", digest, "error", err)
		}
	}()

	tag, err := tx.Exec(ctx,
		`INSERT INTO replays (digest, seed, winner, turns, max_turns, body)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (digest) DO NOTHING`,
		digest, int64(rec.Seed), rec.Winner, rec.Turns, rec.MaxTurns, body.String(),
	)
	if err != nil {
		return fmt.Errorf("inserting replay %s: %w", digest, err)
	}
	if tag.RowsAffected() == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for i, p := range rec.Players {
		batch.Queue(
			`INSERT INTO replay_players (digest, player_index, name, selected) VALUES ($1, $2, $3, $4)`,
			digest, i, p.Name, joinInts(p.Selected),
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("inserting players of replay %s: %w", digest, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing replay %s: %w", digest, err)
	}
	return nil
}

// Get loads a record by digest. Returns nil, nil if it does not exist.
func (r *ReplayRepository) Get(ctx context.Context, digest string) (*replay.Record, error) {
	var body string
	err := r.pool.QueryRow(ctx, `SELECT body FROM replays WHERE digest = $1`, digest).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying replay %s: %w", digest, err)
	}
	rec, err := replay.Decode(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", digest, err)
	}
	return &rec, nil
}

// ListByPlayer returns the most recent replays in which a side named name
// took part, newest first.
func (r *ReplayRepository) ListByPlayer(ctx context.Context, name string, limit int) ([]ReplaySummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT r.digest, r.seed, r.winner, r.turns, r.created_at, p1.name, p2.name
		 FROM replays r
		 JOIN replay_players p1 ON p1.digest = r.digest AND p1.player_index = 0
		 JOIN replay_players p2 ON p2.digest = r.digest AND p2.player_index = 1
		 WHERE p1.name = $1 OR p2.name = $1
		 ORDER BY r.created_at DESC, r.digest
		 LIMIT $2`, name, limit)
	if err != nil {
		return nil, fmt.Errorf("listing replays of %q: %w", name, err)
	}
	defer rows.Close()

	var out []ReplaySummary
	for rows.Next() {
		var (
			s    ReplaySummary
			seed int64
		)
		if err := rows.Scan(&s.Digest, &seed, &s.Winner, &s.Turns, &s.CreatedAt, &s.Players[0], &s.Players[1]); err != nil {
			return nil, fmt.Errorf("scanning replay row: %w", err)
		}
		s.Seed = uint64(seed)
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating replay rows: %w", err)
	}
	return out, nil
}

// Count returns the number of stored replays.
func (r *ReplayRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM replays`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting replays: %w", err)
	}
	return n, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
