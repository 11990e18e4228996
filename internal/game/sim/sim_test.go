package sim

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmwork1/jpoke/internal/replay"
)

type memorySink struct {
	mu   sync.Mutex
	recs []replay.Record
}

func (s *memorySink) Store(_ context.Context, r replay.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recs = append(s.recs, r)
	return nil
}

func defaultPairing(t *testing.T) [2]Team {
	t.Helper()
	teams, err := DefaultTeams()
	require.NoError(t, err)
	sand, ok := FindTeam(teams, "sand")
	require.True(t, ok)
	rain, ok := FindTeam(teams, "rain")
	require.True(t, ok)
	return [2]Team{sand, rain}
}

func TestDefaultTeams(t *testing.T) {
	teams, err := DefaultTeams()
	require.NoError(t, err)
	assert.Len(t, teams, 3)
	_, ok := FindTeam(teams, "snow")
	assert.False(t, ok)
}

func TestLoadTeams_Errors(t *testing.T) {
	dir := t.TempDir()
	one := filepath.Join(dir, "one.yaml")
	require.NoError(t, os.WriteFile(one, []byte("teams:\n  - name: solo\n    members: [{name: snorlax, level: 50}]\n"), 0o644))

	_, err := LoadTeams(one)
	assert.ErrorContains(t, err, "need at least 2 teams")
	_, err = LoadTeams(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	teams, err := LoadTeams("")
	require.NoError(t, err)
	assert.NotEmpty(t, teams)
}

func TestRunner_PlaysAndRecords(t *testing.T) {
	sink := &memorySink{}
	cfg := Config{Games: 12, Workers: 4, BaseSeed: 100, MaxTurns: 60}
	sum, err := NewRunner(cfg, defaultPairing(t), sink).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 12, sum.Games)
	assert.Equal(t, 12, sum.Wins[0]+sum.Wins[1]+sum.Draws)
	assert.Len(t, sink.recs, 12)

	for _, r := range sink.recs {
		assert.NoError(t, replay.Verify(context.Background(), r), "seed %d", r.Seed)
	}
}

func TestRunner_Deterministic(t *testing.T) {
	r := NewRunner(Config{MaxTurns: 60}, defaultPairing(t))
	a, err := r.Play(context.Background(), 9)
	require.NoError(t, err)
	b, err := r.Play(context.Background(), 9)
	require.NoError(t, err)

	da, err := a.Digest()
	require.NoError(t, err)
	db, err := b.Digest()
	require.NoError(t, err)
	assert.Equal(t, da, db)
}

func TestRunner_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewRunner(Config{Games: 3}, defaultPairing(t)).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDirSink(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "replays")
	sink, err := NewDirSink(dir)
	require.NoError(t, err)

	r := NewRunner(Config{MaxTurns: 30}, defaultPairing(t))
	rec, err := r.Play(context.Background(), 1)
	require.NoError(t, err)
	require.NoError(t, sink.Store(context.Background(), rec))

	digest, err := rec.Digest()
	require.NoError(t, err)
	got, err := replay.Load(filepath.Join(dir, digest+".yaml"))
	require.NoError(t, err)
	assert.NoError(t, replay.Verify(context.Background(), got))
}
