package sim

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmwork1/jpoke/internal/replay"
)

// DirSink writes each game to <dir>/<digest>.yaml.
type DirSink struct {
	dir string
}

// NewDirSink creates dir if needed.
func NewDirSink(dir string) (*DirSink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating replay dir %s: %w", dir, err)
	}
	return &DirSink{dir: dir}, nil
}

// Store implements Sink.
func (s *DirSink) Store(_ context.Context, r replay.Record) error {
	digest, err := r.Digest()
	if err != nil {
		return err
	}
	return replay.Save(filepath.Join(s.dir, digest+".yaml"), r)
}
