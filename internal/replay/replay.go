// Package replay records finished battles and plays them back.
//
// A Record holds everything needed to rebuild a battle: the seed, the
// selection size, each side's full team and selection, and the commands
// each side issued per turn. Rebuilding a Record and feeding the recorded
// commands back reproduces the original game.
package replay

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"

	"github.com/tmwork1/jpoke/internal/game/battle"
	"github.com/tmwork1/jpoke/internal/model"
)

// ErrMismatch is returned by Verify when a replay does not reproduce the
// recorded game.
var ErrMismatch = errors.New("replay mismatch")

// Record is the persisted form of a battle.
type Record struct {
	Seed       uint64    `yaml:"seed"`
	SelectSize int       `yaml:"select_size"`
	MaxTurns   int       `yaml:"max_turns"`
	Turns      int       `yaml:"turns"`
	Winner     int       `yaml:"winner"`
	Players    [2]Player `yaml:"players"`
}

// Player is one side of a Record.
type Player struct {
	Name     string           `yaml:"name"`
	Selected []int            `yaml:"selected,flow"`
	Team     []model.Spec     `yaml:"team"`
	Commands map[int][]string `yaml:"commands"`
}

// FromBattle records b. maxTurns is the limit the battle was run with.
func FromBattle(b *battle.Battle, maxTurns int) Record {
	tr := b.Transcript()
	winner, _ := b.Winner()
	r := Record{
		Seed:       tr.Seed,
		SelectSize: b.SelectSize(),
		MaxTurns:   maxTurns,
		Turns:      b.Turn(),
		Winner:     winner,
	}
	for i, p := range tr.Players {
		r.Players[i] = Player{
			Name:     p.Name,
			Selected: p.Selected,
			Team:     p.Team,
			Commands: p.Commands,
		}
	}
	return r
}

// Encode writes r as YAML.
func Encode(w io.Writer, r Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding replay: %w", err)
	}
	return enc.Close()
}

// Decode reads a YAML record.
func Decode(rd io.Reader) (Record, error) {
	var r Record
	if err := yaml.NewDecoder(rd).Decode(&r); err != nil {
		return Record{}, fmt.Errorf("decoding replay: %w", err)
	}
	if len(r.Players[0].Team) == 0 || len(r.Players[1].Team) == 0 {
		return Record{}, fmt.Errorf("decoding replay: empty team")
	}
	return r, nil
}

// Digest returns a hex blake2b-256 hash of the canonical encoding of r.
// Two records with the same digest describe the same game.
func (r Record) Digest() (string, error) {
	raw, err := yaml.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshaling replay: %w", err)
	}
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:]), nil
}

// Load reads a record from a file.
func Load(path string) (Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return Record{}, fmt.Errorf("opening replay %s: %w", path, err)
	}
	defer f.Close()

	r, err := Decode(f)
	if err != nil {
		return Record{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Save writes a record to a file, replacing any previous content.
func Save(path string, r Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating replay %s: %w", path, err)
	}
	if err := Encode(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
