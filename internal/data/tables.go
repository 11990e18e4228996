package data

import (
	"embed"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tmwork1/jpoke/internal/model"
)

//go:embed tables/*.yaml
var tableFS embed.FS

// Lookup errors. A miss means the data collaborator is broken or the caller
// passed a name that does not exist; both are fatal for battle construction.
var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
	ErrUnknownNature  = errors.New("unknown nature")
	ErrUnknownType    = errors.New("unknown type")
)

var (
	loadOnce sync.Once
	loadErr  error

	speciesTable map[string]*SpeciesDef
	moveTable    map[string]*MoveDef
	typeChart    map[string]map[string]float64
	natureTable  map[string]natureDef
)

// Load parses the embedded tables. It is safe to call repeatedly; accessors
// call it on first use.
func Load() error {
	loadOnce.Do(func() {
		loadErr = load()
	})
	return loadErr
}

func load() error {
	if err := decodeTable("tables/types.yaml", &typeChart); err != nil {
		return err
	}

	if err := decodeTable("tables/species.yaml", &speciesTable); err != nil {
		return err
	}
	for name, s := range speciesTable {
		s.Name = name
		for _, t := range s.Types {
			if _, ok := typeChart[t]; !ok {
				return fmt.Errorf("species %s: %w %q", name, ErrUnknownType, t)
			}
		}
	}

	if err := decodeTable("tables/moves.yaml", &moveTable); err != nil {
		return err
	}
	for name, m := range moveTable {
		m.Name = name
		if m.Target == "" {
			m.Target = TargetNormal
		}
		if m.Type != "" {
			if _, ok := typeChart[m.Type]; !ok {
				return fmt.Errorf("move %s: %w %q", name, ErrUnknownType, m.Type)
			}
		}
	}

	raw := map[string][]string{}
	if err := decodeTable("tables/natures.yaml", &raw); err != nil {
		return err
	}
	natureTable = make(map[string]natureDef, len(raw))
	for name, pair := range raw {
		nd, err := parseNature(pair)
		if err != nil {
			return fmt.Errorf("nature %s: %w", name, err)
		}
		natureTable[name] = nd
	}
	return nil
}

func decodeTable(path string, out any) error {
	raw, err := tableFS.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// SpeciesNames returns all species names sorted.
func SpeciesNames() []string {
	if Load() != nil {
		return nil
	}
	return slices.Sorted(maps.Keys(speciesTable))
}

// MoveNames returns all move names sorted.
func MoveNames() []string {
	if Load() != nil {
		return nil
	}
	return slices.Sorted(maps.Keys(moveTable))
}

// TypeNames returns all type names sorted.
func TypeNames() []string {
	if Load() != nil {
		return nil
	}
	return slices.Sorted(maps.Keys(typeChart))
}

// IsType reports whether t is a known type.
func IsType(t string) bool {
	if Load() != nil {
		return false
	}
	_, ok := typeChart[t]
	return ok
}

// SpeciesDef is the static description of a species.
type SpeciesDef struct {
	Name  string              `yaml:"-"`
	Types []string            `yaml:"types"`
	Base  [model.NumStats]int `yaml:"base,flow"`
}

// Species returns the species definition.
func Species(name string) (*SpeciesDef, error) {
	if err := Load(); err != nil {
		return nil, err
	}
	s, ok := speciesTable[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSpecies, name)
	}
	return s, nil
}
