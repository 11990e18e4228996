package sim

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/tmwork1/jpoke/internal/game/battle"
	"github.com/tmwork1/jpoke/internal/model"
)

//go:embed teams.yaml
var defaultTeams []byte

// Team is a named roster.
type Team struct {
	Name    string       `yaml:"name"`
	Members []model.Spec `yaml:"members"`
}

type teamFile struct {
	Teams []Team `yaml:"teams"`
}

// DefaultTeams returns the built-in sample teams.
func DefaultTeams() ([]Team, error) {
	return parseTeams(defaultTeams, "built-in teams")
}

// LoadTeams reads teams from a YAML file. An empty path selects the
// built-in teams.
func LoadTeams(path string) ([]Team, error) {
	if path == "" {
		return DefaultTeams()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading teams %s: %w", path, err)
	}
	return parseTeams(raw, path)
}

func parseTeams(raw []byte, origin string) ([]Team, error) {
	var f teamFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", origin, err)
	}
	if len(f.Teams) < 2 {
		return nil, fmt.Errorf("%s: need at least 2 teams, got %d", origin, len(f.Teams))
	}
	for _, t := range f.Teams {
		if len(t.Members) == 0 || len(t.Members) > battle.MaxTeamSize {
			return nil, fmt.Errorf("%s: team %q has %d members", origin, t.Name, len(t.Members))
		}
	}
	return f.Teams, nil
}

// FindTeam returns the team with the given name.
func FindTeam(teams []Team, name string) (Team, bool) {
	i := slices.IndexFunc(teams, func(t Team) bool { return t.Name == name })
	if i < 0 {
		return Team{}, false
	}
	return teams[i], true
}
