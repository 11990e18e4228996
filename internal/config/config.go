package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Simulator holds all configuration for the battle simulator and the
// replay tools.
type Simulator struct {
	LogLevel string `yaml:"log_level" env:"JPOKE_LOG_LEVEL"`

	// Batch
	BaseSeed   uint64 `yaml:"base_seed" env:"JPOKE_BASE_SEED"`
	Games      int    `yaml:"games" env:"JPOKE_GAMES"`
	Workers    int    `yaml:"workers" env:"JPOKE_WORKERS"` // 0 = GOMAXPROCS
	MaxTurns   int    `yaml:"max_turns" env:"JPOKE_MAX_TURNS"`
	SelectSize int    `yaml:"select_size" env:"JPOKE_SELECT_SIZE"`

	// Teams
	TeamsFile string `yaml:"teams_file" env:"JPOKE_TEAMS_FILE"` // empty = built-in teams
	Team1     string `yaml:"team1" env:"JPOKE_TEAM1"`
	Team2     string `yaml:"team2" env:"JPOKE_TEAM2"`

	// Output
	ReplayDir string         `yaml:"replay_dir" env:"JPOKE_REPLAY_DIR"` // empty = do not write files
	Database  DatabaseConfig `yaml:"database" envPrefix:"JPOKE_DB_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel:   "info",
		BaseSeed:   1,
		Games:      100,
		MaxTurns:   200,
		SelectSize: 3,
		Team1:      "sand",
		Team2:      "rain",
		ReplayDir:  "replays",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "jpoke",
			Password: "jpoke",
			DBName:   "jpoke",
			SSLMode:  "disable",
		},
	}
}

// LoadSimulator loads simulator config from a YAML file and applies
// JPOKE_* environment overrides on top. If the file doesn't exist,
// defaults are used as the base.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (s Simulator) Validate() error {
	switch {
	case s.Games < 0:
		return fmt.Errorf("games must not be negative, got %d", s.Games)
	case s.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", s.Workers)
	case s.MaxTurns < 0:
		return fmt.Errorf("max_turns must not be negative, got %d", s.MaxTurns)
	case s.SelectSize < 1 || s.SelectSize > 6:
		return fmt.Errorf("select_size must be in [1,6], got %d", s.SelectSize)
	}
	if _, err := s.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel parses LogLevel ("debug", "info", "warn", "error").
func (s Simulator) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(s.LogLevel))); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
