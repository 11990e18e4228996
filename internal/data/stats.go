package data

import (
	"errors"
	"fmt"

	"github.com/tmwork1/jpoke/internal/model"
)

// Build limits.
const (
	MaxLevel   = 100
	MaxIV      = 31
	MaxEV      = 252
	MaxEVTotal = 510
)

// ErrInvalidBuild is returned for out-of-range level, IVs or EVs.
var ErrInvalidBuild = errors.New("invalid build")

// ComputeStats derives the six stats of a build from its species base stats,
// individual values, effort values, level and nature.
//
//	HP    = floor((2*B + IV + floor(EV/4)) * L / 100) + L + 10
//	other = floor((floor((2*B + IV + floor(EV/4)) * L / 100) + 5) * nature)
func ComputeStats(spec model.Spec) ([model.NumStats]int, error) {
	var stats [model.NumStats]int

	sp, err := Species(spec.Species)
	if err != nil {
		return stats, err
	}
	if err := validateBuild(spec); err != nil {
		return stats, err
	}

	lv := spec.Level
	for i := range model.NumStats {
		core := (2*sp.Base[i] + spec.IVs[i] + spec.EVs[i]/4) * lv / 100
		if model.Stat(i) == model.StatHP {
			stats[i] = core + lv + 10
			continue
		}
		pct, err := NatureMultiplier(spec.Nature, model.Stat(i))
		if err != nil {
			return stats, err
		}
		stats[i] = (core + 5) * pct / 100
	}
	return stats, nil
}

func validateBuild(spec model.Spec) error {
	if spec.Level < 1 || spec.Level > MaxLevel {
		return fmt.Errorf("%w: %s level %d", ErrInvalidBuild, spec.Species, spec.Level)
	}
	total := 0
	for i := range model.NumStats {
		if spec.IVs[i] < 0 || spec.IVs[i] > MaxIV {
			return fmt.Errorf("%w: %s iv[%s]=%d", ErrInvalidBuild, spec.Species, model.Stat(i), spec.IVs[i])
		}
		if spec.EVs[i] < 0 || spec.EVs[i] > MaxEV {
			return fmt.Errorf("%w: %s ev[%s]=%d", ErrInvalidBuild, spec.Species, model.Stat(i), spec.EVs[i])
		}
		total += spec.EVs[i]
	}
	if total > MaxEVTotal {
		return fmt.Errorf("%w: %s ev total %d", ErrInvalidBuild, spec.Species, total)
	}
	if spec.TeraType != "" && !IsType(spec.TeraType) {
		return fmt.Errorf("%w: %s tera type %q", ErrInvalidBuild, spec.Species, spec.TeraType)
	}
	return nil
}
