package data

import (
	"fmt"

	"github.com/tmwork1/jpoke/internal/model"
)

type natureDef struct {
	neutral     bool
	plus, minus model.Stat
}

func parseNature(pair []string) (natureDef, error) {
	if len(pair) == 0 {
		return natureDef{neutral: true}, nil
	}
	if len(pair) != 2 {
		return natureDef{}, fmt.Errorf("want [plus, minus], got %v", pair)
	}
	plus, ok1 := model.StatByName(pair[0])
	minus, ok2 := model.StatByName(pair[1])
	if !ok1 || !ok2 || plus == model.StatHP || minus == model.StatHP {
		return natureDef{}, fmt.Errorf("bad stats %v", pair)
	}
	return natureDef{plus: plus, minus: minus}, nil
}

// NatureMultiplier returns the nature factor for a stat in percent
// (110, 100 or 90). An empty nature is neutral.
func NatureMultiplier(nature string, s model.Stat) (int, error) {
	if nature == "" {
		return 100, nil
	}
	if err := Load(); err != nil {
		return 0, err
	}
	nd, ok := natureTable[nature]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownNature, nature)
	}
	switch {
	case nd.neutral:
		return 100, nil
	case s == nd.plus:
		return 110, nil
	case s == nd.minus:
		return 90, nil
	}
	return 100, nil
}
