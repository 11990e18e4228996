package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	require.NoError(t, Load())
	assert.Contains(t, SpeciesNames(), "garchomp")
	assert.Contains(t, MoveNames(), "struggle")
	assert.True(t, IsType("fairy"))
	assert.False(t, IsType("sound"))
}

func TestMove_Defaults(t *testing.T) {
	eq, err := Move("earthquake")
	require.NoError(t, err)
	assert.Equal(t, TargetNormal, eq.Target)
	assert.True(t, eq.Damaging())
	assert.True(t, eq.TargetsFoe())

	sd, err := Move("swords-dance")
	require.NoError(t, err)
	assert.False(t, sd.Damaging())
	assert.False(t, sd.CanMiss())
	assert.Equal(t, TargetSelf, sd.Target)

	_, err = Move("hyper-beam-9000")
	assert.ErrorIs(t, err, ErrUnknownMove)
	_, err = Species("missingno")
	assert.ErrorIs(t, err, ErrUnknownSpecies)
}

func TestEffectiveness(t *testing.T) {
	tests := []struct {
		attack string
		defend []string
		want   float64
	}{
		{"ground", []string{"flying", "steel"}, 0},
		{"fire", []string{"grass", "steel"}, 4},
		{"water", []string{"water", "dragon"}, 0.25},
		{"fighting", []string{"normal"}, 2},
		{"normal", []string{"fairy"}, 1},
		{"", []string{"ghost"}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.attack, func(t *testing.T) {
			assert.InDelta(t, tt.want, Effectiveness(tt.attack, tt.defend), 0)
		})
	}
}
