package calculator

import (
	"math"
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKellyFraction(t *testing.T) {
	tests := []struct {
		name string
		p    float64
		b    float64
		want float64
	}{
		{"coin flip at evens", 0.5, 1.0, 0.0},
		{"slight edge at 2.10", 0.55, 1.10, (1.10*0.55 - 0.45) / 1.10},
		{"negative edge", 0.4, 0.5, (0.5*0.4 - 0.6) / 0.5},
		{"strong favorite", 0.9, 0.25, (0.25*0.9 - 0.1) / 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KellyFraction(tt.p, tt.b), 1e-12)
		})
	}
}

// Kelly fraction matches the direct arithmetic (b*p - (1-p)) / b across
// the valid input domain.
func TestKellyFractionMatchesArithmetic(t *testing.T) {
	property := func(rawP, rawB float64) bool {
		p := 0.0001 + math.Mod(math.Abs(rawP), 0.9998)
		b := 0.01 + math.Mod(math.Abs(rawB), 100)
		want := (b*p - (1 - p)) / b
		return math.Abs(KellyFraction(p, b)-want) < 1e-9
	}
	if err := quick.Check(property, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}

func TestExpectedLogGrowth(t *testing.T) {
	t.Run("zero fraction has zero growth", func(t *testing.T) {
		g, ok := ExpectedLogGrowth(0.55, 1.10, 0)
		require.True(t, ok)
		assert.InDelta(t, 0, g, 1e-12)
	})

	t.Run("matches the formula", func(t *testing.T) {
		p, b, f := 0.55, 1.10, 0.0909
		g, ok := ExpectedLogGrowth(p, b, f)
		require.True(t, ok)
		want := p*math.Log(1+f*b) + (1-p)*math.Log(1-f)
		assert.InDelta(t, want, g, 1e-12)
	})

	t.Run("undefined at full fraction", func(t *testing.T) {
		_, ok := ExpectedLogGrowth(0.55, 1.10, 1.0)
		assert.False(t, ok)
	})

	t.Run("undefined above full fraction", func(t *testing.T) {
		_, ok := ExpectedLogGrowth(0.55, 1.10, 1.5)
		assert.False(t, ok)
	})

	t.Run("undefined when win factor hits zero", func(t *testing.T) {
		// f*b = -1 drives the winning factor to zero.
		_, ok := ExpectedLogGrowth(0.55, 2.0, -0.5)
		assert.False(t, ok)
	})

	t.Run("defined just below the cap", func(t *testing.T) {
		g, ok := ExpectedLogGrowth(0.55, 1.10, MaxAppliedFraction)
		require.True(t, ok)
		assert.False(t, math.IsNaN(g))
		assert.False(t, math.IsInf(g, 0))
	})
}

// The applied fraction never escapes [0, MaxAppliedFraction] and the
// clamped Kelly fraction never goes negative, whatever the multiplier.
func TestAppliedFractionStaysWithinCap(t *testing.T) {
	property := func(rawP, rawB, rawK float64) bool {
		p := 0.0001 + math.Mod(math.Abs(rawP), 0.9998)
		b := 0.01 + math.Mod(math.Abs(rawB), 100)
		k := math.Mod(math.Abs(rawK), 20)

		r, problems := Compute(Inputs{
			Probability:       strconv.FormatFloat(p, 'f', -1, 64),
			ProbabilityFormat: ProbabilityDecimal,
			Odds:              strconv.FormatFloat(1+b, 'f', -1, 64),
			OddsFormat:        OddsDecimal,
			Multiplier:        k,
		})
		if problems != nil {
			return false
		}
		if r.FStarClamped < 0 {
			return false
		}
		return r.FApplied >= 0 && r.FApplied <= MaxAppliedFraction
	}
	if err := quick.Check(property, &quick.Config{MaxCount: 1000}); err != nil {
		t.Error(err)
	}
}
