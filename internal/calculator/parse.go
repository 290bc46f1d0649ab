package calculator

import (
	"math"
	"strconv"
	"strings"
)

// ParseProbability converts raw probability text to a plain number.
// Percent format divides by 100. The (0,1) open-interval bound is NOT
// enforced here; Compute validates it after parsing so an out-of-range
// numeric value gets its own diagnostic.
func ParseProbability(value string, format ProbabilityFormat) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	if format == ProbabilityPercent {
		v /= 100
	}
	return v, true
}

// ParseNetOdds converts raw odds text to net odds b (profit per unit
// staked). Decimal odds require D > 1 and yield D-1; fractional odds
// "A/B" require both sides finite and positive and yield A/B; American
// odds require |A| >= 100. Any failure yields ok=false, never a partial
// result.
func ParseNetOdds(value string, format OddsFormat) (float64, bool) {
	raw := strings.TrimSpace(value)
	if raw == "" {
		return 0, false
	}

	switch format {
	case OddsFractional:
		parts := strings.Split(raw, "/")
		if len(parts) != 2 {
			return 0, false
		}
		num, errN := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		den, errD := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errN != nil || errD != nil || !isFinite(num) || !isFinite(den) {
			return 0, false
		}
		if num <= 0 || den <= 0 {
			return 0, false
		}
		return num / den, true

	case OddsAmerican:
		a, err := strconv.ParseFloat(raw, 64)
		if err != nil || !isFinite(a) || math.Abs(a) < 100 {
			return 0, false
		}
		if a > 0 {
			return a / 100, true
		}
		return 100 / -a, true

	default:
		// Decimal odds. D = 1 means zero profit (b = 0), which would make
		// the Kelly division undefined, so strictly greater than 1.
		d, err := strconv.ParseFloat(raw, 64)
		if err != nil || !isFinite(d) || d <= 1 {
			return 0, false
		}
		return d - 1, true
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
