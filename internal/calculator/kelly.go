package calculator

import "math"

// KellyFraction returns the full Kelly fraction f* = (b*p - q) / b for
// win probability p and net odds b. No bounds checking; upstream
// validation guarantees b > 0.
func KellyFraction(p, b float64) float64 {
	q := 1 - p
	return (b*p - q) / b
}

// ExpectedLogGrowth returns the expected log bankroll growth
// p*ln(1 + f*b) + q*ln(1 - f) at fraction f. Returns ok=false when
// either factor is non-positive, where the logarithm is undefined.
func ExpectedLogGrowth(p, b, f float64) (float64, bool) {
	winFactor := 1 + f*b
	loseFactor := 1 - f
	if winFactor <= 0 || loseFactor <= 0 {
		return 0, false
	}
	q := 1 - p
	return p*math.Log(winFactor) + q*math.Log(loseFactor), true
}
