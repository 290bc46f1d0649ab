package calculator

import "fmt"

// Breakdown renders the derivation of an already-computed Result as
// ordered human-readable lines. Pure formatting over finished numbers;
// no arithmetic happens here.
func Breakdown(r *Result) []string {
	lines := []string{
		fmt.Sprintf("q = 1 - p = 1 - %.4f = %.4f", r.P, r.Q),
		fmt.Sprintf("f* = (b*p - q) / b = (%.4f*%.4f - %.4f) / %.4f = %.4f",
			r.B, r.P, r.Q, r.B, r.FStarRaw),
		fmt.Sprintf("clamped f* = max(0, %.4f) = %.4f", r.FStarRaw, r.FStarClamped),
		fmt.Sprintf("applied fraction = %.4f * %.4f = %.4f",
			r.Multiplier, r.FStarClamped, r.FAppliedRaw),
		fmt.Sprintf("capped fraction = clamp(%.4f, 0, %v) = %.4f",
			r.FAppliedRaw, MaxAppliedFraction, r.FApplied),
	}

	if r.Stake != nil && r.Bankroll != nil {
		lines = append(lines, fmt.Sprintf("stake = %.2f * %.4f = %.2f",
			*r.Bankroll, r.FApplied, *r.Stake))
	} else {
		lines = append(lines, "stake not computed (no valid bankroll supplied)")
	}

	if r.Growth != nil {
		lines = append(lines, fmt.Sprintf(
			"expected log growth = %.4f*ln(1 + %.4f*%.4f) + %.4f*ln(1 - %.4f) = %.6f",
			r.P, r.FApplied, r.B, r.Q, r.FApplied, *r.Growth))
	} else {
		lines = append(lines, "expected log growth undefined at this fraction")
	}

	if r.FStarRaw <= 0 {
		lines = append(lines, "no positive edge at these inputs - recommended stake is zero")
	}

	return lines
}
