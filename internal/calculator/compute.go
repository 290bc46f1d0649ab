package calculator

import (
	"math"
	"strconv"
	"strings"
)

// Compute runs the full sizing pipeline for one set of inputs. On
// validation failure it returns nil and every violated precondition as a
// human-readable problem, never just the first one. On success the
// problems slice is nil and the Result carries the complete bundle.
func Compute(in Inputs) (*Result, []string) {
	var problems []string

	p, pOK := ParseProbability(in.Probability, in.ProbabilityFormat)
	if !pOK {
		problems = append(problems, "probability is missing or not a number")
	} else if p <= 0 || p >= 1 {
		problems = append(problems, "probability must be between 0 and 1 exclusive")
	}

	b, bOK := ParseNetOdds(in.Odds, in.OddsFormat)
	if !bOK {
		problems = append(problems, "odds are missing or not in a valid format")
	} else if b <= 0 {
		// Unreachable with the current parsers, which already reject
		// non-positive odds. Kept so a future odds format cannot smuggle
		// b <= 0 past validation.
		problems = append(problems, "net odds must be positive")
	}

	if len(problems) > 0 {
		return nil, problems
	}

	r := &Result{
		P:          p,
		Q:          1 - p,
		B:          b,
		Multiplier: in.Multiplier,
	}

	r.FStarRaw = KellyFraction(p, b)
	r.FStarClamped = math.Max(0, r.FStarRaw)
	r.FAppliedRaw = in.Multiplier * r.FStarClamped
	r.FApplied = clamp(r.FAppliedRaw, 0, MaxAppliedFraction)

	if bankroll, ok := parseBankroll(in.Bankroll); ok {
		stake := bankroll * r.FApplied
		r.Bankroll = &bankroll
		r.Stake = &stake
	}

	if growth, ok := ExpectedLogGrowth(p, b, r.FApplied); ok {
		r.Growth = &growth
	}

	return r, nil
}

// parseBankroll accepts only a finite positive number. Anything else
// means "no bankroll": stake stays uncomputed rather than becoming zero.
func parseBankroll(value string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || !isFinite(v) || v <= 0 {
		return 0, false
	}
	return v, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
