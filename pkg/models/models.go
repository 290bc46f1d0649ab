package models

// SizeRequest is the request for a Kelly sizing calculation. Text fields
// arrive exactly as the user typed them; parsing and validation happen in
// the calculator. A nil Multiplier means "use the service default".
type SizeRequest struct {
	Bankroll          string   `json:"bankroll,omitempty"`
	Probability       string   `json:"probability"`
	ProbabilityFormat string   `json:"probability_format"` // decimal, percent
	Odds              string   `json:"odds"`
	OddsFormat        string   `json:"odds_format"` // decimal, fractional, american
	Multiplier        *float64 `json:"multiplier,omitempty"`
}

// SizeResponse is the full sizing bundle plus its derivation trace.
type SizeResponse struct {
	NetOdds         float64  `json:"net_odds"`
	Probability     float64  `json:"probability"`
	LossProbability float64  `json:"loss_probability"`
	KellyRaw        float64  `json:"kelly_raw"`
	KellyClamped    float64  `json:"kelly_clamped"`
	AppliedRaw      float64  `json:"applied_fraction_raw"`
	Applied         float64  `json:"applied_fraction"`
	Stake           *float64 `json:"stake,omitempty"`
	Growth          *float64 `json:"expected_log_growth,omitempty"`
	Breakdown       []string `json:"breakdown"`
	Warnings        []string `json:"warnings"`
}

// ProblemsResponse reports every violated input precondition.
type ProblemsResponse struct {
	Problems []string `json:"problems"`
}

// PresetsResponse carries the two canned form configurations.
type PresetsResponse struct {
	Example SizeRequest `json:"example"`
	Reset   SizeRequest `json:"reset"`
}

// ExamplePreset is the worked half-Kelly example shown to new users.
func ExamplePreset() SizeRequest {
	k := 0.5
	return SizeRequest{
		Bankroll:          "1000",
		Probability:       "0.55",
		ProbabilityFormat: "decimal",
		Odds:              "2.10",
		OddsFormat:        "decimal",
		Multiplier:        &k,
	}
}

// ResetPreset clears every text field and restores the defaults.
func ResetPreset() SizeRequest {
	k := 1.0
	return SizeRequest{
		ProbabilityFormat: "decimal",
		OddsFormat:        "decimal",
		Multiplier:        &k,
	}
}
