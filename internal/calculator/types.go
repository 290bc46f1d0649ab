package calculator

// ProbabilityFormat selects how raw probability text is interpreted.
type ProbabilityFormat string

const (
	ProbabilityDecimal ProbabilityFormat = "decimal"
	ProbabilityPercent ProbabilityFormat = "percent"
)

// OddsFormat selects how raw odds text is interpreted.
type OddsFormat string

const (
	OddsDecimal    OddsFormat = "decimal"
	OddsFractional OddsFormat = "fractional"
	OddsAmerican   OddsFormat = "american"
)

// MaxAppliedFraction caps the applied fraction strictly below 1 so the
// losing bankroll factor 1-f stays positive and log growth stays defined.
const MaxAppliedFraction = 0.9999

// Inputs is a single sizing request: raw text fields plus the fractional
// Kelly multiplier. Multiplier is deliberately not validated; out-of-range
// values flow through the arithmetic unclamped.
type Inputs struct {
	Probability       string
	ProbabilityFormat ProbabilityFormat
	Odds              string
	OddsFormat        OddsFormat
	Multiplier        float64
	Bankroll          string
}

// Result is the computed sizing bundle. Stake is nil unless a finite
// positive bankroll was supplied; Growth is nil when the log growth
// formula is undefined at the applied fraction.
type Result struct {
	P          float64
	Q          float64
	B          float64
	Multiplier float64

	FStarRaw     float64
	FStarClamped float64
	FAppliedRaw  float64
	FApplied     float64

	Bankroll *float64
	Stake    *float64
	Growth   *float64
}
