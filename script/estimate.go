package script

import "unicode/utf8"

// Model credit costs per character. The turbo model is billed at half rate;
// anything unrecognized falls back to the default.
const (
	defaultCreditCost = 1.0
	turboCreditCost   = 0.5
)

// ModelCreditCost returns the credit cost per character for a model.
func ModelCreditCost(model string) float64 {
	if model == "eleven_turbo_v2" {
		return turboCreditCost
	}
	return defaultCreditCost
}

// Estimate reports how much of the selected range is affordable with the
// remaining credits, alongside totals for the whole range.
type Estimate struct {
	CreditsRemaining int
	CostPerChar      float64

	// Affordable counters cover the leading run of in-range lines whose
	// cumulative cost stays within CreditsRemaining.
	Lines   int
	Chars   int
	Credits float64

	// Range counters cover every in-range content line, affordable or not.
	RangeLines   int
	RangeChars   int
	RangeCredits float64
}

// EstimateCredits walks the classified lines in order, accumulating range
// totals for every in-range content line and affordable totals until the
// first line that would exceed the budget. Later, cheaper lines are not
// packed in; the cut is strictly positional.
func EstimateCredits(lines []Line, costPerChar float64, creditsRemaining int) Estimate {
	est := Estimate{
		CreditsRemaining: creditsRemaining,
		CostPerChar:      costPerChar,
	}
	affordable := true
	for _, l := range lines {
		if !l.InRange || l.Content == "" {
			continue
		}
		chars := utf8.RuneCountInString(l.Content)
		cost := float64(chars) * costPerChar

		est.RangeLines++
		est.RangeChars += chars
		est.RangeCredits += cost

		if affordable && est.Credits+cost <= float64(creditsRemaining) {
			est.Lines++
			est.Chars += chars
			est.Credits += cost
		} else {
			affordable = false
		}
	}
	return est
}
