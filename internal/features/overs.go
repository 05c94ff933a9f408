// Package features converts raw match state into the classifier's feature vector.
package features

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MatchBalls is the total deliveries in a 20-over innings.
const MatchBalls = 120

// OversToBalls converts a decimal overs value into a ball count, e.g. 8.5 -> 53.
// The tenths digit is taken directly as the ball count within the over. Values
// like 8.7 are not self-consistent with a 6-ball over but are used as-is rather
// than rejected; only inference-time inputs flow through this formula, the
// dataset builder derives overs per delivery with its own convention.
func OversToBalls(overs float64) int {
	whole := int(math.Floor(overs))
	tenths := int(math.Round((overs - math.Floor(overs)) * 10))
	return whole*6 + tenths
}

// BallsRemaining returns the deliveries left in the innings. The result may be
// zero or negative; callers decide whether that is an error.
func BallsRemaining(overs float64) int {
	return MatchBalls - OversToBalls(overs)
}

// ParseOvers parses an overs value from text, validating that it is a
// non-negative decimal with at most one fractional digit. Parsing failures
// are reported as typed errors rather than panics so CLI and HTTP callers
// can surface them directly.
func ParseOvers(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid overs value %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("overs cannot be negative: %s", s)
	}
	if d.Exponent() < -1 {
		return 0, fmt.Errorf("overs %q has more than one decimal place", s)
	}
	f, _ := d.Float64()
	return f, nil
}
