package models

import "math"

// FeatureVector is the fixed set of features consumed by the classifier.
// It is immutable once derived; the three categorical fields pass through
// from the match state and the five numeric fields are computed from it.
type FeatureVector struct {
	BattingTeam string  `json:"batting_team"`
	BowlingTeam string  `json:"bowling_team"`
	City        string  `json:"city"`
	RunsLeft    float64 `json:"runs_left"`
	BallsLeft   float64 `json:"balls_left"`
	WicketsLeft float64 `json:"wickets_left"`
	CRR         float64 `json:"crr"`
	RRR         float64 `json:"rrr"`
}

// Numeric returns the numeric features in schema order.
func (fv FeatureVector) Numeric() []float64 {
	return []float64{fv.RunsLeft, fv.BallsLeft, fv.WicketsLeft, fv.CRR, fv.RRR}
}

// Valid reports whether the vector satisfies the invariants that must hold
// before it may reach the classifier.
func (fv FeatureVector) Valid() bool {
	if fv.RunsLeft < 0 || fv.BallsLeft <= 0 || fv.WicketsLeft < 0 {
		return false
	}
	if math.IsNaN(fv.CRR) || math.IsInf(fv.CRR, 0) {
		return false
	}
	if math.IsNaN(fv.RRR) || math.IsInf(fv.RRR, 0) {
		return false
	}
	return true
}

// TrainingExample pairs a feature vector with its match outcome label.
// Result is 1 when the batting team went on to win the match.
type TrainingExample struct {
	Features FeatureVector `json:"features"`
	Result   int           `json:"result"`
}
