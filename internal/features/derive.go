package features

import (
	"github.com/yourusername/cricket-predictor/internal/models"
)

// Derive computes the feature vector for a live match snapshot.
//
// Validation is ordered and fails fast: an exhausted innings wins over an
// overshot target, which wins over missing selections, which wins over an
// impossible wicket count. A zero-overs snapshot is not an error; its run
// rate is defined as zero.
func Derive(state models.MatchState) (models.FeatureVector, error) {
	ballsLeft := BallsRemaining(state.OversDone)
	runsLeft := state.Target - state.CurrentScore
	wicketsLeft := 10 - state.WicketsFallen

	if ballsLeft <= 0 {
		return models.FeatureVector{}, models.ErrOversExceeded
	}
	if runsLeft < 0 {
		return models.FeatureVector{}, models.ErrScoreExceedsTarget
	}
	if !state.HasSelections() {
		return models.FeatureVector{}, models.ErrIncompleteSelection
	}
	if wicketsLeft < 0 {
		return models.FeatureVector{}, models.ErrWicketsExceeded
	}

	crr := 0.0
	if state.OversDone > 0 {
		crr = float64(state.CurrentScore) / state.OversDone
	}
	rrr := float64(runsLeft) * 6 / float64(ballsLeft)

	return models.FeatureVector{
		BattingTeam: state.BattingTeam,
		BowlingTeam: state.BowlingTeam,
		City:        state.City,
		RunsLeft:    float64(runsLeft),
		BallsLeft:   float64(ballsLeft),
		WicketsLeft: float64(wicketsLeft),
		CRR:         crr,
		RRR:         rrr,
	}, nil
}
