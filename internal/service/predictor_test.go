package service

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/cricket-predictor/internal/ml"
	"github.com/yourusername/cricket-predictor/internal/models"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)
	return log
}

func trainedModel(t *testing.T) *ml.Model {
	t.Helper()

	teams := []string{"Chennai Super Kings", "Mumbai Indians"}
	cities := []string{"Chennai", "Mumbai"}

	var examples []models.TrainingExample
	for i := 0; i < 120; i++ {
		runsLeft := float64(10 + i)
		result := 0
		if runsLeft < 70 {
			result = 1
		}
		examples = append(examples, models.TrainingExample{
			Features: models.FeatureVector{
				BattingTeam: teams[i%2],
				BowlingTeam: teams[(i+1)%2],
				City:        cities[i%2],
				RunsLeft:    runsLeft,
				BallsLeft:   60,
				WicketsLeft: 7,
				CRR:         7.5,
				RRR:         runsLeft * 6 / 60,
			},
			Result: result,
		})
	}

	model, err := ml.Train(examples, ml.DefaultTrainerConfig(), quietLogger())
	require.NoError(t, err)
	return model
}

func liveState() models.MatchState {
	return models.MatchState{
		BattingTeam:   "Chennai Super Kings",
		BowlingTeam:   "Mumbai Indians",
		City:          "Chennai",
		Target:        120,
		CurrentScore:  40,
		OversDone:     8.5,
		WicketsFallen: 2,
	}
}

func TestPredictLive(t *testing.T) {
	predictor := NewPredictor(trainedModel(t), nil, quietLogger())

	pred, err := predictor.PredictLive(liveState())
	require.NoError(t, err)

	assert.InDelta(t, 1.0, pred.WinProbability+pred.LossProbability, 1e-9)
	assert.Equal(t, 80, pred.RunsLeft)
	assert.Equal(t, 67, pred.BallsLeft)
	assert.Equal(t, 8, pred.WicketsLeft)
	assert.InDelta(t, 40.0/8.5, pred.CRR, 1e-9)
	assert.InDelta(t, 80.0*6/67, pred.RRR, 1e-9)
	assert.NotEqual(t, pred.ID.String(), "00000000-0000-0000-0000-000000000000")
	assert.False(t, pred.PredictedAt.IsZero())
}

func TestPredictLivePropagatesInputErrors(t *testing.T) {
	predictor := NewPredictor(trainedModel(t), nil, quietLogger())

	state := liveState()
	state.OversDone = 20.0
	_, err := predictor.PredictLive(state)
	assert.ErrorIs(t, err, models.ErrOversExceeded)

	state = liveState()
	state.CurrentScore = 500
	_, err = predictor.PredictLive(state)
	assert.ErrorIs(t, err, models.ErrScoreExceedsTarget)

	state = liveState()
	state.BattingTeam = ""
	_, err = predictor.PredictLive(state)
	assert.ErrorIs(t, err, models.ErrIncompleteSelection)

	state = liveState()
	state.WicketsFallen = 12
	_, err = predictor.PredictLive(state)
	assert.ErrorIs(t, err, models.ErrWicketsExceeded)
}

func TestPredictLiveUnknownTeam(t *testing.T) {
	predictor := NewPredictor(trainedModel(t), nil, quietLogger())

	state := liveState()
	state.BattingTeam = "Newly Franchised XI"
	pred, err := predictor.PredictLive(state)
	require.NoError(t, err, "unknown teams degrade to the unknown bucket")
	assert.InDelta(t, 1.0, pred.WinProbability+pred.LossProbability, 1e-9)
}

func TestPredictorVocabDefaultsToModel(t *testing.T) {
	model := trainedModel(t)
	predictor := NewPredictor(model, nil, quietLogger())

	vocab := predictor.Vocab()
	assert.Equal(t, model.Teams(), vocab.Teams)
	assert.Equal(t, model.Cities(), vocab.Cities)
	assert.True(t, vocab.HasTeam("Mumbai Indians"))
	assert.False(t, vocab.HasTeam("Nonexistent CC"))
}

func TestCachedPredictor(t *testing.T) {
	base := NewPredictor(trainedModel(t), nil, quietLogger())
	cached := NewCachedPredictor(base, time.Minute, 16, quietLogger())

	first, err := cached.PredictLive(liveState())
	require.NoError(t, err)
	second, err := cached.PredictLive(liveState())
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "identical snapshots within the TTL share one evaluation")

	hits, misses, ratio := cached.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, uint64(1), misses)
	assert.InDelta(t, 0.5, ratio, 1e-9)
}

func TestCachedPredictorDoesNotCacheErrors(t *testing.T) {
	base := NewPredictor(trainedModel(t), nil, quietLogger())
	cached := NewCachedPredictor(base, time.Minute, 16, quietLogger())

	state := liveState()
	state.OversDone = 20.0
	_, err := cached.PredictLive(state)
	assert.ErrorIs(t, err, models.ErrOversExceeded)

	_, err = cached.PredictLive(state)
	assert.ErrorIs(t, err, models.ErrOversExceeded)

	hits, _, _ := cached.Stats()
	assert.Equal(t, uint64(0), hits)
}

func TestCachedPredictorBoundedSize(t *testing.T) {
	base := NewPredictor(trainedModel(t), nil, quietLogger())
	cached := NewCachedPredictor(base, time.Minute, 1, quietLogger())

	first := liveState()
	second := liveState()
	second.CurrentScore = 41

	_, err := cached.PredictLive(first)
	require.NoError(t, err)

	// The cache is at its cap with an unexpired entry, so this snapshot is
	// served but not stored.
	_, err = cached.PredictLive(second)
	require.NoError(t, err)
	_, err = cached.PredictLive(second)
	require.NoError(t, err)

	_, err = cached.PredictLive(first)
	require.NoError(t, err)

	hits, misses, _ := cached.Stats()
	assert.Equal(t, uint64(1), hits, "only the stored snapshot hits")
	assert.Equal(t, uint64(3), misses)
}

func TestCachedPredictorDistinctStates(t *testing.T) {
	base := NewPredictor(trainedModel(t), nil, quietLogger())
	cached := NewCachedPredictor(base, time.Minute, 16, quietLogger())

	first, err := cached.PredictLive(liveState())
	require.NoError(t, err)

	state := liveState()
	state.CurrentScore = 41
	second, err := cached.PredictLive(state)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID, "different snapshots never share a cache entry")
}
