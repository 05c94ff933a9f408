// Package service wires the feature deriver and classifier into the
// externally callable prediction boundary.
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/cricket-predictor/internal/features"
	"github.com/yourusername/cricket-predictor/internal/ml"
	"github.com/yourusername/cricket-predictor/internal/models"
)

// Predictor turns a live match snapshot into a win/loss probability pair.
// It holds an immutable trained model and vocabulary, constructed once at
// startup; every call is stateless, so concurrent use needs no coordination.
type Predictor struct {
	model  *ml.Model
	vocab  *Vocabulary
	logger *logrus.Logger
}

// NewPredictor creates a predictor over a trained model. vocab may be nil,
// in which case the model's own training vocabulary is used.
func NewPredictor(model *ml.Model, vocab *Vocabulary, logger *logrus.Logger) *Predictor {
	if logger == nil {
		logger = logrus.New()
	}
	if vocab == nil {
		vocab = &Vocabulary{Teams: model.Teams(), Cities: model.Cities()}
	}
	return &Predictor{model: model, vocab: vocab, logger: logger}
}

// PredictLive derives features from the snapshot and runs the classifier.
// Input errors propagate untouched: they are deterministic functions of the
// snapshot and never retried. Categorical values outside the training
// vocabulary are not errors; the encoder degrades them to an unknown bucket.
func (p *Predictor) PredictLive(state models.MatchState) (*models.Prediction, error) {
	start := time.Now()

	fv, err := features.Derive(state)
	if err != nil {
		ml.InputErrorsTotal.WithLabelValues(inputErrorReason(err)).Inc()
		return nil, err
	}

	p.noteUnknowns(fv)

	win, loss, err := p.model.Predict(fv)
	if err != nil {
		return nil, err
	}

	ml.PredictionsTotal.WithLabelValues("false").Inc()
	ml.PredictionLatency.Observe(time.Since(start).Seconds())

	return &models.Prediction{
		ID:              uuid.New(),
		BattingTeam:     state.BattingTeam,
		BowlingTeam:     state.BowlingTeam,
		City:            state.City,
		WinProbability:  win,
		LossProbability: loss,
		RunsLeft:        int(fv.RunsLeft),
		BallsLeft:       int(fv.BallsLeft),
		WicketsLeft:     int(fv.WicketsLeft),
		CRR:             fv.CRR,
		RRR:             fv.RRR,
		PredictedAt:     time.Now().UTC(),
	}, nil
}

// Vocab returns the team/city vocabulary exposed to selection inputs.
func (p *Predictor) Vocab() *Vocabulary {
	return p.vocab
}

func (p *Predictor) noteUnknowns(fv models.FeatureVector) {
	checks := []struct {
		field string
		pos   int
		value string
	}{
		{"batting_team", 0, fv.BattingTeam},
		{"bowling_team", 1, fv.BowlingTeam},
		{"city", 2, fv.City},
	}
	for _, c := range checks {
		if !p.model.Encoder.Knows(c.pos, c.value) {
			ml.UnknownCategoricalTotal.WithLabelValues(c.field).Inc()
			p.logger.WithFields(logrus.Fields{
				"field": c.field,
				"value": c.value,
			}).Debug("Categorical value unseen at training time, encoding as unknown")
		}
	}
}

func inputErrorReason(err error) string {
	switch {
	case errors.Is(err, models.ErrOversExceeded):
		return "overs_exceeded"
	case errors.Is(err, models.ErrScoreExceedsTarget):
		return "score_exceeds_target"
	case errors.Is(err, models.ErrIncompleteSelection):
		return "incomplete_selection"
	case errors.Is(err, models.ErrWicketsExceeded):
		return "wickets_exceeded"
	default:
		return "other"
	}
}
