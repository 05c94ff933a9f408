package ml

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/cricket-predictor/internal/models"
)

// Model is a trained logistic-regression win classifier. It is immutable
// after training or loading and safe for concurrent use by any number of
// predict calls.
type Model struct {
	Encoder    *OneHotEncoder `json:"encoder"`
	Weights    []float64      `json:"weights"` // bias at index 0
	Iterations int            `json:"iterations"`
	Converged  bool           `json:"converged"`
	TrainedAt  time.Time      `json:"trained_at"`
}

// Train fits a model on the training examples. Examples violating the
// feature invariants (negative runs left, exhausted innings, non-finite run
// rates) are filtered out before fitting, mirroring the dataset's own
// validity mask.
func Train(examples []models.TrainingExample, cfg TrainerConfig, logger *logrus.Logger) (*Model, error) {
	if logger == nil {
		logger = logrus.New()
	}

	valid := make([]models.TrainingExample, 0, len(examples))
	for _, ex := range examples {
		if ex.Features.Valid() {
			valid = append(valid, ex)
		}
	}
	if len(valid) == 0 {
		return nil, models.ErrModelNotTrained
	}

	encoder := FitEncoder(valid)

	x := make([][]float64, len(valid))
	y := make([]float64, len(valid))
	for i, ex := range valid {
		x[i] = encoder.Transform(ex.Features)
		y[i] = float64(ex.Result)
	}

	start := time.Now()
	weights, iterations, converged := fitLogistic(x, y, cfg)

	logger.WithFields(logrus.Fields{
		"examples":   len(examples),
		"valid":      len(valid),
		"features":   encoder.Width(),
		"iterations": iterations,
		"converged":  converged,
		"duration":   time.Since(start),
	}).Info("Trained win-probability model")

	TrainingIterations.Set(float64(iterations))
	TrainingExamplesTotal.Set(float64(len(valid)))

	return &Model{
		Encoder:    encoder,
		Weights:    weights,
		Iterations: iterations,
		Converged:  converged,
		TrainedAt:  time.Now().UTC(),
	}, nil
}

// Predict returns the batting side's win probability and its complement for
// a validated feature vector.
func (m *Model) Predict(fv models.FeatureVector) (win, loss float64, err error) {
	if m == nil || m.Encoder == nil || len(m.Weights) == 0 {
		return 0, 0, models.ErrModelNotTrained
	}

	encoded := m.Encoder.Transform(fv)
	if len(encoded)+1 != len(m.Weights) {
		return 0, 0, models.ErrFeatureSchemaMismatch
	}

	z := m.Weights[0]
	for k, v := range encoded {
		z += m.Weights[k+1] * v
	}

	win = sigmoid(z)
	return win, 1 - win, nil
}

// Teams returns the batting-team vocabulary fixed at training time.
func (m *Model) Teams() []string {
	return m.Encoder.Vocabulary[0]
}

// Cities returns the city vocabulary fixed at training time.
func (m *Model) Cities() []string {
	return m.Encoder.Vocabulary[2]
}
