package ml

import "math"

// TrainerConfig holds the optimizer settings for logistic regression.
type TrainerConfig struct {
	LearningRate  float64
	MaxIterations int
	Tolerance     float64
}

// DefaultTrainerConfig returns the settings used for the shipped model.
func DefaultTrainerConfig() TrainerConfig {
	return TrainerConfig{
		LearningRate:  0.1,
		MaxIterations: 1000,
		Tolerance:     1e-6,
	}
}

// fitLogistic fits weights (bias at index 0) by full-batch gradient descent
// on the log-loss. Features are standardized internally so the step size is
// well conditioned regardless of raw magnitudes; the scaling is folded back
// into the returned weights, which apply to the raw feature space. Training
// stops when the loss improvement drops below the tolerance or the iteration
// budget is exhausted; it never loops forever. Returns the weights,
// iterations used and whether it converged.
func fitLogistic(x [][]float64, y []float64, cfg TrainerConfig) ([]float64, int, bool) {
	n := len(x)
	if n == 0 {
		return nil, 0, false
	}
	dim := len(x[0]) + 1

	mean, std := columnStats(x)
	scaled := make([][]float64, n)
	for i, xi := range x {
		row := make([]float64, len(xi))
		for k, v := range xi {
			row[k] = (v - mean[k]) / std[k]
		}
		scaled[i] = row
	}

	w := make([]float64, dim)
	grad := make([]float64, dim)
	prevLoss := math.Inf(1)
	iters := cfg.MaxIterations
	converged := false

	for iter := 0; iter < cfg.MaxIterations; iter++ {
		for k := range grad {
			grad[k] = 0
		}
		loss := 0.0

		for i, xi := range scaled {
			z := w[0]
			for k, v := range xi {
				z += w[k+1] * v
			}
			p := sigmoid(z)
			loss += logLoss(p, y[i])

			// d/dw of -[y*log(p)+(1-y)*log(1-p)] is (p-y)*x
			err := p - y[i]
			grad[0] += err
			for k, v := range xi {
				grad[k+1] += err * v
			}
		}
		loss /= float64(n)

		for k := range w {
			w[k] -= cfg.LearningRate * grad[k] / float64(n)
		}

		if math.Abs(prevLoss-loss) < cfg.Tolerance {
			iters = iter + 1
			converged = true
			break
		}
		prevLoss = loss
	}

	// Fold the standardization into raw-space weights: the caller applies
	// them directly to unscaled features.
	raw := make([]float64, dim)
	raw[0] = w[0]
	for k := 1; k < dim; k++ {
		raw[k] = w[k] / std[k-1]
		raw[0] -= w[k] * mean[k-1] / std[k-1]
	}

	return raw, iters, converged
}

// columnStats returns per-column mean and standard deviation; constant
// columns get a unit deviation so scaling stays defined.
func columnStats(x [][]float64) (mean, std []float64) {
	n := float64(len(x))
	dim := len(x[0])
	mean = make([]float64, dim)
	std = make([]float64, dim)

	for _, xi := range x {
		for k, v := range xi {
			mean[k] += v
		}
	}
	for k := range mean {
		mean[k] /= n
	}
	for _, xi := range x {
		for k, v := range xi {
			d := v - mean[k]
			std[k] += d * d
		}
	}
	for k := range std {
		std[k] = math.Sqrt(std[k] / n)
		if std[k] == 0 {
			std[k] = 1
		}
	}
	return mean, std
}

func sigmoid(z float64) float64 {
	if z > 20 {
		return 1.0
	}
	if z < -20 {
		return 0.0
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

func logLoss(p, y float64) float64 {
	const eps = 1e-12
	if p < eps {
		p = eps
	}
	if p > 1-eps {
		p = 1 - eps
	}
	if y > 0.5 {
		return -math.Log(p)
	}
	return -math.Log(1 - p)
}
