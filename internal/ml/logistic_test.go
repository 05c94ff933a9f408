package ml

import (
	"math"
	"testing"
)

func TestFitLogisticSeparableData(t *testing.T) {
	// y = 1 whenever x > 0; trivially separable in one dimension.
	var x [][]float64
	var y []float64
	for i := -10; i <= 10; i++ {
		if i == 0 {
			continue
		}
		x = append(x, []float64{float64(i)})
		if i > 0 {
			y = append(y, 1)
		} else {
			y = append(y, 0)
		}
	}

	w, iters, _ := fitLogistic(x, y, TrainerConfig{LearningRate: 0.5, MaxIterations: 2000, Tolerance: 1e-9})

	if iters > 2000 {
		t.Fatalf("iteration budget exceeded: %d", iters)
	}
	if w[1] <= 0 {
		t.Errorf("expected positive weight on x, got %v", w[1])
	}
	if p := sigmoid(w[0] + w[1]*5); p < 0.9 {
		t.Errorf("P(y=1|x=5) = %v, want > 0.9", p)
	}
	if p := sigmoid(w[0] + w[1]*-5); p > 0.1 {
		t.Errorf("P(y=1|x=-5) = %v, want < 0.1", p)
	}
}

func TestFitLogisticStopsOnConvergence(t *testing.T) {
	x := [][]float64{{1}, {-1}}
	y := []float64{1, 0}

	_, iters, converged := fitLogistic(x, y, TrainerConfig{LearningRate: 0.01, MaxIterations: 100000, Tolerance: 1e-4})
	if !converged {
		t.Fatal("expected convergence on a trivial problem")
	}
	if iters >= 100000 {
		t.Errorf("expected early stop, used all %d iterations", iters)
	}
}

func TestFitLogisticEmptyInput(t *testing.T) {
	w, iters, converged := fitLogistic(nil, nil, DefaultTrainerConfig())
	if w != nil || iters != 0 || converged {
		t.Errorf("expected nil fit for empty input, got %v %d %v", w, iters, converged)
	}
}

func TestSigmoidBounds(t *testing.T) {
	tests := []struct {
		z    float64
		want float64
	}{
		{0, 0.5},
		{100, 1.0},
		{-100, 0.0},
	}
	for _, tt := range tests {
		if got := sigmoid(tt.z); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("sigmoid(%v) = %v, want %v", tt.z, got, tt.want)
		}
	}
}
