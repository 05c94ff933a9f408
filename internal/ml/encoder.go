// Package ml implements the win-probability classifier: a one-hot encoder
// over the categorical match features and a logistic regression fit on the
// historical dataset.
package ml

import (
	"sort"

	"github.com/yourusername/cricket-predictor/internal/models"
)

// Categorical field names, in encoding order.
var categoricalFields = []string{"batting_team", "bowling_team", "city"}

// Numeric field names, in encoding order, appended after the indicators.
var numericFields = []string{"runs_left", "balls_left", "wickets_left", "crr", "rrr"}

// OneHotEncoder maps the three categorical features onto binary indicators
// against the vocabulary observed at training time. The first category of
// each field is dropped to avoid collinearity; a value unseen at training
// time encodes as all zeros for that field rather than failing.
type OneHotEncoder struct {
	// Vocabulary holds the sorted distinct values per field, in
	// categoricalFields order.
	Vocabulary [][]string `json:"vocabulary"`

	index []map[string]int
}

// FitEncoder builds an encoder from the training examples.
func FitEncoder(examples []models.TrainingExample) *OneHotEncoder {
	seen := make([]map[string]struct{}, len(categoricalFields))
	for i := range seen {
		seen[i] = make(map[string]struct{})
	}
	for _, ex := range examples {
		seen[0][ex.Features.BattingTeam] = struct{}{}
		seen[1][ex.Features.BowlingTeam] = struct{}{}
		seen[2][ex.Features.City] = struct{}{}
	}

	enc := &OneHotEncoder{Vocabulary: make([][]string, len(categoricalFields))}
	for i, values := range seen {
		vocab := make([]string, 0, len(values))
		for v := range values {
			vocab = append(vocab, v)
		}
		sort.Strings(vocab)
		enc.Vocabulary[i] = vocab
	}
	enc.buildIndex()
	return enc
}

// buildIndex rebuilds the value lookup tables; called after fitting and
// after loading an encoder from an artifact.
func (e *OneHotEncoder) buildIndex() {
	e.index = make([]map[string]int, len(e.Vocabulary))
	for i, vocab := range e.Vocabulary {
		idx := make(map[string]int, len(vocab))
		for j, v := range vocab {
			idx[v] = j
		}
		e.index[i] = idx
	}
}

// Width returns the total encoded feature count: indicator slots plus the
// five numeric passthrough features.
func (e *OneHotEncoder) Width() int {
	n := len(numericFields)
	for _, vocab := range e.Vocabulary {
		if len(vocab) > 1 {
			n += len(vocab) - 1
		}
	}
	return n
}

// Transform encodes a feature vector into the classifier's input layout:
// per-field indicators (first category dropped) followed by the numeric
// features unmodified.
func (e *OneHotEncoder) Transform(fv models.FeatureVector) []float64 {
	if e.index == nil {
		e.buildIndex()
	}

	out := make([]float64, 0, e.Width())
	values := []string{fv.BattingTeam, fv.BowlingTeam, fv.City}
	for i, vocab := range e.Vocabulary {
		if len(vocab) <= 1 {
			continue
		}
		indicators := make([]float64, len(vocab)-1)
		// Index 0 is the dropped reference category; unknown values leave
		// every indicator at zero.
		if j, ok := e.index[i][values[i]]; ok && j > 0 {
			indicators[j-1] = 1
		}
		out = append(out, indicators...)
	}

	return append(out, fv.Numeric()...)
}

// Knows reports whether the value was seen at training time for the given
// categorical field position.
func (e *OneHotEncoder) Knows(fieldPos int, value string) bool {
	if e.index == nil {
		e.buildIndex()
	}
	if fieldPos < 0 || fieldPos >= len(e.index) {
		return false
	}
	_, ok := e.index[fieldPos][value]
	return ok
}
