package ml

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yourusername/cricket-predictor/internal/models"
)

// artifactVersion guards the on-disk layout. A loaded artifact with a
// different version has a schema fixed by some other build of the trainer.
const artifactVersion = 1

type modelArtifact struct {
	Version int    `json:"version"`
	Model   *Model `json:"model"`
}

// SaveModel writes the trained model artifact as JSON, creating parent
// directories as needed.
func SaveModel(path string, model *Model) error {
	if model == nil || len(model.Weights) == 0 {
		return models.ErrModelNotTrained
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create model directory: %w", err)
	}

	data, err := json.MarshalIndent(modelArtifact{Version: artifactVersion, Model: model}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write model artifact: %w", err)
	}
	return nil
}

// LoadModel reads a model artifact from disk and verifies its schema.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var artifact modelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	if artifact.Version != artifactVersion {
		return nil, fmt.Errorf("%w: artifact version %d, expected %d",
			models.ErrFeatureSchemaMismatch, artifact.Version, artifactVersion)
	}

	m := artifact.Model
	if m == nil || m.Encoder == nil || len(m.Weights) == 0 {
		return nil, models.ErrModelNotTrained
	}
	if len(m.Encoder.Vocabulary) != len(categoricalFields) {
		return nil, fmt.Errorf("%w: artifact has %d categorical fields, expected %d",
			models.ErrFeatureSchemaMismatch, len(m.Encoder.Vocabulary), len(categoricalFields))
	}
	if m.Encoder.Width()+1 != len(m.Weights) {
		return nil, fmt.Errorf("%w: %d weights for %d features",
			models.ErrFeatureSchemaMismatch, len(m.Weights), m.Encoder.Width())
	}
	m.Encoder.buildIndex()

	return m, nil
}

// SaveVocabulary writes an ordered vocabulary (teams or cities) as a sorted
// JSON string array.
func SaveVocabulary(path string, values []string) error {
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create vocabulary directory: %w", err)
	}
	data, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write vocabulary: %w", err)
	}
	return nil
}

// LoadVocabulary reads a vocabulary artifact back.
func LoadVocabulary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary: %w", err)
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}
	return values, nil
}
