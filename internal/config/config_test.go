package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadValidConfig(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cricket-predictor", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "IPL", cfg.Dataset.SeasonFilter)
	assert.InDelta(t, 0.05, cfg.Training.LearningRate, 1e-12)
	assert.Equal(t, 500, cfg.Training.MaxIterations)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.WebsocketEnabled)
	assert.True(t, cfg.Predictor.CacheEnabled)
	assert.Equal(t, "s3cret", cfg.Database.Password, "placeholders expand from the environment")
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "does_not_exist.yaml"))
	assert.Error(t, err)
}

func TestLoadWithDefaults(t *testing.T) {
	cfg, err := LoadWithDefaults(filepath.Join("testdata", "does_not_exist.yaml"))
	require.NoError(t, err, "a missing file falls back to defaults")

	assert.Equal(t, "cricket-predictor", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "IPL", cfg.Dataset.SeasonFilter)
	assert.InDelta(t, 0.1, cfg.Training.LearningRate, 1e-12)
	assert.Equal(t, 1000, cfg.Training.MaxIterations)
	assert.Equal(t, 30, cfg.Predictor.CacheTTLSeconds)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadWithDefaultsEnvOverride(t *testing.T) {
	t.Setenv("CRICKET_PREDICTOR_APP_LOG_LEVEL", "debug")
	t.Setenv("CRICKET_PREDICTOR_DATASET_SEASON_FILTER", "2020")

	cfg, err := LoadWithDefaults(filepath.Join("testdata", "does_not_exist.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "2020", cfg.Dataset.SeasonFilter)
}

func TestValidateAcceptsLoadedConfig(t *testing.T) {
	t.Setenv("TEST_DB_PASSWORD", "s3cret")

	cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg))
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := func(t *testing.T) *Config {
		t.Setenv("TEST_DB_PASSWORD", "s3cret")
		cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
		require.NoError(t, err)
		return cfg
	}

	t.Run("unknown environment", func(t *testing.T) {
		cfg := base(t)
		cfg.App.Environment = "qa"
		assert.Error(t, Validate(cfg))
	})

	t.Run("unknown log level", func(t *testing.T) {
		cfg := base(t)
		cfg.App.LogLevel = "verbose"
		assert.Error(t, Validate(cfg))
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := base(t)
		cfg.Server.Port = 70000
		assert.Error(t, Validate(cfg))
	})

	t.Run("negative learning rate", func(t *testing.T) {
		cfg := base(t)
		cfg.Training.LearningRate = -0.1
		assert.Error(t, Validate(cfg))
	})
}

func TestValidateCrossField(t *testing.T) {
	t.Run("download needs both urls", func(t *testing.T) {
		t.Setenv("TEST_DB_PASSWORD", "s3cret")
		cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
		require.NoError(t, err)

		cfg.Dataset.Download.Enabled = true
		cfg.Dataset.Download.MatchesURL = "https://example.com/matches.csv"
		assert.Error(t, Validate(cfg), "deliveries_url is still missing")

		cfg.Dataset.Download.DeliveriesURL = "https://example.com/deliveries.csv"
		assert.NoError(t, Validate(cfg))
	})

	t.Run("audit log needs the database", func(t *testing.T) {
		t.Setenv("TEST_DB_PASSWORD", "s3cret")
		cfg, err := Load(filepath.Join("testdata", "valid_config.yaml"))
		require.NoError(t, err)

		cfg.Server.AuditLogEnabled = true
		assert.Error(t, Validate(cfg))

		cfg.Database.Enabled = true
		assert.NoError(t, Validate(cfg))
	})
}
