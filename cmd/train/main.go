// Package main provides the entry point for classifier training.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/cricket-predictor/internal/config"
	"github.com/yourusername/cricket-predictor/internal/dataset"
	"github.com/yourusername/cricket-predictor/internal/logger"
	"github.com/yourusername/cricket-predictor/internal/ml"
)

var (
	configFile string
	cfg        *config.Config
	appLogger  *logrus.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
}

var rootCmd = &cobra.Command{
	Use:   "train",
	Short: "Train the win-probability classifier on the processed dataset",
	Long: `Fits a logistic regression over the one-hot encoded match features and
writes the model artifact plus the team and city vocabulary files consumed
by the predictor.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return train()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func train() error {
	trCfg := cfg.Training

	f, err := os.Open(trCfg.DatasetPath)
	if err != nil {
		return fmt.Errorf("failed to open processed dataset: %w", err)
	}
	defer f.Close()

	rows, err := dataset.ReadProcessed(f)
	if err != nil {
		return err
	}

	examples := dataset.Examples(rows)

	model, err := ml.Train(examples, ml.TrainerConfig{
		LearningRate:  trCfg.LearningRate,
		MaxIterations: trCfg.MaxIterations,
		Tolerance:     trCfg.Tolerance,
	}, appLogger)
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	if err := ml.SaveModel(trCfg.ModelPath, model); err != nil {
		return err
	}

	teams, err := vocabulary(model.Teams(), trCfg.TeamOverridePath)
	if err != nil {
		return fmt.Errorf("failed to load team override: %w", err)
	}
	cities, err := vocabulary(model.Cities(), trCfg.CityOverridePath)
	if err != nil {
		return fmt.Errorf("failed to load city override: %w", err)
	}

	if err := ml.SaveVocabulary(trCfg.TeamVocabPath, teams); err != nil {
		return err
	}
	if err := ml.SaveVocabulary(trCfg.CityVocabPath, cities); err != nil {
		return err
	}

	appLogger.WithFields(logrus.Fields{
		"model":  trCfg.ModelPath,
		"teams":  len(teams),
		"cities": len(cities),
	}).Info("Training artifacts written")

	return nil
}

// vocabulary returns the curated override list when one is configured,
// otherwise the values observed at training time.
func vocabulary(observed []string, overridePath string) ([]string, error) {
	if overridePath == "" {
		return observed, nil
	}
	return ml.LoadVocabulary(overridePath)
}
