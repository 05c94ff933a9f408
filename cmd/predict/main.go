// Package main provides a one-shot command-line prediction.
package main

import (
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/cricket-predictor/internal/config"
	"github.com/yourusername/cricket-predictor/internal/features"
	"github.com/yourusername/cricket-predictor/internal/logger"
	"github.com/yourusername/cricket-predictor/internal/ml"
	"github.com/yourusername/cricket-predictor/internal/models"
	"github.com/yourusername/cricket-predictor/internal/service"
)

var (
	configFile string
	cfg        *config.Config
	appLogger  *logrus.Logger

	battingTeam string
	bowlingTeam string
	city        string
	target      int
	score       int
	oversText   string
	wickets     int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.Flags().StringVar(&battingTeam, "batting-team", "", "Batting (chasing) team")
	rootCmd.Flags().StringVar(&bowlingTeam, "bowling-team", "", "Bowling team")
	rootCmd.Flags().StringVar(&city, "city", "", "Host city")
	rootCmd.Flags().IntVar(&target, "target", 0, "Target score")
	rootCmd.Flags().IntVar(&score, "score", 0, "Current score")
	rootCmd.Flags().StringVar(&oversText, "overs", "0.0", "Overs done, e.g. 8.5")
	rootCmd.Flags().IntVar(&wickets, "wickets", 0, "Wickets fallen")
}

var rootCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict the batting side's win probability for a live chase",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return predict()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func predict() error {
	overs, err := features.ParseOvers(oversText)
	if err != nil {
		return err
	}

	model, err := ml.LoadModel(cfg.Predictor.ModelPath)
	if err != nil {
		return err
	}
	vocab, err := service.LoadVocabulary(cfg.Predictor.TeamVocabPath, cfg.Predictor.CityVocabPath)
	if err != nil {
		appLogger.WithError(err).Warn("Vocabulary artifacts unavailable, using training vocabulary")
		vocab = nil
	}

	state := models.MatchState{
		BattingTeam:   battingTeam,
		BowlingTeam:   bowlingTeam,
		City:          city,
		Target:        target,
		CurrentScore:  score,
		OversDone:     overs,
		WicketsFallen: wickets,
	}
	if err := state.Validate(); err != nil {
		return err
	}

	predictor := service.NewPredictor(model, vocab, appLogger)
	pred, err := predictor.PredictLive(state)
	if err != nil {
		return err
	}

	fmt.Printf("%s win probability: %.1f%%\n", pred.BattingTeam, pred.WinProbability*100)
	fmt.Printf("%s win probability: %.1f%%\n", pred.BowlingTeam, pred.LossProbability*100)
	fmt.Printf("Needs %d runs from %d balls with %d wickets in hand (CRR %.2f, RRR %.2f)\n",
		pred.RunsLeft, pred.BallsLeft, pred.WicketsLeft, pred.CRR, pred.RRR)

	return nil
}
