// Package main provides the entry point for the dataset build batch job.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/cricket-predictor/internal/config"
	"github.com/yourusername/cricket-predictor/internal/dataset"
	"github.com/yourusername/cricket-predictor/internal/logger"
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
	Use:   "build-dataset",
	Short: "Build the processed training dataset from raw ball-by-ball records",
	Long: `Replays the historical match and delivery tables into one training row
per delivery: the reconstructed chase state at that ball plus the match
outcome label. The output CSV is the trainer's input.`,
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
		return buildDataset(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func buildDataset(ctx context.Context) error {
	dsCfg := cfg.Dataset

	if dsCfg.Download.Enabled {
		if err := downloadRawFiles(ctx, dsCfg); err != nil {
			return err
		}
	}

	matchesFile, err := os.Open(dsCfg.MatchesPath)
	if err != nil {
		return fmt.Errorf("failed to open matches file: %w", err)
	}
	defer matchesFile.Close()

	matches, err := dataset.ReadMatches(matchesFile)
	if err != nil {
		return err
	}

	deliveriesFile, err := os.Open(dsCfg.DeliveriesPath)
	if err != nil {
		return fmt.Errorf("failed to open deliveries file: %w", err)
	}
	defer deliveriesFile.Close()

	deliveries, err := dataset.ReadDeliveries(deliveriesFile)
	if err != nil {
		return err
	}

	builder := dataset.NewBuilder(dsCfg.SeasonFilter, appLogger)
	rows := builder.Build(matches, deliveries)

	out, err := os.Create(dsCfg.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer out.Close()

	if err := dataset.WriteProcessed(out, rows); err != nil {
		return err
	}

	appLogger.WithFields(logrus.Fields{
		"rows":   len(rows),
		"output": dsCfg.OutputPath,
	}).Info("Processed dataset written")

	return nil
}

func downloadRawFiles(ctx context.Context, dsCfg config.DatasetConfig) error {
	dlCfg := dataset.DefaultDownloaderConfig()
	if dsCfg.Download.TimeoutSeconds > 0 {
		dlCfg.Timeout = time.Duration(dsCfg.Download.TimeoutSeconds) * time.Second
	}
	if dsCfg.Download.MaxRetries > 0 {
		dlCfg.MaxRetries = dsCfg.Download.MaxRetries
	}
	if dsCfg.Download.RateLimit > 0 {
		dlCfg.RateLimit = dsCfg.Download.RateLimit
	}

	downloader := dataset.NewDownloader(dlCfg, appLogger)
	if err := downloader.Download(ctx, dsCfg.Download.MatchesURL, dsCfg.MatchesPath); err != nil {
		return fmt.Errorf("failed to download matches: %w", err)
	}
	if err := downloader.Download(ctx, dsCfg.Download.DeliveriesURL, dsCfg.DeliveriesPath); err != nil {
		return fmt.Errorf("failed to download deliveries: %w", err)
	}
	return nil
}
