// Package main provides the entry point for the prediction API server.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/cricket-predictor/internal/config"
	"github.com/yourusername/cricket-predictor/internal/database"
	"github.com/yourusername/cricket-predictor/internal/logger"
	"github.com/yourusername/cricket-predictor/internal/ml"
	"github.com/yourusername/cricket-predictor/internal/repository"
	"github.com/yourusername/cricket-predictor/internal/server"
	"github.com/yourusername/cricket-predictor/internal/service"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
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
	Use:   "predictor-server",
	Short: "Serve live win-probability predictions over HTTP",
	Long: `Loads the trained model and vocabulary artifacts once at startup and
serves predictions, vocabulary lookups, health checks and Prometheus
metrics on a single port.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
			region := os.Getenv("AWS_REGION")
			secretName := os.Getenv("AWS_SECRET_NAME")
			if region == "" || secretName == "" {
				return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
			}
			if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
				return fmt.Errorf("failed to load secrets: %w", err)
			}
		}
		if err := config.Validate(cfg); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run(ctx context.Context) error {
	appLogger.WithFields(logrus.Fields{
		"version": Version,
		"commit":  GitCommit,
	}).Info("Starting cricket predictor")

	model, err := ml.LoadModel(cfg.Predictor.ModelPath)
	if err != nil {
		return fmt.Errorf("failed to load model artifact: %w", err)
	}
	vocab, err := service.LoadVocabulary(cfg.Predictor.TeamVocabPath, cfg.Predictor.CityVocabPath)
	if err != nil {
		appLogger.WithError(err).Warn("Vocabulary artifacts unavailable, using training vocabulary")
		vocab = nil
	}

	basePredictor := service.NewPredictor(model, vocab, appLogger)
	var predictor server.LivePredictor = basePredictor
	if cfg.Predictor.CacheEnabled {
		predictor = service.NewCachedPredictor(
			basePredictor,
			time.Duration(cfg.Predictor.CacheTTLSeconds)*time.Second,
			cfg.Predictor.CacheMaxSize,
			appLogger,
		)
	}

	opts := server.Options{MetricsPath: cfg.Metrics.Path}
	if cfg.Database.Enabled {
		db, err := database.NewDB(ctx, &cfg.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		defer db.Close()
		opts.DB = db

		if cfg.Server.AuditLogEnabled {
			audit := repository.NewPredictionRepository(db)
			if err := audit.EnsureSchema(ctx); err != nil {
				return err
			}
			opts.Audit = audit
		}
	}

	srv := server.New(cfg.Server, predictor, opts, appLogger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		appLogger.WithField("signal", sig.String()).Info("Shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
