// Package server exposes the predictor service over HTTP and websocket.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/cricket-predictor/internal/config"
	"github.com/yourusername/cricket-predictor/internal/models"
	"github.com/yourusername/cricket-predictor/internal/repository"
	"github.com/yourusername/cricket-predictor/internal/service"
)

// LivePredictor is what the transport needs from the prediction core.
// Both service.Predictor and service.CachedPredictor satisfy it.
type LivePredictor interface {
	PredictLive(state models.MatchState) (*models.Prediction, error)
	Vocab() *service.Vocabulary
}

// DatabasePinger reports database connectivity for readiness checks.
type DatabasePinger interface {
	Ping(ctx context.Context) error
}

// Server serves prediction requests, vocabulary lookups, health checks and
// metrics on a single port.
type Server struct {
	predictor LivePredictor
	audit     *repository.PredictionRepository
	db        DatabasePinger
	cfg       config.ServerConfig
	logger    *logrus.Logger
	server    *http.Server
}

// Options holds the optional collaborators of the server.
type Options struct {
	Audit       *repository.PredictionRepository
	DB          DatabasePinger
	MetricsPath string
}

// New creates the prediction API server.
func New(cfg config.ServerConfig, predictor LivePredictor, opts Options, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}

	s := &Server{
		predictor: predictor,
		audit:     opts.Audit,
		db:        opts.DB,
		cfg:       cfg,
		logger:    logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/predict", s.handlePredict)
	mux.HandleFunc("GET /api/v1/teams", s.handleTeams)
	mux.HandleFunc("GET /api/v1/cities", s.handleCities)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	if cfg.WebsocketEnabled {
		mux.HandleFunc("GET /ws", s.handleWebsocket)
	}

	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	mux.Handle("GET "+metricsPath, promhttp.Handler())

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestLogging(mux),
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}

	return s
}

// Start runs the server until the listener fails or Shutdown is called.
func (s *Server) Start() error {
	s.logger.WithField("addr", s.server.Addr).Info("Starting prediction server")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down prediction server")
	return s.server.Shutdown(ctx)
}

func (s *Server) withRequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start),
		}).Debug("Handled request")
	})
}
