// Package config provides configuration management for the cricket predictor.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator with custom validation rules
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new validator with custom validation functions
func NewValidator() *CustomValidator {
	v := validator.New()

	if err := v.RegisterValidation("environment", validateEnvironment); err != nil {
		panic(fmt.Sprintf("failed to register environment validator: %v", err))
	}
	if err := v.RegisterValidation("loglevel", validateLogLevel); err != nil {
		panic(fmt.Sprintf("failed to register loglevel validator: %v", err))
	}

	return &CustomValidator{validator: v}
}

// Validate validates the entire configuration
func Validate(cfg *Config) error {
	cv := NewValidator()
	return cv.Validate(cfg)
}

// Validate validates the configuration using registered validation rules
func (cv *CustomValidator) Validate(cfg *Config) error {
	err := cv.validator.Struct(cfg)
	if err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			return formatValidationErrors(validationErrors)
		}
		return fmt.Errorf("validation failed: %w", err)
	}

	return validateCrossField(cfg)
}

// validateEnvironment validates the environment field
func validateEnvironment(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "development", "staging", "production":
		return true
	default:
		return false
	}
}

// validateLogLevel validates the log level field
func validateLogLevel(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "debug", "info", "warn", "error":
		return true
	default:
		return false
	}
}

// validateCrossField applies constraints spanning multiple sections
func validateCrossField(cfg *Config) error {
	if cfg.Dataset.Download.Enabled {
		if cfg.Dataset.Download.MatchesURL == "" || cfg.Dataset.Download.DeliveriesURL == "" {
			return fmt.Errorf("dataset.download requires both matches_url and deliveries_url when enabled")
		}
	}
	if cfg.Server.AuditLogEnabled && !cfg.Database.Enabled {
		return fmt.Errorf("server.audit_log_enabled requires database.enabled")
	}
	return nil
}

func formatValidationErrors(errs validator.ValidationErrors) error {
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, fmt.Sprintf("%s failed on '%s'", e.Namespace(), e.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, "; "))
}
