// Package config provides configuration management for the cricket predictor.
package config

// Config represents the complete application configuration
type Config struct {
	App       AppConfig       `mapstructure:"app" validate:"required"`
	Dataset   DatasetConfig   `mapstructure:"dataset" validate:"required"`
	Training  TrainingConfig  `mapstructure:"training" validate:"required"`
	Predictor PredictorConfig `mapstructure:"predictor" validate:"required"`
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// DatasetConfig represents dataset builder configuration
type DatasetConfig struct {
	MatchesPath    string         `mapstructure:"matches_path" validate:"required"`
	DeliveriesPath string         `mapstructure:"deliveries_path" validate:"required"`
	OutputPath     string         `mapstructure:"output_path" validate:"required"`
	SeasonFilter   string         `mapstructure:"season_filter" validate:"required"`
	Download       DownloadConfig `mapstructure:"download"`
}

// DownloadConfig represents optional HTTP fetching of the raw CSV exports
type DownloadConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	MatchesURL     string  `mapstructure:"matches_url" validate:"omitempty,url"`
	DeliveriesURL  string  `mapstructure:"deliveries_url" validate:"omitempty,url"`
	TimeoutSeconds int     `mapstructure:"timeout_seconds" validate:"omitempty,gt=0"`
	MaxRetries     int     `mapstructure:"max_retries" validate:"omitempty,gte=0"`
	RateLimit      float64 `mapstructure:"rate_limit" validate:"omitempty,gt=0"`
}

// TrainingConfig represents classifier training configuration
type TrainingConfig struct {
	DatasetPath      string  `mapstructure:"dataset_path" validate:"required"`
	ModelPath        string  `mapstructure:"model_path" validate:"required"`
	TeamVocabPath    string  `mapstructure:"team_vocab_path" validate:"required"`
	CityVocabPath    string  `mapstructure:"city_vocab_path" validate:"required"`
	LearningRate     float64 `mapstructure:"learning_rate" validate:"required,gt=0"`
	MaxIterations    int     `mapstructure:"max_iterations" validate:"required,gt=0"`
	Tolerance        float64 `mapstructure:"tolerance" validate:"required,gt=0"`
	TeamOverridePath string  `mapstructure:"team_override_path"`
	CityOverridePath string  `mapstructure:"city_override_path"`
}

// PredictorConfig represents runtime prediction configuration
type PredictorConfig struct {
	ModelPath       string `mapstructure:"model_path" validate:"required"`
	TeamVocabPath   string `mapstructure:"team_vocab_path" validate:"required"`
	CityVocabPath   string `mapstructure:"city_vocab_path" validate:"required"`
	CacheEnabled    bool   `mapstructure:"cache_enabled"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"omitempty,gt=0"`
	CacheMaxSize    int    `mapstructure:"cache_max_size" validate:"omitempty,gt=0"`
}

// ServerConfig represents the prediction API server configuration
type ServerConfig struct {
	Port                int  `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadTimeoutSeconds  int  `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	WriteTimeoutSeconds int  `mapstructure:"write_timeout_seconds" validate:"required,gt=0"`
	WebsocketEnabled    bool `mapstructure:"websocket_enabled"`
	AuditLogEnabled     bool `mapstructure:"audit_log_enabled"`
}

// DatabaseConfig represents the optional prediction audit database
type DatabaseConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	Host           string `mapstructure:"host" validate:"required_if=Enabled true"`
	Port           int    `mapstructure:"port" validate:"omitempty,min=1,max=65535"`
	Name           string `mapstructure:"name" validate:"required_if=Enabled true"`
	User           string `mapstructure:"user" validate:"required_if=Enabled true"`
	Password       string `mapstructure:"password"`
	SSLMode        string `mapstructure:"ssl_mode" validate:"omitempty,oneof=disable require verify-full"`
	MaxConnections int    `mapstructure:"max_connections" validate:"omitempty,gt=0"`
}

// MetricsConfig represents metrics exposure configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
