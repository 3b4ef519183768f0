// Package config loads application configuration from an optional
// config.yaml plus REPORT_-prefixed environment variables, and owns the
// global logger setup.
package config

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Registry RegistryConfig `yaml:"registry" mapstructure:"registry"`
	Check    CheckConfig    `yaml:"check" mapstructure:"check"`
	Report   ReportConfig   `yaml:"report" mapstructure:"report"`
	Server   ServerConfig   `yaml:"server" mapstructure:"server"`
	Log      LogConfig      `yaml:"log" mapstructure:"log"`
}

// RegistryConfig locates the reference registry feed. The feed is a
// published spreadsheet read through its CSV export URL, fetched fresh
// per request.
type RegistryConfig struct {
	SheetID     string `yaml:"sheet_id" mapstructure:"sheet_id"`
	GID         string `yaml:"gid" mapstructure:"gid"`
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// CheckConfig configures the embed-tag checker.
type CheckConfig struct {
	Concurrency  int    `yaml:"concurrency" mapstructure:"concurrency"`
	TimeoutSecs  int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxBodyBytes int64  `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	UserAgent    string `yaml:"user_agent" mapstructure:"user_agent"`
}

// ReportConfig configures report pagination and row capping.
type ReportConfig struct {
	PageSize        int `yaml:"page_size" mapstructure:"page_size"`
	MaxRowsPerGroup int `yaml:"max_rows_per_group" mapstructure:"max_rows_per_group"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int   `yaml:"port" mapstructure:"port"`
	MaxUploadBytes int64 `yaml:"max_upload_bytes" mapstructure:"max_upload_bytes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("REPORT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("registry.gid", "0")
	v.SetDefault("registry.timeout_secs", 30)
	v.SetDefault("check.concurrency", 10)
	v.SetDefault("check.timeout_secs", 10)
	v.SetDefault("check.max_body_bytes", 512*1024)
	v.SetDefault("check.user_agent", "Mozilla/5.0 (compatible; ReportBot/1.0)")
	v.SetDefault("report.page_size", 10)
	v.SetDefault("report.max_rows_per_group", 3)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_upload_bytes", 16*1024*1024)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
