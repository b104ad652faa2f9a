// Package config loads volcano-cli settings from config.yaml and VOLCANO_*
// environment variables and installs the global logger.
package config

import (
	"math"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Data      DataConfig      `yaml:"data" mapstructure:"data"`
	Proximity ProximityConfig `yaml:"proximity" mapstructure:"proximity"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// DataConfig locates the input tables. Locations may be local paths or http(s) URLs.
type DataConfig struct {
	Volcanoes       string `yaml:"volcanoes" mapstructure:"volcanoes"`
	Cities          string `yaml:"cities" mapstructure:"cities"`
	VolcanoEncoding string `yaml:"volcano_encoding" mapstructure:"volcano_encoding"`
	VolcanoSheet    string `yaml:"volcano_sheet" mapstructure:"volcano_sheet"`
	CitySheet       string `yaml:"city_sheet" mapstructure:"city_sheet"`
	MinPopulation   int64  `yaml:"min_population" mapstructure:"min_population"`
}

// ProximityConfig configures the city/volcano aggregation.
type ProximityConfig struct {
	ThresholdMiles float64 `yaml:"threshold_miles" mapstructure:"threshold_miles"`
	Workers        int     `yaml:"workers" mapstructure:"workers"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int      `yaml:"port" mapstructure:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// FetchConfig configures remote dataset downloads.
type FetchConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
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
	v.SetEnvPrefix("VOLCANO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data.volcanoes", "volcanoes.csv")
	v.SetDefault("data.cities", "worldcities.csv")
	v.SetDefault("data.volcano_encoding", "iso-8859-1")
	v.SetDefault("data.volcano_sheet", "")
	v.SetDefault("data.city_sheet", "")
	v.SetDefault("data.min_population", 0)
	v.SetDefault("proximity.threshold_miles", 50.0)
	v.SetDefault("proximity.workers", 0)
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("fetch.timeout_secs", 30)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.user_agent", "volcano-cli/1.0")
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

// Validate checks the settings a command mode depends on. Modes are "compute" for
// the batch commands and "serve" for the HTTP API.
func (c *Config) Validate(mode string) error {
	var errs []string

	switch mode {
	case "compute":
	case "serve":
		if c.Server.Port <= 0 || c.Server.Port > 65535 {
			errs = append(errs, "server.port must be between 1 and 65535")
		}
	default:
		return eris.Errorf("config: unknown mode %q", mode)
	}

	if c.Data.Volcanoes == "" {
		errs = append(errs, "data.volcanoes is required")
	}
	if c.Data.Cities == "" {
		errs = append(errs, "data.cities is required")
	}
	if c.Data.MinPopulation < 0 {
		errs = append(errs, "data.min_population must be >= 0")
	}
	if math.IsNaN(c.Proximity.ThresholdMiles) || c.Proximity.ThresholdMiles < 0 {
		errs = append(errs, "proximity.threshold_miles must be >= 0")
	}
	if c.Proximity.Workers < 0 {
		errs = append(errs, "proximity.workers must be >= 0")
	}
	if c.Fetch.MaxRetries < 0 {
		errs = append(errs, "fetch.max_retries must be >= 0")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: %s", strings.Join(errs, "; "))
	}
	return nil
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
