package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"viscosity-service/internal/core/domain"
)

type Config struct {
	Server  ServerConfig
	Logger  LoggerConfig
	Calc    CalcConfig
	Metrics MetricsConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level  string
	Format string
}

type CalcConfig struct {
	DefaultFormula   domain.Formula
	MediaCatalogPath string
}

type MetricsConfig struct {
	Enabled bool
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")
	v.SetDefault("CALC_DEFAULT_FORMULA", string(domain.FormulaKelvin))
	v.SetDefault("MEDIA_CATALOG_PATH", "")
	v.SetDefault("METRICS_ENABLED", true)

	// Env
	v.AutomaticEnv()

	shutdown, err := time.ParseDuration(v.GetString("SERVER_SHUTDOWN_TIMEOUT"))
	if err != nil {
		shutdown = 10 * time.Second
	}

	formula := domain.Formula(strings.ToLower(strings.TrimSpace(v.GetString("CALC_DEFAULT_FORMULA"))))
	if _, ok := domain.ModelFor(formula); !ok {
		return nil, fmt.Errorf("CALC_DEFAULT_FORMULA %q: %w", formula, domain.ErrUnknownFormula)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("SERVER_HOST"),
			Port:            v.GetInt("SERVER_PORT"),
			ShutdownTimeout: shutdown,
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
		Calc: CalcConfig{
			DefaultFormula:   formula,
			MediaCatalogPath: v.GetString("MEDIA_CATALOG_PATH"),
		},
		Metrics: MetricsConfig{
			Enabled: v.GetBool("METRICS_ENABLED"),
		},
	}

	return cfg, nil
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
