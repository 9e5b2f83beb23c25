package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viscosity-service/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, domain.FormulaKelvin, cfg.Calc.DefaultFormula)
	assert.Empty(t, cfg.Calc.MediaCatalogPath)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOGGER_FORMAT", "text")
	t.Setenv("CALC_DEFAULT_FORMULA", "Legacy")
	t.Setenv("MEDIA_CATALOG_PATH", "/etc/viscosity/media.yaml")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "text", cfg.Logger.Format)
	assert.Equal(t, domain.FormulaLegacy, cfg.Calc.DefaultFormula)
	assert.Equal(t, "/etc/viscosity/media.yaml", cfg.Calc.MediaCatalogPath)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_InvalidShutdownFallsBack(t *testing.T) {
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoad_UnknownFormula(t *testing.T) {
	t.Setenv("CALC_DEFAULT_FORMULA", "fahrenheit")

	_, err := Load()
	assert.ErrorIs(t, err, domain.ErrUnknownFormula)
}
