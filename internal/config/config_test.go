package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) }) //nolint:errcheck
	return dir
}

func TestLoadDefaults(t *testing.T) {
	// Change to temp dir so no config.yaml is found
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "volcanoes.csv", cfg.Data.Volcanoes)
	assert.Equal(t, "worldcities.csv", cfg.Data.Cities)
	assert.Equal(t, "iso-8859-1", cfg.Data.VolcanoEncoding)
	assert.Zero(t, cfg.Data.MinPopulation)
	assert.InDelta(t, 50.0, cfg.Proximity.ThresholdMiles, 0.001)
	assert.Zero(t, cfg.Proximity.Workers)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30, cfg.Fetch.TimeoutSecs)
	assert.Equal(t, 3, cfg.Fetch.MaxRetries)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate("serve"))
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
data:
  volcanoes: https://example.com/volcanoes.csv
  min_population: 500000
proximity:
  threshold_miles: 25.5
  workers: 4
log:
  level: debug
  format: console
server:
  port: 9090
  allowed_origins:
    - https://dash.example.com
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.com/volcanoes.csv", cfg.Data.Volcanoes)
	assert.Equal(t, int64(500000), cfg.Data.MinPopulation)
	assert.InDelta(t, 25.5, cfg.Proximity.ThresholdMiles, 0.001)
	assert.Equal(t, 4, cfg.Proximity.Workers)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"https://dash.example.com"}, cfg.Server.AllowedOrigins)
	// Defaults still apply for unset values
	assert.Equal(t, "worldcities.csv", cfg.Data.Cities)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
proximity:
  threshold_miles: 10
log:
  level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))

	t.Setenv("VOLCANO_PROXIMITY_THRESHOLD_MILES", "75")
	t.Setenv("VOLCANO_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	// Env overrides file
	assert.InDelta(t, 75.0, cfg.Proximity.ThresholdMiles, 0.001)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadEnvOverridesDefaults(t *testing.T) {
	chdirTemp(t)

	t.Setenv("VOLCANO_SERVER_PORT", "3000")
	t.Setenv("VOLCANO_DATA_CITIES", "/srv/data/worldcities.csv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "/srv/data/worldcities.csv", cfg.Data.Cities)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("data: [unterminated"), 0o644))

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read file")
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}

// validDefaults returns a Config with all defaults populated for validation tests.
func validDefaults() *Config {
	cfg := &Config{}
	cfg.Data.Volcanoes = "volcanoes.csv"
	cfg.Data.Cities = "worldcities.csv"
	cfg.Proximity.ThresholdMiles = 50
	cfg.Server.Port = 8080
	return cfg
}

func TestValidateCompute(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	assert.NoError(t, cfg.Validate("compute"))
}

func TestValidateServe_InvalidPort(t *testing.T) {
	cfg := validDefaults()
	cfg.Server.Port = 0

	err := cfg.Validate("serve")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "server.port must be between 1 and 65535")
}

func TestValidateUnknownMode(t *testing.T) {
	cfg := validDefaults()
	err := cfg.Validate("unknown")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mode")
}

func TestValidateMissingSources(t *testing.T) {
	cfg := validDefaults()
	cfg.Data.Volcanoes = ""
	cfg.Data.Cities = ""

	err := cfg.Validate("compute")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data.volcanoes is required")
	assert.Contains(t, err.Error(), "data.cities is required")
}

func TestValidateProximityBounds(t *testing.T) {
	cfg := validDefaults()

	cfg.Proximity.ThresholdMiles = -1
	err := cfg.Validate("compute")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "threshold_miles")

	cfg.Proximity.ThresholdMiles = math.NaN()
	assert.Error(t, cfg.Validate("compute"))

	cfg.Proximity.ThresholdMiles = 0
	assert.NoError(t, cfg.Validate("compute"))

	cfg.Proximity.Workers = -2
	err = cfg.Validate("compute")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "proximity.workers")
}

func TestValidateMinPopulation(t *testing.T) {
	cfg := validDefaults()
	cfg.Data.MinPopulation = -5

	err := cfg.Validate("compute")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "data.min_population")
}
