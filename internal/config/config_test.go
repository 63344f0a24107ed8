package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	clearVizEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "data", cfg.Paths.DataDir)
	assert.Equal(t, 8.0, cfg.Chart.WidthInches)
	assert.Equal(t, 6.0, cfg.Chart.HeightInches)
	assert.Equal(t, 300, cfg.Chart.DPI)
	assert.Equal(t, "white", cfg.Chart.Background)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearVizEnv(t)
	t.Setenv("VIZ_LOGGING_LEVEL", "debug")
	t.Setenv("VIZ_CHART_DPI", "72")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, 72, cfg.Chart.DPI)
}

func TestLoad_YAMLFile(t *testing.T) {
	clearVizEnv(t)

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
chart:
  width_inches: 10
  height_inches: 7.5
paths:
  output_dir: charts
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	t.Setenv("VIZ_CONFIG_FILE", configPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Chart.WidthInches)
	assert.Equal(t, 7.5, cfg.Chart.HeightInches)
	assert.Equal(t, "charts", cfg.Paths.OutputDir)
	// Untouched values keep their defaults
	assert.Equal(t, 300, cfg.Chart.DPI)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad log level", "VIZ_LOGGING_LEVEL", "verbose"},
		{"bad format", "VIZ_LOGGING_FORMAT", "xml"},
		{"zero dpi", "VIZ_CHART_DPI", "0"},
		{"negative width", "VIZ_CHART_WIDTH_INCHES", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearVizEnv(t)
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestNewPaths_RelativeDirectories(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	paths, err := NewPaths(PathsConfig{DataDir: "data", OutputDir: "output", LogsDir: "logs"})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(paths.DataDir, RatesCSVName), paths.RatesCSV)
	assert.Equal(t, filepath.Join(paths.DataDir, SurveyCSVName), paths.SurveyCSV)
	assert.Equal(t, filepath.Join(paths.OutputDir, FinalChartName), paths.FinalChartPNG)
	assert.True(t, filepath.IsAbs(paths.DataDir))
}

func TestNewPaths_EnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	paths, err := NewPaths(PathsConfig{DataDir: "data", OutputDir: "output", LogsDir: "logs"})
	require.NoError(t, err)
	require.NoError(t, paths.EnsureDirectories())

	assert.DirExists(t, paths.OutputDir)
	assert.DirExists(t, paths.LogsDir)
	// Data directory must not be created implicitly
	assert.NoDirExists(t, paths.DataDir)
}

func TestDefault_PassesValidation(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
}

// clearVizEnv removes any VIZ_ variables leaking in from the environment
func clearVizEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, "VIZ_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
