package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Chart   ChartConfig   `yaml:"chart" envconfig:"CHART"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level       string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format      string `yaml:"format" envconfig:"FORMAT" validate:"oneof=text json"`
	Output      string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=console file both"`
	FilePath    string `yaml:"file_path" envconfig:"FILE_PATH"`
	Development bool   `yaml:"development" envconfig:"DEVELOPMENT"`
}

// PathsConfig contains file system paths configuration.
// Relative values resolve against the working directory so the bare
// invocation finds the bundled CSV files next to the caller.
type PathsConfig struct {
	DataDir   string `yaml:"data_dir" envconfig:"DATA_DIR"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	LogsDir   string `yaml:"logs_dir" envconfig:"LOGS_DIR"`
}

// ChartConfig contains rendering defaults for exported charts
type ChartConfig struct {
	WidthInches   float64 `yaml:"width_inches" envconfig:"WIDTH_INCHES" validate:"gt=0"`
	HeightInches  float64 `yaml:"height_inches" envconfig:"HEIGHT_INCHES" validate:"gt=0"`
	DPI           int     `yaml:"dpi" envconfig:"DPI" validate:"gt=0"`
	Background    string  `yaml:"background" envconfig:"BACKGROUND" validate:"oneof=white transparent"`
	HistogramBins int     `yaml:"histogram_bins" envconfig:"HISTOGRAM_BINS" validate:"gt=1"`
}

// Load loads configuration in precedence order: built-in defaults, then an
// optional YAML file named by VIZ_CONFIG_FILE, then VIZ_-prefixed
// environment variables.
func Load() (*Config, error) {
	cfg := Default()

	if configFile := os.Getenv("VIZ_CONFIG_FILE"); configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("VIZ", cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	return nil
}

// Validate checks the configuration for invalid field values
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Default returns a Config with all default values applied, used by the
// cmd mains as a fallback when Load fails before logging is available.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:       "info",
			Format:      "text",
			Output:      "console",
			FilePath:    "logs/vizcli.log",
			Development: true,
		},
		Paths: PathsConfig{
			DataDir:   "data",
			OutputDir: "output",
			LogsDir:   "logs",
		},
		Chart: ChartConfig{
			WidthInches:   8,
			HeightInches:  6,
			DPI:           300,
			Background:    "white",
			HistogramBins: 16,
		},
	}
}
