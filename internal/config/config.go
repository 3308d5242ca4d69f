package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

const (
	ConfigFileName = "mxfmeta.yaml"

	// EnvConfigPath names an explicit config file, overriding the search
	// in the working directory.
	EnvConfigPath = "MXFMETA_CONFIG"
)

type LoggingConfig struct {
	Verbose bool   `yaml:"verbose"`
	Format  string `yaml:"format"`
}

type ParseConfig struct {
	Strict  bool `yaml:"strict"`
	MaxSets int  `yaml:"max_sets"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Parse   ParseConfig   `yaml:"parse"`
	Output  OutputConfig  `yaml:"output"`
	Workers int           `yaml:"workers"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Format: "console"},
		Parse:   ParseConfig{MaxSets: mxf.DefaultMaxSets},
		Output:  OutputConfig{Format: "text", Color: "auto"},
		Workers: mxf.DefaultWorkers,
	}
}

// Load reads mxfmeta.yaml from dir, or the file itself when path names a
// regular file. Fields missing from the file keep their defaults.
func Load(path string) (*Config, error) {
	configPath := path
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		configPath = filepath.Join(path, ConfigFileName)
	}
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", mxf.ErrInvalidConfig, configPath, err)
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	switch c.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Errorf("output.format must be text, json or yaml, got %q", c.Output.Format))
	}
	switch c.Output.Color {
	case "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("output.color must be auto, always or never, got %q", c.Output.Color))
	}
	if c.Parse.MaxSets <= 0 {
		errs = append(errs, fmt.Errorf("parse.max_sets must be positive, got %d", c.Parse.MaxSets))
	}
	if c.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", c.Workers))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", mxf.ErrInvalidConfig, err)
	}
	return nil
}
