package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	defaultDataPath  = "./data/Olympics.csv"
	defaultAddress   = ":8080"
	defaultLogLevel  = "info"
	defaultRateLimit = 20
)

// Environment overrides, applied after the config file.
const (
	EnvDataPath  = "MEDALBOARD_DATA_PATH"
	EnvAddress   = "MEDALBOARD_ADDRESS"
	EnvLogLevel  = "MEDALBOARD_LOG_LEVEL"
	EnvRateLimit = "MEDALBOARD_RATE_LIMIT"
)

type Config struct {
	// DataPath is the medal CSV. It is also the dataset cache key.
	DataPath string `yaml:"data_path"`
	Address  string `yaml:"address"`
	LogLevel string `yaml:"log_level"`
	// RateLimit is requests per second per client IP; 0 turns it off.
	RateLimit float64 `yaml:"rate_limit"`
}

func Default() *Config {
	return &Config{
		DataPath:  defaultDataPath,
		Address:   defaultAddress,
		LogLevel:  defaultLogLevel,
		RateLimit: defaultRateLimit,
	}
}

// Load builds the config from defaults, then the YAML file at path (skipped
// when path is empty), then the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDataPath); v != "" {
		c.DataPath = v
	}
	if v := os.Getenv(EnvAddress); v != "" {
		c.Address = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvRateLimit); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvRateLimit, err)
		}
		c.RateLimit = f
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DataPath == "" {
		errs = append(errs, errors.New("data path is required"))
	}
	if c.Address == "" {
		errs = append(errs, errors.New("address is required"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		errs = append(errs, fmt.Errorf("log level %q is not valid", c.LogLevel))
	}
	if c.RateLimit < 0 {
		errs = append(errs, errors.New("rate limit must not be negative"))
	}
	return errors.Join(errs...)
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c *Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
