package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level pushrec.yaml configuration.
type Config struct {
	DataDir  string `yaml:"data_dir"`
	Output   string `yaml:"output"`
	Clients  int    `yaml:"clients"`
	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file or overrides
// are present.
func Default() *Config {
	return &Config{
		DataDir:  "data",
		Output:   "personalized_recommendations.csv",
		Clients:  60,
		LogLevel: "info",
	}
}

// Load reads pushrec.yaml and applies environment overrides. A missing
// config file is fine: defaults apply. A .env file in the working
// directory is honored when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		// Defaults.
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	_ = godotenv.Load()

	cfg.DataDir = getEnv("PUSHREC_DATA_DIR", cfg.DataDir)
	cfg.Output = getEnv("PUSHREC_OUTPUT", cfg.Output)
	cfg.LogLevel = getEnv("PUSHREC_LOG_LEVEL", cfg.LogLevel)
	if v, ok := os.LookupEnv("PUSHREC_CLIENTS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parsing PUSHREC_CLIENTS %q: %w", v, err)
		}
		cfg.Clients = n
	}

	if cfg.Clients <= 0 {
		return nil, fmt.Errorf("clients must be positive, got %d", cfg.Clients)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
