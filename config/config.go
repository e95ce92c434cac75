package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"tracelog/session"

	"gopkg.in/yaml.v3"
)

const (
	AppName = "tracelog"

	// DefaultPollInterval is how often tail re-reads a followed file when
	// no filesystem event arrives.
	DefaultPollInterval = 2 * time.Second
)

// Debug is set by the --debug flag and read by packages that add extra diagnostics.
var Debug bool

// Config holds the application configuration
type Config struct {
	TraceFile    string `yaml:"trace_file"`
	ASCII        bool   `yaml:"ascii"`
	DatabasePath string `yaml:"database_path"`
	SessionPath  string `yaml:"session_path"`
	Follow       Follow `yaml:"follow"`
}

// Follow holds settings for the tail command.
type Follow struct {
	Color        bool          `yaml:"color"`
	PollInterval time.Duration `yaml:"poll_interval"`
}

// GetConfig loads configuration from file and environment variables and validates it.
func GetConfig(customPath string) (*Config, error) {
	cfg, err := LoadConfigNoValidate(customPath)
	if err != nil {
		return nil, err
	}
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigNoValidate loads configuration without validating it. A missing
// default config file is not an error; a missing custom one is.
func LoadConfigNoValidate(customPath string) (*Config, error) {
	cfg := &Config{
		Follow: Follow{PollInterval: DefaultPollInterval},
	}

	// 1. Load from YAML file
	configPath, err := ResolveConfigPath(customPath)
	if err != nil {
		return nil, err
	}

	file, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		// Expand env vars before unmarshalling
		expandedFile := os.ExpandEnv(string(file))
		if err := yaml.Unmarshal([]byte(expandedFile), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
		}
		session.Debugf("config: loaded %s", configPath)
	case os.IsNotExist(err) && customPath == "":
		session.Debugf("config: %s not found, using defaults", configPath)
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	// 2. Override with environment variables
	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("TRACELOG_TRACE_FILE"); v != "" {
		cfg.TraceFile = v
	}
	if v := os.Getenv("TRACELOG_ASCII"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRACELOG_ASCII: %w", err)
		}
		cfg.ASCII = b
	}
	if v := os.Getenv("TRACELOG_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("TRACELOG_SESSION_PATH"); v != "" {
		cfg.SessionPath = v
	}
	if v := os.Getenv("TRACELOG_COLOR"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid TRACELOG_COLOR: %w", err)
		}
		cfg.Follow.Color = b
	}
	return nil
}

func validateConfig(cfg *Config) error {
	if cfg.Follow.PollInterval <= 0 {
		return fmt.Errorf("follow.poll_interval must be positive, got %s", cfg.Follow.PollInterval)
	}
	if cfg.TraceFile != "" {
		if info, err := os.Stat(cfg.TraceFile); err == nil && info.IsDir() {
			return fmt.Errorf("trace_file %s is a directory", cfg.TraceFile)
		}
	}
	return nil
}

// ResolveConfigPath returns customPath when set, otherwise the default
// config location under the user's home directory.
func ResolveConfigPath(customPath string) (string, error) {
	if customPath != "" {
		return customPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not get user home directory: %w", err)
	}
	return filepath.Join(home, ".config", AppName, "config.yaml"), nil
}
