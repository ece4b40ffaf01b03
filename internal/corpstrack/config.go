package corpstrack

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"corpstrack/onboarding"
)

// ThemeConfig holds colour overrides for the TUI.
type ThemeConfig struct {
	Accent string `yaml:"accent"`
}

// Config holds all corpstrack configuration.
type Config struct {
	FinishDelayMS int         `yaml:"finish_delay_ms"`
	LogLevel      string      `yaml:"log_level"` // "debug", "info", "warn" or "error"
	LogPath       string      `yaml:"log_path"`
	AltScreen     bool        `yaml:"alt_screen"`
	Theme         ThemeConfig `yaml:"theme"`
}

// FinishDelay returns how long the finishing screen is shown. Non-positive
// values fall back to the onboarding default.
func (c *Config) FinishDelay() time.Duration {
	if c.FinishDelayMS <= 0 {
		return onboarding.DefaultFinishDelay
	}
	return time.Duration(c.FinishDelayMS) * time.Millisecond
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		FinishDelayMS: int(onboarding.DefaultFinishDelay / time.Millisecond),
		LogLevel:      "info",
		LogPath:       DefaultLogPath(),
		AltScreen:     true,
		Theme: ThemeConfig{
			Accent: "#008751",
		},
	}
}

// stateDir returns ~/.corpstrack, where config, log and PID files live.
func stateDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".corpstrack")
}

// ConfigPath returns the default config file path.
func ConfigPath() string {
	return filepath.Join(stateDir(), "config.yaml")
}

// DefaultLogPath returns the default log file path.
func DefaultLogPath() string {
	return filepath.Join(stateDir(), "corpstrack.log")
}

// LoadConfig reads config from file, falling back to defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Environment variable overrides
	if v := os.Getenv("CORPSTRACK_FINISH_DELAY_MS"); v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse CORPSTRACK_FINISH_DELAY_MS: %w", err)
		}
		cfg.FinishDelayMS = ms
	}
	if v := os.Getenv("CORPSTRACK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("CORPSTRACK_LOG_PATH"); v != "" {
		cfg.LogPath = v
	}

	if cfg.FinishDelayMS <= 0 {
		cfg.FinishDelayMS = int(onboarding.DefaultFinishDelay / time.Millisecond)
	}
	return cfg, nil
}

// SaveConfig writes config to the given path.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0600)
}

// ConfigFileExists reports whether the config file exists at the given path.
func ConfigFileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
