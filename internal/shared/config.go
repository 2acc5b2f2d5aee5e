package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// DefaultConfigPath is where the CLI looks for a config file when --config is not given.
const DefaultConfigPath = "~/.lyrx/config.toml"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Player   PlayerConfig   `toml:"player"`
	Lyrics   LyricsConfig   `toml:"lyrics"`
	Input    InputConfig    `toml:"input"`
	History  HistoryConfig  `toml:"history"`
	Database DatabaseConfig `toml:"database"`
	Log      LogConfig      `toml:"log"`
}

// PlayerConfig selects the MPRIS player to follow.
type PlayerConfig struct {
	Name string `toml:"name"`
}

// LyricsConfig contains settings for the lyrics site fetcher.
type LyricsConfig struct {
	BaseURL        string  `toml:"base_url"`
	TimeoutSeconds int     `toml:"timeout_seconds"`
	RateLimit      float64 `toml:"rate_limit"`
	UserAgent      string  `toml:"user_agent"`
}

// Timeout returns the per-request timeout.
func (c LyricsConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// InputConfig contains terminal input settings.
type InputConfig struct {
	PollIntervalMS int `toml:"poll_interval_ms"`
}

// PollInterval returns the bounded wait used when polling for input.
func (c InputConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// HistoryConfig controls play history recording.
type HistoryConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DatabaseConfig contains database connection settings.
type DatabaseConfig struct {
	MaxOpenConns int `toml:"max_open_conns"`
	MaxIdleConns int `toml:"max_idle_conns"`
}

// LogConfig controls where and how verbosely the display logs.
type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.Player.Name == "":
		return fmt.Errorf("%w: player.name is empty", ErrInvalidConfig)
	case c.Lyrics.BaseURL == "":
		return fmt.Errorf("%w: lyrics.base_url is empty", ErrInvalidConfig)
	case c.Lyrics.TimeoutSeconds <= 0:
		return fmt.Errorf("%w: lyrics.timeout_seconds must be positive", ErrInvalidConfig)
	case c.Lyrics.RateLimit <= 0:
		return fmt.Errorf("%w: lyrics.rate_limit must be positive", ErrInvalidConfig)
	case c.Input.PollIntervalMS <= 0:
		return fmt.Errorf("%w: input.poll_interval_ms must be positive", ErrInvalidConfig)
	case c.History.Enabled && c.History.Path == "":
		return fmt.Errorf("%w: history.path is empty", ErrInvalidConfig)
	}
	return nil
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
