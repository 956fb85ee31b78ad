package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Storage       StorageConfig       `toml:"storage"`
	Host          HostConfig          `toml:"host"`
	Notifications NotificationsConfig `toml:"notifications"`
	Log           LogConfig           `toml:"log"`
}

// StorageConfig contains settings for the local record slot.
type StorageConfig struct {
	// Dir is the directory holding the local JSON slot file.
	// Empty means the current working directory.
	Dir string `toml:"dir"`
}

// HostConfig describes the host-provided offline store. An empty
// Database path means the host capability is absent and the local
// backend is used instead. The TICK_HOST_DB environment variable
// overrides this value.
type HostConfig struct {
	Database string `toml:"database"`
}

// NotificationsConfig controls the announcement side-channel.
type NotificationsConfig struct {
	// Mode is one of "auto" (probe for a channel, ask for permission),
	// "on" (host channel, no permission gate) or "off".
	Mode string `toml:"mode"`
	// RatePerSecond caps announcements; zero means the default budget.
	RatePerSecond float64 `toml:"rate_per_second"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	// File receives log output when set; used by the TUI.
	File string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HostDatabase resolves the host store path, letting the TICK_HOST_DB
// environment variable override the configured value.
func (c *Config) HostDatabase() string {
	if env := os.Getenv("TICK_HOST_DB"); env != "" {
		return env
	}
	return c.Host.Database
}
