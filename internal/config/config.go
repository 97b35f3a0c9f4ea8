package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

const appName = "twentyone"

// Config represents the application configuration
type Config struct {
	RecordsPath   string `toml:"records_path"`
	DealerDelayMS int    `toml:"dealer_delay_ms"`
	NoticeMS      int    `toml:"notice_ms"`
	Color         bool   `toml:"color"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DealerDelayMS: 500,
		NoticeMS:      1000,
		Color:         true,
	}
}

// DealerDelay is the pause between two dealer draws
func (c *Config) DealerDelay() time.Duration {
	return time.Duration(c.DealerDelayMS) * time.Millisecond
}

// NoticeDuration is how long a transient message such as a rejected bet stays up
func (c *Config) NoticeDuration() time.Duration {
	return time.Duration(c.NoticeMS) * time.Millisecond
}

// ResolveRecordsPath returns the configured records file or the default one in
// the data directory
func (c *Config) ResolveRecordsPath() string {
	if c.RecordsPath != "" {
		return c.RecordsPath
	}
	return GetRecordsPath()
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetDataDir returns the read-write data directory of the game
func GetDataDir() string {
	return filepath.Join(GetXDGDataHome(), appName)
}

// GetRecordsPath returns the default path of the records file
func GetRecordsPath() string {
	return filepath.Join(GetDataDir(), "records.json")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), appName, "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if it is missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if config.DealerDelayMS < 0 {
		return nil, fmt.Errorf("dealer_delay_ms must not be negative, got %d", config.DealerDelayMS)
	}
	if config.NoticeMS < 0 {
		return nil, fmt.Errorf("notice_ms must not be negative, got %d", config.NoticeMS)
	}

	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
