package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Address book snapshot settings
	Book BookConfig `yaml:"book"`

	// Encrypted archive settings
	Archive ArchiveConfig `yaml:"archive"`
}

type BookConfig struct {
	Path               string `yaml:"path"`                 // Path to the snapshot file
	BirthdayWindowDays int    `yaml:"birthday_window_days"` // Reminder window for `birthdays`
}

type ArchiveConfig struct {
	Path string `yaml:"path"` // Path to the encrypted SQLite archive
}

// DefaultConfigPath returns ~/.config/rolodex/config.yaml
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home dir unavailable
		return filepath.Join(".", ".config", "rolodex", "config.yaml")
	}
	return filepath.Join(homeDir, ".config", "rolodex", "config.yaml")
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return &Config{
		Book: BookConfig{
			Path:               filepath.Join(homeDir, ".config", "rolodex", "addressbook.gob"),
			BirthdayWindowDays: 7,
		},
		Archive: ArchiveConfig{
			Path: filepath.Join(homeDir, ".config", "rolodex", "rolodex.db"),
		},
	}
}

// Load loads config from the given path, or returns defaults if file doesn't exist
func Load(path string) (*Config, error) {
	// If file doesn't exist, return defaults
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	// Read file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Parse YAML
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads from the default config path
func LoadDefault() (*Config, error) {
	return Load(DefaultConfigPath())
}

// Save writes the config to the given path
func (c *Config) Save(path string) error {
	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Marshal to YAML
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	// Write to file
	return os.WriteFile(path, data, 0644)
}

// EnsureDirectories creates the directories the snapshot and archive live in
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(c.Book.Path), 0700); err != nil {
		return err
	}
	return os.MkdirAll(filepath.Dir(c.Archive.Path), 0700)
}
