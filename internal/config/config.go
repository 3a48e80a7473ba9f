package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/arcanaland/quill/internal/deck"
)

// Config represents the application configuration
type Config struct {
	DefaultFormat string `toml:"default_format" env:"QUILL_DEFAULT_FORMAT"`
	DefaultDeck   string `toml:"default_deck" env:"QUILL_DEFAULT_DECK"`
	DeckLibrary   string `toml:"deck_library,omitempty" env:"QUILL_DECK_LIBRARY"` // Overrides the XDG deck library
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "quill", "config.toml")
}

// GetDeckLibraryPath returns the path to the deck library
func GetDeckLibraryPath() string {
	if cfg, err := LoadConfig(); err == nil && cfg.DeckLibrary != "" {
		return cfg.DeckLibrary
	}
	return defaultDeckLibraryPath()
}

func defaultDeckLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "quill", "decks")
}

// LoadConfig loads the config file, creating it with defaults on first use.
// QUILL_* environment variables override values from the file.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	var config *Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config, err = createDefaultConfig()
		if err != nil {
			return nil, err
		}
	} else {
		config = &Config{}
		if _, err := toml.DecodeFile(configPath, config); err != nil {
			return nil, fmt.Errorf("error decoding config file: %w", err)
		}
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("error reading environment: %w", err)
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		DefaultFormat: "standard",
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := defaultConfig()
	if err := save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// save writes config to the config file, creating its directory
func save(config *Config) error {
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

// loadFile reads the config file without environment overrides, so that
// saving never persists a value that only came from the environment
func loadFile() (*Config, error) {
	configPath := GetConfigFilePath()
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaultConfig(), nil
	}

	config := &Config{}
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// GetDeckPath returns the path to a deck file, either in the deck library or
// a relative path. Library lookups may omit the file extension.
func GetDeckPath(deckName string) (string, error) {
	libraryPath := GetDeckLibraryPath()

	candidates := []string{filepath.Join(libraryPath, deckName)}
	for _, ext := range deck.Extensions {
		candidates = append(candidates, filepath.Join(libraryPath, deckName+ext))
	}
	candidates = append(candidates, deckName)

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, nil
		}
	}

	return "", fmt.Errorf("deck not found: %s", deckName)
}

// GetDefaultDeck returns the default deck name from config
func GetDefaultDeck() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultDeck, nil
}

// GetDefaultFormat returns the default format name from config
func GetDefaultFormat() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}
	return config.DefaultFormat, nil
}

// SetDefaultDeck sets the default deck in the config
func SetDefaultDeck(deckName string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}
	config.DefaultDeck = deckName
	return save(config)
}

// SetDefaultFormat sets the default format in the config
func SetDefaultFormat(format string) error {
	config, err := loadFile()
	if err != nil {
		return err
	}
	config.DefaultFormat = format
	return save(config)
}
