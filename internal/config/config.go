package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/buraco/internal/game"
)

// Config represents the application configuration
type Config struct {
	Game    GameSection    `toml:"game"`
	Display DisplaySection `toml:"display"`
	Log     LogSection     `toml:"log"`
}

type GameSection struct {
	Players                []string `toml:"players"`
	AllowMeldAfterTrashBuy bool     `toml:"allow_meld_after_trash_buy"`
	Seed                   uint64   `toml:"seed"`
}

type DisplaySection struct {
	Color     string `toml:"color"` // auto, always or never
	TrueColor bool   `toml:"truecolor"`
}

type LogSection struct {
	Level string `toml:"level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Game: GameSection{
			Players:                game.PlayersFor(2),
			AllowMeldAfterTrashBuy: true,
		},
		Display: DisplaySection{
			Color:     "auto",
			TrueColor: true,
		},
		Log: LogSection{
			Level: "warn",
		},
	}
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
	return filepath.Join(GetXDGConfigHome(), "buraco", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(GetConfigFilePath())
}

// LoadConfigFrom loads the config file at path, creating it with defaults if missing
func LoadConfigFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfigTo(path, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	config, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return config, nil
}

// Decode reads path on top of the defaults without creating anything
func Decode(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	return config, nil
}

// SaveConfig writes config to the default location
func SaveConfig(config *Config) error {
	return SaveConfigTo(GetConfigFilePath(), config)
}

// SaveConfigTo writes config to path
func SaveConfigTo(path string, config *Config) error {
	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(path)
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

// SetPlayers stores the player names in the config at path
func SetPlayers(path string, names []string) error {
	config, err := LoadConfigFrom(path)
	if err != nil {
		return err
	}

	config.Game.Players = names
	if err := config.Rules().Validate(); err != nil {
		return err
	}

	return SaveConfigTo(path, config)
}

// Rules converts the game section into engine rules
func (c *Config) Rules() game.Rules {
	rules := game.DefaultRules()
	if len(c.Game.Players) > 0 {
		rules.Players = append([]string(nil), c.Game.Players...)
	}
	rules.AllowMeldAfterTrashBuy = c.Game.AllowMeldAfterTrashBuy
	rules.Seed = c.Game.Seed
	return rules
}
