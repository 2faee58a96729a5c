package lox

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// file config.go contains loading of the optional TOML shell configuration
// file.

// Config holds the user-tunable settings of an interactive shell session.
type Config struct {
	// Prompt is the text printed before each line of interactive input.
	Prompt string `toml:"prompt"`

	// HistoryFile is a path to a file to persist interactive line history
	// in. If empty, history is kept only for the life of the session.
	HistoryFile string `toml:"history_file"`

	// Width is the column the shell wraps its own informational output at.
	// It does not affect evaluation results or diagnostics.
	Width int `toml:"width"`
}

// DefaultConfig returns the settings used when no config file is present.
func DefaultConfig() Config {
	return Config{
		Prompt: "> ",
		Width:  80,
	}
}

// LoadConfig reads shell settings from the TOML file at the given path and
// returns them merged over the defaults. A path of "" or a file that does
// not exist is not an error; the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if tomlErr := toml.Unmarshal(data, &cfg); tomlErr != nil {
		return cfg, fmt.Errorf("parsing config file: %w", tomlErr)
	}

	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if cfg.Width < 1 {
		cfg.Width = DefaultConfig().Width
	}

	return cfg, nil
}
