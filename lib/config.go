package lib

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the session configuration. Only NoColor is consulted by the
// input protocol itself; the rest drives the editor and the harness.
type Config struct {
	NoColor     bool   `yaml:"no_color"`
	Readline    bool   `yaml:"readline"`
	HistoryFile string `yaml:"history_file"`
	Language    string `yaml:"language"`
	Transcript  string `yaml:"transcript"`
	Forward     string `yaml:"forward"`
	Origin      string `yaml:"origin"`
	TLSNoVerify bool   `yaml:"tls_noverify"`
	Metrics     string `yaml:"metrics"`
	Render      bool   `yaml:"render"`
	Debug       bool   `yaml:"debug"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{
		Readline: true,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig. An empty path
// or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return config, nil
}
