// Package config loads the optional dirmeta.yaml browsing configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// BrowseConfig holds the defaults applied by the ls and browse commands.
type BrowseConfig struct {
	// StartDir is the directory opened when no path argument is given.
	StartDir string `yaml:"start_dir"`
	// ShowHidden includes dotfiles in listings.
	ShowHidden bool `yaml:"show_hidden"`
	// Long enables the metadata columns by default.
	Long bool `yaml:"long"`
	// FoldersOnly restricts listings to folder-looking entries.
	FoldersOnly bool `yaml:"folders_only"`
}

const ConfigFileName = "dirmeta.yaml"

// Environment variables that override dirmeta.yaml values.
const (
	EnvStartDir   = "DIRMETA_START_DIR"
	EnvShowHidden = "DIRMETA_SHOW_HIDDEN"
)

// Load reads dirmeta.yaml from the given directory.
func Load(dir string) (*BrowseConfig, error) {
	configPath := filepath.Join(dir, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg BrowseConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyEnv overlays environment variables onto the config. Unset variables
// leave the config untouched; an unparsable boolean is ignored.
func ApplyEnv(cfg *BrowseConfig) {
	if startDir := os.Getenv(EnvStartDir); startDir != "" {
		cfg.StartDir = startDir
	}
	if raw := os.Getenv(EnvShowHidden); raw != "" {
		if showHidden, err := strconv.ParseBool(raw); err == nil {
			cfg.ShowHidden = showHidden
		}
	}
}
