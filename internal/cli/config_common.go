package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmeta/internal/config"
	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

// loadBrowseConfig loads the optional env file and dirmeta.yaml, then
// applies environment overrides. A missing config file yields the zero
// config, not an error.
func loadBrowseConfig(cmd *cobra.Command) (config.BrowseConfig, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return config.BrowseConfig{}, fmt.Errorf("%w: loading env file %s: %v", dirmeta.ErrInvalidConfig, envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg config.BrowseConfig
	if configDir, _ := cmd.Flags().GetString("config"); configDir != "" {
		loaded, err := config.Load(configDir)
		if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
			return config.BrowseConfig{}, fmt.Errorf("%w: %v", dirmeta.ErrInvalidConfig, err)
		}
		if loaded != nil {
			cfg = *loaded
		}
	}

	config.ApplyEnv(&cfg)
	return cfg, nil
}

// resolveStartPath picks the directory to operate on: an explicit argument
// wins, then the configured start directory, then the empty path (the
// drive level).
func resolveStartPath(args []string, cfg config.BrowseConfig) (dirmeta.Path, error) {
	raw := cfg.StartDir
	if len(args) > 0 {
		raw = args[0]
	}
	if raw == "" {
		return dirmeta.New(""), nil
	}
	return dirmeta.FixPath(dirmeta.New(raw))
}
