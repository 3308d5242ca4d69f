package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mxfmeta/internal/config"
	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

// loadConfig resolves the configuration for a command run. An explicit
// --config or $MXFMETA_CONFIG must exist; the implicit ./mxfmeta.yaml is
// optional and defaults apply without it. The --verbose and --color flags
// override the file.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	explicit := path != ""
	if !explicit {
		path = "."
	}

	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		if explicit {
			return nil, fmt.Errorf("%w: %s: %w", mxf.ErrInvalidConfig, path, err)
		}
		cfg = config.Default()
	case err != nil:
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if cmd.Flags().Changed("verbose") {
		cfg.Logging.Verbose = getVerboseFlag(cmd)
	}
	if color, _ := cmd.Flags().GetString("color"); color != "" {
		cfg.Output.Color = color
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
