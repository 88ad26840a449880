package cli

import (
	"context"

	"github.com/yaklabco/markmode/internal/configloader"
	"github.com/yaklabco/markmode/internal/logging"
	"github.com/yaklabco/markmode/pkg/config"
)

// resolveConfig loads the effective configuration for a command run,
// overlaying the global CLI flags.
func resolveConfig(ctx context.Context, flags *rootFlags) (*config.Config, error) {
	cli := &config.Config{}
	if flags.color != "" {
		cli.Color = config.Color(flags.color)
	}

	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: flags.configPath,
		CLIConfig:    cli,
	})
	if err != nil {
		return nil, err
	}

	// --debug wins over the configured level.
	if !flags.debug {
		logging.SetLevel(result.Config.LogLevel)
	}

	return result.Config, nil
}
