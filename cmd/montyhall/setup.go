package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/config"
	"github.com/cory-johannsen/montyhall/internal/game/chance"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
	"github.com/cory-johannsen/montyhall/internal/observability"
)

// loadConfig reads configuration and applies the persistent flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	noPause, _ := cmd.Root().PersistentFlags().GetBool("no-pause")
	noColor, _ := cmd.Root().PersistentFlags().GetBool("no-color")

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	if noPause {
		cfg.Game.Pacing.Enabled = false
	}
	if noColor {
		cfg.Game.Color = false
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}
	return logger, nil
}

func newDealer(src chance.Source, logger *zap.Logger) *montyhall.Dealer {
	return montyhall.NewDealer(chance.NewPicker(src, logger), logger)
}
