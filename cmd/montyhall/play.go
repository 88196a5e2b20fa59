package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/console"
	"github.com/cory-johannsen/montyhall/internal/game/chance"
	"github.com/cory-johannsen/montyhall/internal/game/show"
)

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	script := show.DefaultScript()
	if cfg.Game.ScriptPath != "" {
		script, err = show.LoadScript(cfg.Game.ScriptPath)
		if err != nil {
			return err
		}
		logger.Debug("script loaded", zap.String("path", cfg.Game.ScriptPath))
	}

	// The first Ctrl+C cuts short a pause; a second one falls back to the default handler.
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	context.AfterFunc(ctx, stop)

	term := console.NewTerminal(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Game.Color)
	host := show.NewHost(term, newDealer(chance.NewCryptoSource(), logger), script, show.NewPacing(cfg.Game.Pacing), logger)
	return host.Play(ctx)
}
