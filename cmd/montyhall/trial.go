package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cory-johannsen/montyhall/internal/game/chance"
	"github.com/cory-johannsen/montyhall/internal/game/montyhall"
)

func newTrialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trial",
		Short: "Run one silent round and print the prize (car or goat)",
		Args:  cobra.NoArgs,
		RunE:  runTrial,
	}
	cmd.Flags().String("switch", "y", "Switch decision: y to switch, n to stay")
	cmd.Flags().Int("door", 0, "First door pick 1-3; when unset, game.default_door is used")
	cmd.Flags().Uint64("seed", 0, "Seed for a reproducible round (default: crypto randomness)")
	return cmd
}

func runTrial(cmd *cobra.Command, args []string) error {
	decision, _ := cmd.Flags().GetString("switch")
	doorNum, _ := cmd.Flags().GetInt("door")
	seed, _ := cmd.Flags().GetUint64("seed")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if !cmd.Flags().Changed("door") {
		doorNum = cfg.Game.DefaultDoor
	}

	src := chance.NewCryptoSource()
	if cmd.Flags().Changed("seed") {
		src = chance.NewSeededSource(seed)
	}

	prize, err := newDealer(src, logger).Trial(montyhall.Door(doorNum), decision)
	if err != nil {
		return err
	}
	logger.Debug("trial finished",
		zap.Int("door", doorNum),
		zap.String("switch", decision),
		zap.String("prize", string(prize)),
	)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), prize)
	return err
}
