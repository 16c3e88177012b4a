package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"medalboard/internal/config"
	"medalboard/internal/engine"
	"medalboard/internal/server"
)

var configPath string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "medalboard",
		Short:        "Serve the Summer Olympics medal dashboard data",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file")
	root.AddCommand(newRankCmd())
	return root
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Level())
	return cfg, nil
}

func serve(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// 1. Load the dataset before listening: a bad file means no service
	t0 := time.Now()
	store := engine.NewStore(nil)
	if _, err := store.Load(cfg.DataPath); err != nil {
		log.Error().Err(err).Str("path", cfg.DataPath).Msg("cannot start without a dataset")
		return err
	}
	log.Info().Dur("elapsed", time.Since(t0)).Msg("dataset ready")

	// 2. Serve until interrupted
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, server.New(cfg, store), cfg.Address)
}
