package main

import (
	"context"
	"fmt"

	"conectacausa/internal/seed"
	"conectacausa/pkg/types"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var seedCommand = &cli.Command{
	Name:  "seed",
	Usage: "Write the seed collections to the configured store",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "reset",
			Usage: "Overwrite existing collections and clear applications",
		},
	},
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if cfg.StoreDriver == types.StoreDriverMemory {
			logrus.Warn("memory store selected; seeded data will not outlive this command")
		}

		ctx := context.Background()

		collections, closeStore, err := openCollections(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer closeStore()

		logrus.WithField("store", cfg.StoreDriver).Info("Connected to store")

		if err := seed.Sync(ctx, collections, c.Bool("reset")); err != nil {
			return fmt.Errorf("failed to seed collections: %w", err)
		}

		logrus.Info("Collections seeded successfully")

		return nil
	},
}
