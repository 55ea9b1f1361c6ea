package main

import (
	"conectacausa/internal/utils"
	"fmt"

	"github.com/urfave/cli/v2"
)

var nanoidCommand = &cli.Command{
	Name:  "nanoid",
	Usage: "Generate record ids for use in seed data",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "count",
			Aliases: []string{"c"},
			Usage:   "Number of IDs to generate",
			Value:   1,
		},
		&cli.StringFlag{
			Name:  "prefix",
			Usage: "Record prefix such as user, opp or app",
		},
	},
	Action: func(c *cli.Context) error {
		prefix := c.String("prefix")
		for range c.Int("count") {
			if prefix == "" {
				fmt.Println(utils.NanoID())
				continue
			}
			fmt.Println(utils.NewID(prefix))
		}
		return nil
	},
}
