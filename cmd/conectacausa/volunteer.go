package main

import (
	"context"
	"fmt"

	"conectacausa/internal/matching"
	"conectacausa/internal/store"

	"github.com/k0kubun/pp/v3"
	"github.com/urfave/cli/v2"
)

var emailFlag = &cli.StringFlag{
	Name:     "email",
	Aliases:  []string{"e"},
	Usage:    "Email of the volunteer",
	Required: true,
}

var matchesCommand = &cli.Command{
	Name:  "matches",
	Usage: "Print the ranked opportunities for a volunteer",
	Flags: []cli.Flag{
		emailFlag,
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Dump full results including match reasons",
		},
	},
	Action: func(c *cli.Context) error {
		return withStore(c, func(ctx context.Context, svc *services) error {
			user, err := svc.accounts.Login(ctx, c.String("email"))
			if err != nil {
				return err
			}

			results, err := matching.NewEngine(svc.opportunities).Matches(ctx, user)
			if err != nil {
				return err
			}

			for _, result := range results {
				fmt.Printf("%3d  %s (%s)\n", result.MatchScore, result.Title, result.ID)
			}

			if c.Bool("verbose") {
				pp.Println(results)
			}

			return nil
		})
	},
}

var applyCommand = &cli.Command{
	Name:  "apply",
	Usage: "Apply a volunteer to an opportunity",
	Flags: []cli.Flag{
		emailFlag,
		&cli.StringFlag{
			Name:     "opportunity",
			Aliases:  []string{"o"},
			Usage:    "Opportunity id",
			Required: true,
		},
	},
	Action: func(c *cli.Context) error {
		return withStore(c, func(ctx context.Context, svc *services) error {
			user, err := svc.accounts.Login(ctx, c.String("email"))
			if err != nil {
				return err
			}

			app, err := svc.applications.Apply(ctx, user.ID, c.String("opportunity"))
			if err != nil {
				return err
			}

			pp.Println(app)
			return nil
		})
	},
}

var applicationsCommand = &cli.Command{
	Name:  "applications",
	Usage: "Print a volunteer's applications",
	Flags: []cli.Flag{emailFlag},
	Action: func(c *cli.Context) error {
		return withStore(c, func(ctx context.Context, svc *services) error {
			user, err := svc.accounts.Login(ctx, c.String("email"))
			if err != nil {
				return err
			}

			views, err := svc.applications.ListForUser(ctx, user.ID)
			if err != nil {
				return err
			}

			summary, err := svc.applications.Summary(ctx, user.ID)
			if err != nil {
				return err
			}

			pp.Println(views)
			pp.Println(summary)
			return nil
		})
	},
}

type services struct {
	accounts      *store.AccountService
	opportunities *store.OpportunityRepository
	applications  *store.ApplicationRepository
}

func withStore(c *cli.Context, fn func(ctx context.Context, svc *services) error) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx := context.Background()

	collections, closeStore, err := openCollections(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer closeStore()

	return fn(ctx, &services{
		accounts:      store.NewAccountService(collections),
		opportunities: store.NewOpportunityRepository(collections),
		applications:  store.NewApplicationRepository(collections),
	})
}
