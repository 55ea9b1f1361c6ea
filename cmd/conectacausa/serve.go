package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"conectacausa/internal/matching"
	"conectacausa/internal/server"
	"conectacausa/internal/store"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP API",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger := newLogger(config)

	collections, closeStore, err := openCollections(ctx, config)
	if err != nil {
		return err
	}
	defer closeStore()

	accounts := store.NewAccountService(collections)
	opportunities := store.NewOpportunityRepository(collections)
	applications := store.NewApplicationRepository(collections)
	matcher := matching.NewEngine(opportunities)

	srv := server.New(
		config,
		logger,
		accounts,
		opportunities,
		applications,
		matcher,
	)

	go func() {
		logger.WithField("port", config.ServerPort).
			WithField("store", config.StoreDriver).
			Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
