package main

import (
	"context"
	"fmt"

	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/handler"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/server"
	"github.com/mlevashov/clientdesk/internal/service"
	"github.com/mlevashov/clientdesk/internal/store"
	"github.com/mlevashov/clientdesk/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("clientdesk-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	clientStore := store.NewClientStore(ctx, storages.Persistence, log)

	services, err := service.NewServices(*storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	workers.NewWorkers(ctx, services, *cfg, log).Run()

	handlers, err := handler.NewHandlers(clientStore, services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
