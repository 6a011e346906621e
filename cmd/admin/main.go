package main

import (
	"context"
	"fmt"

	"github.com/mlevashov/clientdesk/internal/adapter"
	"github.com/mlevashov/clientdesk/internal/admin"
	"github.com/mlevashov/clientdesk/internal/config"
	"github.com/mlevashov/clientdesk/internal/logger"
	"github.com/mlevashov/clientdesk/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewConsoleLogger("clientdesk-admin")
	cfg, err := config.GetAdminConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	portal, err := adapter.NewHTTPPortalAdapter(config.Admin{
		ServerURL:      cfg.Adapter.ServerURL,
		RequestTimeout: cfg.Adapter.RequestTimeout,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating portal adapter")
	}

	ui, err := tui.New(portal, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := admin.NewApp(portal, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin app")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("admin console error")
	}
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
