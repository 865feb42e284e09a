package main

import (
	"fmt"

	"github.com/MKhiriev/go-statement-list/internal/adapter"
	"github.com/MKhiriev/go-statement-list/internal/client"
	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/internal/tui"
	"github.com/MKhiriev/go-statement-list/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("statement-list-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	bridge := tui.NewBridge()
	services := service.NewClientServices(serverAdapter, bridge, cfg.App.CompanyID, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	ui := tui.New(services.ListService, serverAdapter, bridge, cfg.App.CompanyID, buildInfo, log)

	app, err := client.NewApp(serverAdapter, services, ui, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
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
