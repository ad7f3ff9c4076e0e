package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-portal-client/internal/biometric"
	"github.com/MKhiriev/go-portal-client/internal/client"
	"github.com/MKhiriev/go-portal-client/internal/config"
	"github.com/MKhiriev/go-portal-client/internal/crypto"
	"github.com/MKhiriev/go-portal-client/internal/logger"
	"github.com/MKhiriev/go-portal-client/internal/service"
	"github.com/MKhiriev/go-portal-client/internal/store"
	"github.com/MKhiriev/go-portal-client/internal/tui"
	"github.com/MKhiriev/go-portal-client/internal/utils"
	"github.com/MKhiriev/go-portal-client/internal/workers"
	"github.com/MKhiriev/go-portal-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("go-portal-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("go-portal-client", cfg.App.LogPath)
	ctx := log.WithContext(context.Background())

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App.DeviceSecret, crypto.NewKeyChainService(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	challenger := biometric.NewCommandChallenger(cfg.Lock.BiometricCommand, log)
	services := service.NewClientServices(ctx, cfg, storages, challenger, log)

	if services.Configuration.Address() == "" && cfg.Adapter.DefaultAddress != "" {
		if err = services.Configuration.SetAddress(ctx, cfg.Adapter.DefaultAddress); err != nil {
			log.Warn().Err(err).Msg("error seeding default server address")
		}
	}

	refresher := workers.NewOverviewRefresher(services.Portal, services.Lock, cfg.Workers.RefreshInterval, utils.SystemClock(), log)
	version := buildVersion
	if version == "N/A" && cfg.App.Version != "" {
		version = cfg.App.Version
	}
	ui := tui.New(services, refresher, models.NewAppBuildInfo(version, buildDate, buildCommit), log)

	app := client.NewApp(ui, workers.NewWorkers(refresher), storages, log)
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
