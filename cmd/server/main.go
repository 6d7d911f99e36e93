package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-holocron/internal/config"
	"github.com/MKhiriev/go-holocron/internal/handler"
	"github.com/MKhiriev/go-holocron/internal/logger"
	"github.com/MKhiriev/go-holocron/internal/seed"
	"github.com/MKhiriev/go-holocron/internal/server"
	"github.com/MKhiriev/go-holocron/internal/service"
	"github.com/MKhiriev/go-holocron/internal/store"
	"github.com/MKhiriev/go-holocron/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("holocron-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLoggerWithLevel("holocron-server", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	if !cfg.App.SkipSeed {
		if err := seed.NewSeeder(storages, log).Seed(ctx, seed.DefaultData()); err != nil {
			log.Fatal().Err(err).Msg("error seeding storages")
		}
	}

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages, *cfg, log)
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
	info := models.AppBuildInfo{Version: buildVersion, Date: buildDate, Commit: buildCommit}
	if info.Version == "" {
		info.Version = "N/A"
	}
	if info.Date == "" {
		info.Date = "N/A"
	}
	if info.Commit == "" {
		info.Commit = "N/A"
	}

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
