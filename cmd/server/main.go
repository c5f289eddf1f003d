package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/film-vault/internal/adapter"
	"github.com/MKhiriev/film-vault/internal/config"
	"github.com/MKhiriev/film-vault/internal/handler"
	"github.com/MKhiriev/film-vault/internal/logger"
	"github.com/MKhiriev/film-vault/internal/server"
	"github.com/MKhiriev/film-vault/internal/service"
	"github.com/MKhiriev/film-vault/internal/store"
	"github.com/MKhiriev/film-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("film-vault-server").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("film-vault-server", logger.WithLevel(cfg.App.LogLevel))
	log.Info().Str("version", cfg.App.Version).Str("db_driver", cfg.Storage.DB.Driver).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	catalog, err := adapter.NewTMDBAdapter(cfg.Adapter.TMDB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating catalog adapter")
	}

	services, err := service.NewServices(storages, catalog, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
