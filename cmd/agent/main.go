package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/handler"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/server"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/workers"
	"github.com/MKhiriev/secure-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build.String())

	log := logger.NewLogger("vault-agent")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("server", cfg.Server).Any("crypto", cfg.Crypto).Msg("received configs")

	keys := crypto.NewCachingKeyDeriver(crypto.NewKeyDeriver(), cfg.Crypto.KeyCacheTTL)
	defer keys.Close()

	services, err := service.NewServices(crypto.NewCipherEngine(keys), nil, cfg.Crypto, cfg.App, build, log)
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

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	workers.NewWorkers(
		workers.NewKeyCacheSweeper(keys, cfg.Workers.KeyCacheSweepInterval, log),
	).Run(ctx)

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}
