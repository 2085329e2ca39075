package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/secure-vault/internal/client"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
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

	log := logger.NewClientLogger("vault-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx := context.Background()

	app, err := client.NewApp(ctx, cfg, build, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		os.Exit(1)
	}
}
