package main

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/go-bot-host/internal/adapter"
	"github.com/MKhiriev/go-bot-host/internal/config"
	"github.com/MKhiriev/go-bot-host/internal/gate"
	"github.com/MKhiriev/go-bot-host/internal/handler"
	"github.com/MKhiriev/go-bot-host/internal/logger"
	"github.com/MKhiriev/go-bot-host/internal/metrics"
	"github.com/MKhiriev/go-bot-host/internal/server"
	"github.com/MKhiriev/go-bot-host/internal/service"
	"github.com/MKhiriev/go-bot-host/internal/store"
	"github.com/MKhiriev/go-bot-host/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-bot-host")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err := logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	var opts []service.Option
	if cfg.App.IssuerURL != "" {
		remote, err := adapter.NewHTTPIssuerAdapter(cfg.App, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating remote issuer")
		}
		opts = append(opts, service.WithTokenIssuer(remote))
		log.Info().Str("issuer_url", cfg.App.IssuerURL).Msg("credentials are exchanged by a remote issuer")
	}

	services, err := service.NewServices(storages, *cfg, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	registry := metrics.NewRegistry()

	g, err := gate.New(services.TokenIssuer,
		gate.WithLogger(log),
		gate.WithMetrics(registry),
		gate.WithExchangeTimeout(cfg.App.ExchangeTimeout),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating token exchange gate")
	}

	handlers, err := handler.NewHandlers(services, g, registry, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	info := services.AppInfoService.GetAPIInfo(ctx)
	log.Info().
		Str("title", info.Title).
		Str("version", info.Version).
		Str("info_endpoint", info.Endpoint).
		Msg("starting go-bot-host")

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(services, registry, cfg.Workers, log).Run(ctx)
	})

	if err := srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
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
