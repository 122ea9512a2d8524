package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/schoolforge/sitebuilder-backend/config"
	"github.com/schoolforge/sitebuilder-backend/internal/logging"
	"github.com/schoolforge/sitebuilder-backend/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}
	log := logging.New(cfg.App.LogLevel, cfg.App.Environment, cfg.App.Name+"-migrate")

	if cfg.Database.Backend != "postgres" {
		log.Fatal().Str("backend", cfg.Database.Backend).Msg("migrations only apply to the postgres backend")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	applied, err := postgres.Migrate(ctx, postgres.DSN(&cfg.Database), log)
	if err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}
	log.Info().Int("applied", applied).Msg("migrations complete")
}
