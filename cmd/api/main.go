package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/schoolforge/sitebuilder-backend/config"
	"github.com/schoolforge/sitebuilder-backend/internal/api/http/middleware"
	authrepo "github.com/schoolforge/sitebuilder-backend/internal/auth/repository"
	authservice "github.com/schoolforge/sitebuilder-backend/internal/auth/service"
	"github.com/schoolforge/sitebuilder-backend/internal/auth/token"
	"github.com/schoolforge/sitebuilder-backend/internal/bootstrap"
	"github.com/schoolforge/sitebuilder-backend/internal/components/catalog"
	cronjob "github.com/schoolforge/sitebuilder-backend/internal/components/cron"
	componentservice "github.com/schoolforge/sitebuilder-backend/internal/components/service"
	configservice "github.com/schoolforge/sitebuilder-backend/internal/configurations/service"
	"github.com/schoolforge/sitebuilder-backend/internal/logging"
	projectservice "github.com/schoolforge/sitebuilder-backend/internal/projects/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("load config")
	}

	log := logging.New(cfg.App.LogLevel, cfg.App.Environment, cfg.App.Name)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()

	stores, err := bootstrap.OpenStores(ctx, &cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open storage")
	}
	defer stores.Close()

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	var revocation authservice.Revocation = authrepo.NoopRevocation{}
	if rdb != nil {
		defer rdb.Close()
		revocation = authrepo.NewRevocationRepository(rdb)
	} else {
		log.Info().Msg("REDIS_ADDR not set; logout does not revoke tokens")
	}

	authSvc, err := authservice.NewAuthService(
		stores.Users,
		token.NewIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL),
		revocation,
		authservice.WithPasswordCost(cfg.Auth.BcryptCost),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("init auth service")
	}

	defaults, err := catalog.Defaults()
	if err != nil {
		log.Fatal().Err(err).Msg("load component catalog")
	}
	componentSvc := componentservice.NewComponentService(stores.Components, defaults)
	projectSvc := projectservice.NewProjectService(stores.Projects)
	configSvc := configservice.NewConfigurationService(stores.Configurations, projectSvc)

	scheduler := cronjob.NewScheduler(componentSvc, log)
	if cfg.Catalog.SeedOnStart {
		scheduler.RunOnce()
	}
	if cfg.Catalog.SeedCron != "" {
		if err := scheduler.Start(cfg.Catalog.SeedCron); err != nil {
			log.Fatal().Err(err).Msg("start catalog cron")
		}
		defer scheduler.Stop()
	}

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.Name,
		Version:        cfg.App.Version,
		CORSOrigins:    cfg.Server.CORSOrigins,
		TrustedProxies: cfg.Server.TrustedProxies,
		MaxBodyBytes:   cfg.Server.MaxBodyBytes,
		Log:            log,
		DB:             stores.DB,
		Redis:          rdb,
		Auth:           authSvc,
		Projects:       projectSvc,
		Configurations: configSvc,
		Components:     componentSvc,
		AuthLimiter:    middleware.NewIPRateLimiter(cfg.Auth.RateLimitRPS, cfg.Auth.RateLimitBurst),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Str("storage", cfg.Database.Backend).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	log.Info().Msg("server stopped")
}
