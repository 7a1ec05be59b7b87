package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/yuchialin/gymdesk-backend/api/routes"
	"github.com/yuchialin/gymdesk-backend/internal/catalog"
	"github.com/yuchialin/gymdesk-backend/internal/checkins"
	"github.com/yuchialin/gymdesk-backend/internal/members"
	"github.com/yuchialin/gymdesk-backend/internal/photos"
	"github.com/yuchialin/gymdesk-backend/internal/statuses"
	"github.com/yuchialin/gymdesk-backend/internal/transactions"
	"github.com/yuchialin/gymdesk-backend/pkg/config"
	"github.com/yuchialin/gymdesk-backend/pkg/db"
	"github.com/yuchialin/gymdesk-backend/pkg/logger"
	"github.com/yuchialin/gymdesk-backend/pkg/metrics"
	"github.com/yuchialin/gymdesk-backend/pkg/migrate"
	pkgredis "github.com/yuchialin/gymdesk-backend/pkg/redis"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *pkgredis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency replay disabled")
	}

	memberRepo := members.NewRepository(dbClient.DB())
	statusRepo := statuses.NewRepository(dbClient.DB())
	checkinRepo := checkins.NewRepository(dbClient.DB())
	catalogRepo := catalog.NewRepository(dbClient.DB())
	transactionRepo := transactions.NewRepository(dbClient.DB())
	photoRepo := photos.NewRepository(dbClient.DB())

	memberService, err := members.NewService(memberRepo, dbClient)
	requireService(logg, "members", err)
	statusService, err := statuses.NewService(statusRepo, memberRepo)
	requireService(logg, "statuses", err)
	checkinService, err := checkins.NewService(checkinRepo, memberRepo, dbClient)
	requireService(logg, "checkins", err)
	catalogService, err := catalog.NewService(catalogRepo)
	requireService(logg, "catalog", err)
	transactionService, err := transactions.NewService(transactionRepo, memberRepo, catalogRepo)
	requireService(logg, "transactions", err)
	photoService, err := photos.NewService(photoRepo, memberRepo, dbClient)
	requireService(logg, "photos", err)

	httpMetrics := metrics.NewHTTPMetrics()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			dbClient,
			redisClient,
			httpMetrics,
			memberService,
			statusService,
			checkinService,
			catalogService,
			transactionService,
			photoService,
		),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func requireService(logg *logger.Logger, name string, err error) {
	if err != nil {
		logg.Error(logg.WithField(context.Background(), "service", name), "failed to create service", err)
		os.Exit(1)
	}
}
