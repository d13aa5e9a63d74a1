// README: Entry point; loads config, wires services, starts HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"tollcents/internal/config"
	tollhttp "tollcents/internal/http"
	"tollcents/internal/http/middleware"
	"tollcents/internal/infra"
	"tollcents/internal/maps"
	"tollcents/internal/modules/access"
	"tollcents/internal/modules/toll"
	"tollcents/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("db init", zap.Error(err))
	}
	defer dbPool.Close()

	accessStore := access.NewStore(dbPool)
	accessSvc := access.NewService(accessStore)

	catalog := toll.NewCatalogCache(toll.FileCatalogLoader(cfg.SegmentFilePath), cfg.CatalogTTL)
	tollSvc, err := toll.NewService(catalog, toll.Config{
		ToleranceMiles:  cfg.MatchToleranceMiles,
		NoTagMultiplier: cfg.NoTagMultiplier,
	}, logger)
	if err != nil {
		logger.Fatal("toll service init", zap.Error(err))
	}

	routeSvc, err := maps.NewRouteService(cfg.MapsAPIKey)
	if err != nil {
		logger.Fatal("maps init", zap.Error(err))
	}

	planner := service.NewTravelPlanner(routeSvc, tollSvc, logger)

	var limiter middleware.Limiter
	if cfg.RateLimitOn {
		redisClient := infra.NewRedis(cfg.RedisAddr)
		defer func() { _ = redisClient.Close() }()
		limiter = middleware.NewRedisLimiter(redisClient, int64(cfg.RateLimit), cfg.RateWindow)
	}

	handler := tollhttp.NewRouter(tollhttp.RouterDeps{
		Planner:  planner,
		Codes:    accessSvc,
		Limiter:  limiter,
		MockAPIs: cfg.MockAPIs,
		Log:      logger,
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: handler}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("server", zap.Error(err))
	}
}
