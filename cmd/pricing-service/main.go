package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/Cheertaboi/facility-pricing-service/internal/api"
	"github.com/Cheertaboi/facility-pricing-service/internal/api/handlers"
	"github.com/Cheertaboi/facility-pricing-service/internal/api/middleware"
	"github.com/Cheertaboi/facility-pricing-service/internal/cache"
	"github.com/Cheertaboi/facility-pricing-service/internal/config"
	"github.com/Cheertaboi/facility-pricing-service/internal/pricing"
	"github.com/Cheertaboi/facility-pricing-service/internal/repository"
	"github.com/Cheertaboi/facility-pricing-service/internal/service"
	"github.com/Cheertaboi/facility-pricing-service/internal/tracing"
	"github.com/Cheertaboi/facility-pricing-service/pkg/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		zlog.Info().Msg(".env not found, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		zlog.Fatal().Err(err).Msg("load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zlog.Logger = zlog.With().Str("service", cfg.ServiceName).Logger()
	zerolog.DefaultContextLogger = &zlog.Logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.JaegerEndpoint != "" {
		tp, err := tracing.InitTracerProvider(cfg.ServiceName, cfg.JaegerEndpoint)
		if err != nil {
			zlog.Fatal().Err(err).Msg("init tracer")
		}
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = tp.Shutdown(sctx)
		}()
	}

	rates, err := pricing.LoadRates(cfg.RatesFile)
	if err != nil {
		zlog.Fatal().Err(err).Str("file", cfg.RatesFile).Msg("load rate table")
	}

	// load DB config from env
	dbCfg, err := db.LoadPostgresConfig()
	if err != nil {
		zlog.Fatal().Err(err).Msg("db config")
	}
	conn, err := db.NewPostgresConnection(ctx, dbCfg)
	if err != nil {
		zlog.Fatal().Err(err).Msg("db connect")
	}
	defer conn.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		zlog.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis connect")
	}

	userRepo := repository.NewUserRepo(conn)
	couponRepo := repository.NewCouponRepo(conn)
	coupons := cache.NewReadThrough(couponRepo, cache.NewCouponCache(rdb, cfg.CouponCacheTTL))

	pricingSvc := service.NewPricingService(userRepo, coupons, pricing.NewCalculator(rates))
	orderSvc := service.NewOrderService(conn, pricingSvc, userRepo,
		repository.NewUsageRepo(conn), repository.NewOrderRepo(conn), coupons)

	handler := api.NewRouter(api.Deps{
		Pricing:     handlers.NewPricingHandler(pricingSvc),
		Orders:      handlers.NewOrderHandler(orderSvc),
		Users:       handlers.NewUserHandler(service.NewBalanceService(userRepo)),
		Coupons:     handlers.NewCouponHandler(service.NewCouponService(couponRepo)),
		Verifier:    middleware.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer),
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 20 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(sctx); err != nil {
			zlog.Error().Err(err).Msg("HTTP server shutdown")
		}
		close(idleConnsClosed)
	}()

	zlog.Info().Str("addr", cfg.HTTPAddr).Str("currency", rates.Currency).Msg("starting pricing-service")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		zlog.Fatal().Err(err).Msg("listen")
	}

	<-idleConnsClosed
	zlog.Info().Msg("server stopped")
}
