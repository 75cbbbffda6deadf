package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "hotel_packages/internal/adapters/http_server"
	"hotel_packages/internal/adapters/observability"
	redisad "hotel_packages/internal/adapters/redis"
	"hotel_packages/internal/app"
	"hotel_packages/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLoggerTo(os.Stdout, cfg.AppEnv, cfg.LogLevel)

	reg := observability.InitRegistry()
	metricsSrv, err := observability.Serve(cfg.MetricsAddr, reg)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics server")
	}

	// deps
	clip := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.ClipboardTTL)
	defer clip.Close()
	f := app.NewFormatter(cfg.CityA, cfg.CityB, cfg.Currency)
	g := app.NewGenerator(f, clip)

	// http
	srv := server.New(server.Options{Timeout: cfg.RequestTimeout, RateLimitRPS: cfg.RateLimitRPS})
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{G: g})

	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux(), ReadHeaderTimeout: 5 * time.Second}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).
			Str("city_a", cfg.CityA).Str("city_b", cfg.CityB).
			Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if metricsSrv != nil {
			_ = metricsSrv.Shutdown(shutdownCtx)
		}
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
	log.Info().Msg("API stopped")
}
