package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/esteria/esteria-go/internal/api"
	v1 "github.com/esteria/esteria-go/internal/api/v1"
	"github.com/esteria/esteria-go/internal/config"
	middleware "github.com/esteria/esteria-go/internal/error"
	"github.com/esteria/esteria-go/internal/metrics"
	"github.com/esteria/esteria-go/internal/service"
	"github.com/esteria/esteria-go/pkg/esteria"
	"github.com/esteria/esteria-go/pkg/httpclient"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewMetrics,
			NewFiberApp,
			NewGatewayClient,
			service.NewSenderService,
			v1.NewHandler,
		),
		fx.Invoke(startServer, startMetricsServer),
	).Run()
}

func NewFiberApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
}

func NewMetrics() *metrics.Metrics {
	return metrics.NewMetrics(prometheus.DefaultRegisterer)
}

func NewGatewayClient(cfg *config.Config) esteria.Client {
	client := httpclient.NewHTTPClient(cfg.Provider.Timeout)
	return esteria.NewClient(cfg.Provider, client)
}

func startServer(app *fiber.App, handler *v1.Handler, cfg *config.Config, m *metrics.Metrics,
	logger *zap.Logger, lc fx.Lifecycle,
) {
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	api.SetupRoutes(app, handler)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go app.Listen(cfg.API.Port)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startMetricsServer(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: cfg.Metrics.Port, Handler: mux}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("metrics server exited", zap.Error(err))
				}
			}()

			logger.Info("metrics server started", zap.String("addr", cfg.Metrics.Port))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})
}
