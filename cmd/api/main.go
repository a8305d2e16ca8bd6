package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpSwagger "github.com/swaggo/http-swagger/v2"
	"golang.org/x/sync/errgroup"

	"summary-api/internal/config"
	"summary-api/internal/infra/adapter/persistence/memory"
	"summary-api/internal/infra/summarizer"
	"summary-api/internal/observability/logging"
	"summary-api/internal/observability/tracing"
	summaryUC "summary-api/internal/usecase/summary"

	hhttp "summary-api/internal/handler/http"
	"summary-api/internal/handler/http/requestid"
	hsummary "summary-api/internal/handler/http/summary"

	_ "summary-api/docs" // swagger docs
)

// @title           Summary API
// @version         1.0
// @description     テキストを LLM で要約し、結果をメモリ上の履歴に保存する REST API

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:5000
// @BasePath  /

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)

	if cfg.Tracing.Enabled {
		shutdown := tracing.Setup("summary-api", cfg.Version)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				logger.Error("tracer shutdown failed", slog.Any("error", err))
			}
		}()
		logger.Info("tracing enabled")
	}

	provider, err := summarizer.New(cfg.Summarizer)
	if err != nil {
		logger.Error("failed to initialize summarizer", slog.Any("error", err))
		os.Exit(1)
	}

	svc := summaryUC.Service{
		Summarizer: provider,
		Repo:       memory.NewHistoryRepo(),
	}
	handler := setupServer(logger, svc, provider, cfg.Version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := runServer(ctx, logger, cfg.Server, handler, cfg.Version); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger builds the process logger and installs it as the slog default.
// Config.Validate has already checked the level string.
func initLogger(cfg config.LogConfig) *slog.Logger {
	level, _ := config.ParseLevel(cfg.Level)
	logger := logging.NewLogger(logging.Options{
		Level:  level,
		Format: cfg.Format,
		Output: os.Stdout,
	})
	slog.SetDefault(logger)
	return logger
}

// setupServer registers all routes and wraps them with the middleware chain.
func setupServer(logger *slog.Logger, svc summaryUC.Service, provider hhttp.ProviderStatus, version string) http.Handler {
	mux := http.NewServeMux()
	hsummary.Register(mux, svc)

	// ヘルスチェック・運用系エンドポイント
	mux.Handle("GET /health", &hhttp.HealthHandler{
		History:    &svc,
		Summarizer: provider,
		Version:    version,
	})
	mux.Handle("GET /live", hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return applyMiddleware(logger, mux)
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID → Tracing → Logging → Recovery → Metrics → mux.
// Metrics must sit directly on the mux so the matched route pattern is visible.
func applyMiddleware(logger *slog.Logger, handler http.Handler) http.Handler {
	return hhttp.Chain(handler,
		requestid.Middleware,
		tracing.Middleware,
		hhttp.Logging(logger),
		hhttp.Recover(logger),
		hhttp.MetricsMiddleware,
	)
}

// runServer serves until ctx is cancelled, then shuts the server down
// gracefully within cfg.ShutdownTimeout.
func runServer(ctx context.Context, logger *slog.Logger, cfg config.ServerConfig, handler http.Handler, version string) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}
