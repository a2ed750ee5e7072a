package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ioscahub/matchhub/internal/app"
	"github.com/ioscahub/matchhub/internal/config"
	"github.com/ioscahub/matchhub/internal/observability"
	"github.com/ioscahub/matchhub/internal/platform/logging"
)

const startupWarmLimit = 25

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopProfiling, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv := observability.StartPprofServer(cfg, logger)

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	if cfg.WarmOnStartup {
		go func() {
			warmCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			defer cancel()

			result, warmErr := application.Warm.WarmRecent(warmCtx, startupWarmLimit)
			if warmErr != nil {
				logger.Error("startup warm failed", "error", warmErr)
				return
			}
			logger.Info("startup warm finished",
				"derived", result.DerivedCount,
				"failed", result.FailedCount,
			)
		}()
	}

	go func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	if pprofSrv != nil {
		if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
			logger.Warn("stop pprof server", "error", err)
		}
	}

	if stopProfiling != nil {
		if err := stopProfiling(); err != nil {
			logger.Warn("stop pyroscope", "error", err)
		}
	}

	if shutdownTracing != nil {
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("shutdown tracing", "error", err)
		}
	}

	logger.Info("http server stopped")
}
