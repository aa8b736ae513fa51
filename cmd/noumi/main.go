package main

import (
	"context"
	"os"
	"time"

	"noumi/internal/cli"
	apphttp "noumi/internal/http"
	"noumi/internal/log"
)

func main() {
	cli.LoadEnvFile()
	cli.ConfigureJSON()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	logger.Info("Starting noumi", log.FieldBackend, cfg.DataBackend, "overrides", len(cfg.DataBackendOverrides))

	res := cli.InitBackend(context.Background(), logger, cfg)
	svc := cli.InitRecapService(logger, cfg, res)

	opts := apphttp.Options{Ready: res.Ready, AllowedOrigins: cfg.CORSAllowedOrigins}
	if res.Cached != nil {
		opts.Cache = res.Cached
	}
	srv := apphttp.NewServer(":"+cfg.Port, svc, logger, opts)

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func(ctx context.Context) {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", log.FieldError, err)
		}
		if err := res.Cleanup(); err != nil {
			logger.Error("Backend cleanup error", log.FieldError, err)
		}
	})

	logger.Info("Starting HTTP server", "port", cfg.Port, "trend_unit", cfg.TrendUnit)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Server error", log.FieldError, err, "port", cfg.Port)
		_ = res.Cleanup()
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("Server stopped gracefully")
}
