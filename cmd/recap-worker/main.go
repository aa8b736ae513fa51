package main

import (
	"context"
	"errors"
	"os"
	"time"

	"noumi/internal/amqp"
	"noumi/internal/cli"
	"noumi/internal/log"
	"noumi/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	cli.ConfigureJSON()

	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	cfg := cli.LoadAndValidateConfig(logger)
	logger.Info("Starting recap-worker", "interval", cfg.RecapInterval, log.FieldBackend, cfg.DataBackend)

	res := cli.InitBackend(context.Background(), logger, cfg)
	svc := cli.InitRecapService(logger, cfg, res)

	// AMQP is optional: without it recaps are only logged.
	var publisher worker.Publisher
	var amqpClient *amqp.Client
	if cfg.AMQPURL != "" {
		var err error
		amqpClient, err = amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, recaps will only be logged", log.FieldError, err)
		} else {
			publisher = amqpClient
			logger.Info("AMQP client initialized", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
		}
	} else {
		logger.Info("AMQP disabled - recaps will only be logged")
	}

	w := worker.NewRecapWorker(svc, publisher, logger)
	if res.Cached != nil {
		w.WithInvalidator(res.Cached)
	}

	ctx, done := cli.GracefulShutdown(logger, 30*time.Second, func(context.Context) {
		if amqpClient != nil {
			if err := amqpClient.Close(); err != nil {
				logger.Error("AMQP close error", log.FieldError, err)
			}
		}
		if err := res.Cleanup(); err != nil {
			logger.Error("Backend cleanup error", log.FieldError, err)
		}
	})

	if err := w.Run(ctx, cfg.RecapInterval); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Recap worker stopped", log.FieldError, err)
		os.Exit(1)
	}

	cli.WaitForShutdown(ctx, done)
	logger.Info("recap-worker stopped gracefully")
}
