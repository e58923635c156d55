package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"web_estimate/internal/adapter/http/routes"
	"web_estimate/internal/config"
	"web_estimate/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Web Estimate API
// @version         1.0
// @description     Website production price calculator and estimate document service.

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(logger.Config{
		ServiceName: routes.ServiceName,
		Environment: cfg.Environment,
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("[app][main] starting",
		zap.Int("port", cfg.Port),
		zap.String("state_backend", cfg.State.Backend),
		zap.String("session_backend", cfg.Session.Backend),
		zap.String("pdf_renderer", cfg.PDF.Renderer),
	)
	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal("[app][main] failed to startup the application", zap.Error(err))
	}
	log.Info("[app][main] stopped")
}
