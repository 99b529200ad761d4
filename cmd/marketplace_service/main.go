package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/marcheferme/marketplace_service/internal/app"
	"github.com/marcheferme/marketplace_service/internal/config"
	"github.com/marcheferme/marketplace_service/pkg/logger"
)

func main() {
	cfg := config.InitConfig()

	log := logger.NewSlogLogger(logger.SlogEnvironment(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	application, err := app.NewApp(ctx, log, &cfg)
	if err != nil {
		panic(fmt.Sprintf("failed to create app: %v", err))
	}

	if err = application.Run(ctx); err != nil {
		panic(fmt.Sprintf("application stopped with error: %v", err))
	}

	log.Info("application stopped")
}
