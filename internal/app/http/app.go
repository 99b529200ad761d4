package httpapp

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marcheferme/marketplace_service/pkg/logger"
)

type App struct {
	log        logger.Logger
	httpServer *http.Server
	port       int
}

func NewApp(log logger.Logger, handler http.Handler, port int) *App {
	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler,
	}

	return &App{
		log:        log,
		httpServer: httpServer,
		port:       port,
	}
}

func (a *App) Run() error {
	const op = "httpapp.run"

	a.log.Info("starting http server", logger.String("op", op), logger.Int("port", a.port))

	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	const op = "httpapp.stop"

	a.log.Info("stopping http server", logger.String("op", op))

	return a.httpServer.Shutdown(ctx)
}
