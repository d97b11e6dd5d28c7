package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"StockCast/pkg/cache"
	"StockCast/pkg/config"
	xhttp "StockCast/pkg/http"
	applogger "StockCast/pkg/logger"
)

// App encapsulates the application lifecycle: the HTTP server hosting the
// API, the dashboard WebSocket surface, and the shared cache backend.
type App struct {
	cfg        *config.Config
	logger     *applogger.Logger
	cacheSvc   cache.Service
	httpServer *xhttp.Server
}

func New(cfg *config.Config, logger *applogger.Logger, cacheSvc cache.Service, handlers []xhttp.Handler) *App {
	srv := xhttp.NewServer(handlers,
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORS(true),
		xhttp.WithMetricsPath(cfg.Metrics.Path),
	)
	return &App{
		cfg:        cfg,
		logger:     logger,
		cacheSvc:   cacheSvc,
		httpServer: srv,
	}
}

// Run starts the HTTP server and blocks until an interrupt or termination
// signal arrives, then shuts everything down.
func (a *App) Run() error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started",
		applogger.Int("port", a.cfg.Server.Port),
		applogger.String("environment", a.cfg.Environment),
	)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := a.httpServer.Stop(ctx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}
	if a.cacheSvc != nil {
		if err := a.cacheSvc.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return nil
}
