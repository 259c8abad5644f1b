package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/carbon-planner/internal/domain/catalog"
	"github.com/yanqian/carbon-planner/internal/infra/config"
)

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	catalog catalog.Service
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, catalogSvc catalog.Service) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, catalog: catalogSvc}
}

// Run seeds the action catalog, starts the HTTP server, and blocks until
// shutdown.
func (a *App) Run(ctx context.Context) error {
	seedCtx, cancelSeed := context.WithTimeout(ctx, 30*time.Second)
	defer cancelSeed()
	if err := a.catalog.EnsureSeeded(seedCtx); err != nil {
		return err
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
