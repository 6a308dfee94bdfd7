package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/echoapi/config"
	"github.com/ncobase/echoapi/ecode"
	"github.com/ncobase/echoapi/logging/logger"
	lc "github.com/ncobase/echoapi/logging/logger/config"
	"github.com/ncobase/echoapi/router"
)

const shutdownTimeout = 30 * time.Second

// App represents the demo server.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	handler *Handler
	server  *http.Server
}

// NewApp creates a new application instance.
func NewApp(cfg *config.Config, logger *logger.Logger, h *Handler) *App {
	if cfg.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	return &App{config: cfg, logger: logger, handler: h}
}

// Handler builds the routed handler for the configured router kind.
func (a *App) Handler() (http.Handler, error) {
	r, err := router.New(a.config.Server.Router)
	if err != nil {
		return nil, err
	}
	a.handler.RegisterRoutes(r)
	return a.handler.Middleware(r.Handler()), nil
}

// Run serves until ctx is done, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.config.Server.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", a.config.Server.Addr(), err)
	}
	return a.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	handler, err := a.Handler()
	if err != nil {
		_ = ln.Close()
		return err
	}

	a.server = &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.WithContext(ctx).WithField("addr", ln.Addr().String()).Info("starting server")
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.WithContext(shutdownCtx).WithError(err).Error("server forced to shutdown")
		return err
	}
	a.logger.Info(context.Background(), "server exited")
	return nil
}

// ProvideLoggerConfig extracts the logger configuration.
func ProvideLoggerConfig(cfg *config.Config) *lc.Config {
	return cfg.Logger
}

// ProvideTable loads the configured error table.
func ProvideTable(cfg *config.Config) (*ecode.Table, error) {
	return cfg.Errors.Table()
}
