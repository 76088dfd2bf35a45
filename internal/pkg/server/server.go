package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          logrus.FieldLogger
	addr            string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown.
// A non-positive timeout falls back to 30 seconds.
func NewGracefulServer(e *echo.Echo, logger logrus.FieldLogger, addr string, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          logger,
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		components:      NewShutdownManager(logger),
	}
}

// OnShutdown registers a cleanup function that runs after the HTTP server
// has stopped accepting requests
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.components.Register(fn)
}

// Start serves until SIGINT or SIGTERM is received, then shuts down
func (s *GracefulServer) Start() error {
	// SIGTERM is what Docker and Kubernetes send
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return s.Run(ctx)
}

// Run serves until ctx is cancelled or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		s.logger.WithField("address", s.addr).Info("Starting HTTP server")
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			s.logger.WithError(err).Error("HTTP server failed")
			s.runComponents()
			return err
		}
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and then registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.WithError(err).Error("Server forced to shutdown")
		s.components.Shutdown(ctx)
		return err
	}

	s.components.Shutdown(ctx)
	s.logger.Info("Server shutdown completed")
	return nil
}

func (s *GracefulServer) runComponents() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	s.components.Shutdown(ctx)
}

// ShutdownManager runs registered cleanup functions in order
type ShutdownManager struct {
	logger    logrus.FieldLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(logger logrus.FieldLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    logger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions. A failing component
// is logged and does not stop the others.
func (sm *ShutdownManager) Shutdown(ctx context.Context) {
	sm.logger.WithField("components", len(sm.functions)).Info("Starting graceful shutdown of components")

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			sm.logger.WithField("component", i).WithError(err).Error("Error during component shutdown")
		}
	}

	sm.logger.Info("All components shutdown completed")
}
