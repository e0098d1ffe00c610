// Package app assembles the services of the site in a samber/do container.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"

	"github.com/ecowaste/site/internal/config"
	"github.com/ecowaste/site/internal/server"
)

// Option adjusts the container after the default services are registered,
// typically with do.Override.
type Option func(do.Injector)

// App is the assembled application.
type App struct {
	injector *do.RootScope
	Server   *server.Server
}

// New builds the container and resolves the server and everything it
// depends on.
func New(ctx context.Context, cfg config.Provider, version string, opts ...Option) (*App, error) {
	injector := do.New(services(ctx, cfg, version))
	for _, opt := range opts {
		opt(injector)
	}

	s, err := do.Invoke[*server.Server](injector)
	if err != nil {
		injector.Shutdown()
		return nil, fmt.Errorf("failed to assemble application: %w", err)
	}
	return &App{injector: injector, Server: s}, nil
}

// Injector exposes the container, mainly for tests.
func (a *App) Injector() do.Injector {
	return a.injector
}

// Run serves HTTP until a shutdown signal, then stops every service.
func (a *App) Run() error {
	runErr := a.Server.Start()
	if err := a.Shutdown(); err != nil {
		slog.Error("Shutdown finished with errors", "error", err)
	}
	return runErr
}

// Shutdown stops the services in reverse dependency order: the HTTP server,
// the notification subscribers, the bus and finally the tracer.
func (a *App) Shutdown() error {
	report := a.injector.Shutdown()
	if report != nil && len(report.Errors) > 0 {
		return report
	}
	slog.Info("Application stopped")
	return nil
}
