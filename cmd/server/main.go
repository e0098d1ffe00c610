package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ecowaste/site/internal/app"
	"github.com/ecowaste/site/internal/config"
	"github.com/ecowaste/site/internal/logging"
)

// Version can be set at build time.
// Example: go build -ldflags "-X 'main.Version=1.2.0'"
var Version = "dev"

func main() {
	cfg, err := config.New()
	logging.New() // Initialize the structured logger
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	a, err := app.New(context.Background(), cfg, Version)
	if err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	if err := a.Run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}
