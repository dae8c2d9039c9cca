package main

import (
	"fmt"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/kongbank/accounts/app"
	"github.com/kongbank/accounts/pkg/config"
	"github.com/kongbank/accounts/webapi"
)

func main() {
	if err := run(); err != nil {
		charmlog.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := setupLogger(cfg.Log)

	a := app.New(cfg, logger)
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)

	return fiberApp.Listen(addr)
}

// setupLogger builds the process-wide slog logger backed by charmbracelet/log
// and installs it as the default.
func setupLogger(cfg config.Log) *slog.Logger {
	formatters := map[string]charmlog.Formatter{
		"json": charmlog.JSONFormatter,
		"text": charmlog.TextFormatter,
	}
	formatter := charmlog.TextFormatter
	if f, ok := formatters[cfg.Format]; ok {
		formatter = f
	}

	level, err := charmlog.ParseLevel(cfg.Level)
	if err != nil {
		level = charmlog.InfoLevel
	}

	handler := charmlog.NewWithOptions(os.Stdout, charmlog.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
