// Package app is the composition root: it wires the config, logger, store,
// and ledger service into one explicitly constructed application instance.
package app

import (
	"log/slog"

	"github.com/kongbank/accounts/infra/repository/memory"
	"github.com/kongbank/accounts/pkg/config"
	accountsvc "github.com/kongbank/accounts/pkg/service/account"
)

// App holds the constructed services and their dependencies.
type App struct {
	Config         *config.App
	Logger         *slog.Logger
	AccountService *accountsvc.Service
}

// New builds the application with a fresh in-memory account store. The store
// starts empty; its contents live for the lifetime of the process.
func New(cfg *config.App, logger *slog.Logger) *App {
	repo := memory.New()
	return &App{
		Config:         cfg,
		Logger:         logger,
		AccountService: accountsvc.NewService(repo, logger),
	}
}
