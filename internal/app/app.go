package app

import (
	"log/slog"

	"github.com/trebuchet-org/hhcfg/internal/domain/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ShowConfig   *usecase.ShowConfig
	ListNetworks *usecase.ListNetworks
	ExportConfig *usecase.ExportConfig
	ForkArgs     *usecase.ForkArgs
}

// NewApp creates a new App instance with all dependencies
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	showConfig *usecase.ShowConfig,
	listNetworks *usecase.ListNetworks,
	exportConfig *usecase.ExportConfig,
	forkArgs *usecase.ForkArgs,
) (*App, error) {
	return &App{
		Config:       cfg,
		Log:          log,
		ShowConfig:   showConfig,
		ListNetworks: listNetworks,
		ExportConfig: exportConfig,
		ForkArgs:     forkArgs,
	}, nil
}
