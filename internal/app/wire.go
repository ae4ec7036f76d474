//go:build wireinject
// +build wireinject

package app

import (
	"io"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/hhcfg/internal/adapters"
	"github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/logging"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, lookup config.LookupFunc, sink usecase.ProgressSink, logOut io.Writer) (*App, error) {
	wire.Build(
		// Logging
		logging.LoggingSet,

		// Runtime config
		config.Provider,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewShowConfig,
		usecase.NewListNetworks,
		usecase.NewExportConfig,
		usecase.NewForkArgs,

		// App
		NewApp,
	)
	return nil, nil
}
