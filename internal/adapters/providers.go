package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/hhcfg/internal/adapters/anvil"
	"github.com/trebuchet-org/hhcfg/internal/adapters/blockchain"
	"github.com/trebuchet-org/hhcfg/internal/adapters/export"
	"github.com/trebuchet-org/hhcfg/internal/adapters/interactive"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// ExportSet provides encoders and the file writer
var ExportSet = wire.NewSet(
	export.NewEncoder,
	wire.Bind(new(usecase.RecordEncoder), new(*export.Encoder)),

	export.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*export.FileWriterAdapter)),
)

// BlockchainSet provides RPC-backed implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewCheckerAdapter,
	wire.Bind(new(usecase.ChainIDProber), new(*blockchain.CheckerAdapter)),
)

// AnvilSet provides the local node command builder
var AnvilSet = wire.NewSet(
	anvil.NewManager,
	wire.Bind(new(usecase.ForkCommandBuilder), new(*anvil.Manager)),
)

// InteractiveSet provides terminal prompts
var InteractiveSet = wire.NewSet(
	interactive.NewConfirmAdapter,
	wire.Bind(new(usecase.Confirmer), new(*interactive.ConfirmAdapter)),
)

// AllAdapters combines all adapter sets
var AllAdapters = wire.NewSet(
	ExportSet,
	BlockchainSet,
	AnvilSet,
	InteractiveSet,
)
