package config

import (
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// Assembler builds the configuration record from the environment and literal defaults.
type Assembler struct {
	lookup LookupFunc
	log    *slog.Logger
}

// NewAssembler creates an assembler reading variables through lookup.
func NewAssembler(lookup LookupFunc, log *slog.Logger) *Assembler {
	if lookup == nil {
		lookup = OSLookup
	}
	if log == nil {
		log = slog.Default()
	}
	return &Assembler{lookup: lookup, log: log}
}

// Assemble returns the record, or an error if RPC_URL is unset or the deployer key is malformed.
// No partial record is ever returned.
func (a *Assembler) Assemble() (*config.Record, error) {
	deployer := ResolveEnv(a.lookup, config.EnvDeployerPrivateKey, config.PlaceholderPrivateKey)
	if deployer.Fallback {
		a.log.Warn("Please set your DEPLOYER_PRIVATE_KEY in a .env file",
			"fallback", config.PlaceholderAddress,
			"note", "placeholder key is public, never fund it")
	}

	rpcURL, err := RequireEnv(a.lookup, config.EnvRPCURL)
	if err != nil {
		return nil, err
	}

	// Validated only; the record keeps the key as provided
	if _, err := NormalizePrivateKey(deployer.Value); err != nil {
		return nil, fmt.Errorf("%s: %w", config.EnvDeployerPrivateKey, err)
	}

	keySource := config.KeySourceEnv
	if deployer.Fallback {
		keySource = config.KeySourcePlaceholder
	}

	return &config.Record{
		DefaultNetwork: config.DefaultNetwork,
		Networks: map[string]config.NetworkProfile{
			config.NetworkHardhat: {
				Forking: &config.ForkingSettings{URL: rpcURL},
			},
			config.NetworkGoerli: {
				URL:      config.GoerliRPCURL,
				Accounts: []string{deployer.Value},
				ChainID:  config.GoerliChainID,
			},
		},
		Solidity:          defaultSolidity(),
		Paths:             defaultPaths(),
		ABIExporter:       defaultABIExporter(),
		Typechain:         defaultTypechain(),
		DeployerKeySource: keySource,
	}, nil
}

func defaultSolidity() config.SoliditySettings {
	return config.SoliditySettings{
		Compilers: []config.CompilerSettings{
			{
				Version: config.SolcVersion,
				Settings: config.CompilerOptions{
					Optimizer: config.OptimizerSettings{
						Enabled: true,
						Runs:    config.OptimizerRuns,
					},
					Metadata: config.MetadataSettings{
						BytecodeHash: config.BytecodeHashNone,
					},
				},
			},
		},
	}
}

func defaultPaths() config.PathSettings {
	return config.PathSettings{
		Sources:   config.SourcesPath,
		Tests:     config.TestsPath,
		Cache:     config.CachePath,
		Artifacts: config.ArtifactsPath,
	}
}

func defaultABIExporter() config.ABIExporterSettings {
	return config.ABIExporterSettings{
		Path:  config.ABIExportPath,
		Clear: true,
		Flat:  false,
	}
}

func defaultTypechain() config.TypechainSettings {
	return config.TypechainSettings{
		OutDir: config.TypechainDir,
		Target: config.TypechainFlavor,
	}
}
