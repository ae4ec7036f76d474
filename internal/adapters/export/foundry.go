package export

import (
	"strings"

	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// FoundryFile mirrors the subset of foundry.toml the record maps onto
type FoundryFile struct {
	Profile      map[string]FoundryProfile `toml:"profile"`
	RpcEndpoints map[string]string         `toml:"rpc_endpoints"`
}

// FoundryProfile represents a [profile.<name>] section
type FoundryProfile struct {
	SrcPath       string `toml:"src"`
	TestPath      string `toml:"test"`
	CachePath     string `toml:"cache_path"`
	OutPath       string `toml:"out"`
	SolcVersion   string `toml:"solc_version,omitempty"`
	Optimizer     bool   `toml:"optimizer"`
	OptimizerRuns int    `toml:"optimizer_runs,omitempty"`
	BytecodeHash  string `toml:"bytecode_hash,omitempty"`
}

// NewFoundryFile maps the record onto a default foundry profile.
// Forking networks keep an ${RPC_URL} reference instead of the resolved upstream URL.
func NewFoundryFile(record *config.Record) *FoundryFile {
	profile := FoundryProfile{
		SrcPath:   stripDotSlash(record.Paths.Sources),
		TestPath:  stripDotSlash(record.Paths.Tests),
		CachePath: stripDotSlash(record.Paths.Cache),
		OutPath:   stripDotSlash(record.Paths.Artifacts),
	}

	if len(record.Solidity.Compilers) > 0 {
		// foundry.toml has a single solc per profile; the first compiler wins
		compiler := record.Solidity.Compilers[0]
		profile.SolcVersion = compiler.Version
		profile.Optimizer = compiler.Settings.Optimizer.Enabled
		profile.OptimizerRuns = compiler.Settings.Optimizer.Runs
		profile.BytecodeHash = compiler.Settings.Metadata.BytecodeHash
	}

	endpoints := make(map[string]string, len(record.Networks))
	for name, network := range record.Networks {
		if network.IsForking() {
			endpoints[name] = "${" + config.EnvRPCURL + "}"
			continue
		}
		endpoints[name] = network.URL
	}

	return &FoundryFile{
		Profile:      map[string]FoundryProfile{"default": profile},
		RpcEndpoints: endpoints,
	}
}

func stripDotSlash(path string) string {
	return strings.TrimPrefix(path, "./")
}
