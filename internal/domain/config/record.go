package config

// Record is the toolchain configuration handed to the external build/test/deploy tool.
// It is assembled once per invocation and never mutated afterwards.
type Record struct {
	DefaultNetwork string                    `json:"defaultNetwork" yaml:"defaultNetwork" toml:"defaultNetwork"`
	Networks       map[string]NetworkProfile `json:"networks" yaml:"networks" toml:"networks"`
	Solidity       SoliditySettings          `json:"solidity" yaml:"solidity" toml:"solidity"`
	Paths          PathSettings              `json:"paths" yaml:"paths" toml:"paths"`
	ABIExporter    ABIExporterSettings       `json:"abiExporter" yaml:"abiExporter" toml:"abiExporter"`
	Typechain      TypechainSettings         `json:"typechain" yaml:"typechain" toml:"typechain"`

	// DeployerKeySource records where the remote deployer key came from.
	DeployerKeySource KeySource `json:"-" yaml:"-" toml:"-"`
}

// KeySource tells whether a signing key was read from the environment or substituted.
type KeySource string

const (
	KeySourceEnv         KeySource = "env"
	KeySourcePlaceholder KeySource = "placeholder"
)

// NetworkProfile is either a forking profile (Forking set) or a remote profile (URL set).
type NetworkProfile struct {
	Forking  *ForkingSettings `json:"forking,omitempty" yaml:"forking,omitempty" toml:"forking,omitempty"`
	URL      string           `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	ChainID  uint64           `json:"chainId,omitempty" yaml:"chainId,omitempty" toml:"chainId,omitempty"`
	Accounts []string         `json:"accounts,omitempty" yaml:"accounts,omitempty" toml:"accounts,omitempty"`
}

// ForkingSettings points the local simulation at an upstream node.
type ForkingSettings struct {
	URL string `json:"url" yaml:"url" toml:"url"`
}

// IsForking reports whether the profile simulates a chain locally.
func (p NetworkProfile) IsForking() bool {
	return p.Forking != nil
}

// Endpoint returns the URL the profile talks to: the upstream for forks, the node URL otherwise.
func (p NetworkProfile) Endpoint() string {
	if p.Forking != nil {
		return p.Forking.URL
	}
	return p.URL
}

// SoliditySettings holds the compiler list.
type SoliditySettings struct {
	Compilers []CompilerSettings `json:"compilers" yaml:"compilers" toml:"compilers"`
}

// CompilerSettings describes a single solc version and its settings.
type CompilerSettings struct {
	Version  string          `json:"version" yaml:"version" toml:"version"`
	Settings CompilerOptions `json:"settings" yaml:"settings" toml:"settings"`
}

type CompilerOptions struct {
	Optimizer OptimizerSettings `json:"optimizer" yaml:"optimizer" toml:"optimizer"`
	Metadata  MetadataSettings  `json:"metadata" yaml:"metadata" toml:"metadata"`
}

type OptimizerSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled" toml:"enabled"`
	Runs    int  `json:"runs" yaml:"runs" toml:"runs"`
}

// MetadataSettings controls the metadata hash appended to bytecode.
// BytecodeHash "none" keeps bytecode reproducible across builds.
type MetadataSettings struct {
	BytecodeHash string `json:"bytecodeHash" yaml:"bytecodeHash" toml:"bytecodeHash"`
}

// PathSettings maps the four path roles to directories.
type PathSettings struct {
	Sources   string `json:"sources" yaml:"sources" toml:"sources"`
	Tests     string `json:"tests" yaml:"tests" toml:"tests"`
	Cache     string `json:"cache" yaml:"cache" toml:"cache"`
	Artifacts string `json:"artifacts" yaml:"artifacts" toml:"artifacts"`
}

// PathRole names a PathSettings field.
type PathRole string

const (
	PathRoleSources   PathRole = "sources"
	PathRoleTests     PathRole = "tests"
	PathRoleCache     PathRole = "cache"
	PathRoleArtifacts PathRole = "artifacts"
)

// Roles returns the path roles mapped to their directories.
func (p PathSettings) Roles() map[PathRole]string {
	return map[PathRole]string{
		PathRoleSources:   p.Sources,
		PathRoleTests:     p.Tests,
		PathRoleCache:     p.Cache,
		PathRoleArtifacts: p.Artifacts,
	}
}

// ABIExporterSettings configures ABI emission.
type ABIExporterSettings struct {
	Path  string `json:"path" yaml:"path" toml:"path"`
	Clear bool   `json:"clear" yaml:"clear" toml:"clear"`
	Flat  bool   `json:"flat" yaml:"flat" toml:"flat"`
}

// TypechainSettings configures type-binding generation.
type TypechainSettings struct {
	OutDir string `json:"outDir" yaml:"outDir" toml:"outDir"`
	Target string `json:"target" yaml:"target" toml:"target"`
}
