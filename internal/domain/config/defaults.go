package config

// Environment variables read by the assembler.
const (
	EnvRPCURL             = "RPC_URL"
	EnvDeployerPrivateKey = "DEPLOYER_PRIVATE_KEY" //nolint:gosec // env var name, not a secret
)

// Network names in the fixed network table.
const (
	NetworkHardhat = "hardhat"
	NetworkGoerli  = "goerli"
)

const (
	DefaultNetwork = NetworkHardhat

	GoerliRPCURL  = "https://goerli-rollup.arbitrum.io/rpc"
	GoerliChainID = uint64(5)

	SolcVersion      = "0.8.17"
	OptimizerRuns    = 99999
	BytecodeHashNone = "none"

	SourcesPath   = "./contracts"
	TestsPath     = "./test"
	CachePath     = "./cache"
	ArtifactsPath = "./artifacts"

	ABIExportPath   = "./data/abi"
	TypechainDir    = "typechain"
	TypechainFlavor = "ethers-v5"
)

// PlaceholderPrivateKey is Hardhat account #0. The key is published in the Hardhat
// docs and must only ever sign on throwaway local chains.
const PlaceholderPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80" //nolint:gosec // public test key

// PlaceholderAddress is the account derived from PlaceholderPrivateKey.
const PlaceholderAddress = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
