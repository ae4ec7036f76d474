package config

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

const testDeployerKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

func newTestAssembler(env map[string]string) (*Assembler, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	return NewAssembler(MapLookup(env), log), &buf
}

func TestAssemble_PlaceholderKeyWhenDeployerUnset(t *testing.T) {
	a, logs := newTestAssembler(map[string]string{
		config.EnvRPCURL: "https://arb1.arbitrum.io/rpc",
	})

	record, err := a.Assemble()
	require.NoError(t, err)

	assert.Equal(t, []string{config.PlaceholderPrivateKey}, record.Networks[config.NetworkGoerli].Accounts)
	assert.Equal(t, config.KeySourcePlaceholder, record.DeployerKeySource)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "DEPLOYER_PRIVATE_KEY")
}

func TestAssemble_ProvidedKeyNoWarning(t *testing.T) {
	a, logs := newTestAssembler(map[string]string{
		config.EnvRPCURL:             "https://arb1.arbitrum.io/rpc",
		config.EnvDeployerPrivateKey: testDeployerKey,
	})

	record, err := a.Assemble()
	require.NoError(t, err)

	assert.Equal(t, []string{testDeployerKey}, record.Networks[config.NetworkGoerli].Accounts)
	assert.Equal(t, config.KeySourceEnv, record.DeployerKeySource)
	assert.Empty(t, logs.String())
}

func TestAssemble_MissingRPCURL(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unset", env: map[string]string{config.EnvDeployerPrivateKey: testDeployerKey}},
		{name: "empty", env: map[string]string{config.EnvRPCURL: ""}},
		{name: "whitespace", env: map[string]string{config.EnvRPCURL: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAssembler(tt.env)

			record, err := a.Assemble()
			require.Error(t, err)
			assert.Nil(t, record)
			assert.True(t, errors.Is(err, domain.ErrMissingEnv))
			assert.Contains(t, err.Error(), "RPC_URL")

			var missing *domain.MissingEnvError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, config.EnvRPCURL, missing.Name)
		})
	}
}

func TestAssemble_ForkFollowsRPCURL(t *testing.T) {
	urls := []string{
		"https://arb1.arbitrum.io/rpc",
		"http://localhost:8545",
		"wss://mainnet.infura.io/ws/v3/abc",
		"https://eth-mainnet.g.alchemy.com/v2/key?x=1",
	}

	for _, url := range urls {
		t.Run(url, func(t *testing.T) {
			a, _ := newTestAssembler(map[string]string{config.EnvRPCURL: url})

			record, err := a.Assemble()
			require.NoError(t, err)

			hardhat := record.Networks[config.NetworkHardhat]
			require.NotNil(t, hardhat.Forking)
			assert.Equal(t, url, hardhat.Forking.URL)
		})
	}
}

func TestAssemble_LiteralSettingsIgnoreEnvironment(t *testing.T) {
	envs := []map[string]string{
		{config.EnvRPCURL: "http://a:8545"},
		{config.EnvRPCURL: "http://b:8545", config.EnvDeployerPrivateKey: testDeployerKey},
	}

	for _, env := range envs {
		a, _ := newTestAssembler(env)
		record, err := a.Assemble()
		require.NoError(t, err)

		require.Len(t, record.Solidity.Compilers, 1)
		compiler := record.Solidity.Compilers[0]
		assert.Equal(t, "0.8.17", compiler.Version)
		assert.True(t, compiler.Settings.Optimizer.Enabled)
		assert.Equal(t, 99999, compiler.Settings.Optimizer.Runs)
		assert.Equal(t, "none", compiler.Settings.Metadata.BytecodeHash)

		assert.Equal(t, map[config.PathRole]string{
			config.PathRoleSources:   "./contracts",
			config.PathRoleTests:     "./test",
			config.PathRoleCache:     "./cache",
			config.PathRoleArtifacts: "./artifacts",
		}, record.Paths.Roles())

		assert.Equal(t, config.ABIExporterSettings{Path: "./data/abi", Clear: true, Flat: false}, record.ABIExporter)
		assert.Equal(t, config.TypechainSettings{OutDir: "typechain", Target: "ethers-v5"}, record.Typechain)
	}
}

func TestAssemble_NetworkTable(t *testing.T) {
	a, _ := newTestAssembler(map[string]string{config.EnvRPCURL: "http://node:8545"})

	record, err := a.Assemble()
	require.NoError(t, err)

	assert.Equal(t, "hardhat", record.DefaultNetwork)
	assert.Len(t, record.Networks, 2)

	goerli := record.Networks[config.NetworkGoerli]
	assert.Nil(t, goerli.Forking)
	assert.Equal(t, "https://goerli-rollup.arbitrum.io/rpc", goerli.URL)
	assert.Equal(t, uint64(5), goerli.ChainID)

	require.NoError(t, Validate(record))
}

func TestAssemble_KeepsProvidedKeyText(t *testing.T) {
	keys := []string{
		testDeployerKey,
		"59C6995E998F97A5A0044966F0945389DC9E86DAE88C7A8412F4603B6B78690D",
		"0x59C6995E998F97A5A0044966F0945389DC9E86DAE88C7A8412F4603B6B78690D",
	}

	for _, key := range keys {
		t.Run(key, func(t *testing.T) {
			a, _ := newTestAssembler(map[string]string{
				config.EnvRPCURL:             "http://node:8545",
				config.EnvDeployerPrivateKey: "  " + key + "\n",
			})

			record, err := a.Assemble()
			require.NoError(t, err)
			assert.Equal(t, []string{key}, record.Networks[config.NetworkGoerli].Accounts)
			require.NoError(t, Validate(record))

			addr, err := DeployerAddress(record.Networks[config.NetworkGoerli].Accounts[0])
			require.NoError(t, err)
			assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", addr.Hex())
		})
	}
}

func TestAssemble_InvalidDeployerKey(t *testing.T) {
	a, _ := newTestAssembler(map[string]string{
		config.EnvRPCURL:             "http://node:8545",
		config.EnvDeployerPrivateKey: "0x1234",
	})

	record, err := a.Assemble()
	require.Error(t, err)
	assert.Nil(t, record)
	assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey)
	assert.Contains(t, err.Error(), "DEPLOYER_PRIVATE_KEY")
}
