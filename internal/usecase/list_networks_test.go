package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

func TestListNetworks_WithoutCheck(t *testing.T) {
	prober := &MockChainIDProber{}
	sink := &MockProgressSink{}
	uc := usecase.NewListNetworks(runtimeConfig(t, map[string]string{
		config.EnvRPCURL: "https://arb1.arbitrum.io/rpc",
	}), prober, sink)

	result, err := uc.Run(context.Background(), usecase.ListNetworksParams{})
	require.NoError(t, err)

	assert.Equal(t, "hardhat", result.DefaultNetwork)
	require.Len(t, result.Networks, 2)

	hardhat := result.Networks[0]
	assert.Equal(t, "hardhat", hardhat.Name)
	assert.True(t, hardhat.Default)
	assert.True(t, hardhat.Forking)
	assert.Equal(t, "https://arb1.arbitrum.io/rpc", hardhat.Endpoint)
	assert.False(t, hardhat.Checked)

	goerli := result.Networks[1]
	assert.Equal(t, "goerli", goerli.Name)
	assert.False(t, goerli.Forking)
	assert.Equal(t, uint64(5), goerli.ChainID)
	assert.Equal(t, 1, goerli.Accounts)
	assert.True(t, goerli.Placeholder)

	prober.AssertNotCalled(t, "ChainID", mock.Anything, mock.Anything)
	assert.Empty(t, sink.infos)
	assert.Empty(t, sink.errors)
}

func TestListNetworks_Check(t *testing.T) {
	prober := &MockChainIDProber{}
	prober.On("ChainID", mock.Anything, "https://arb1.arbitrum.io/rpc").Return(uint64(42161), nil)
	prober.On("ChainID", mock.Anything, config.GoerliRPCURL).Return(uint64(421613), nil)
	sink := &MockProgressSink{}

	uc := usecase.NewListNetworks(runtimeConfig(t, defaultEnv()), prober, sink)
	result, err := uc.Run(context.Background(), usecase.ListNetworksParams{Check: true})
	require.NoError(t, err)

	hardhat := result.Networks[0]
	assert.True(t, hardhat.Checked)
	assert.Equal(t, uint64(42161), hardhat.ReportedChain)
	assert.NoError(t, hardhat.Error)

	goerli := result.Networks[1]
	assert.False(t, goerli.Placeholder)
	assert.Equal(t, uint64(421613), goerli.ReportedChain)
	require.Error(t, goerli.Error)
	assert.True(t, errors.Is(goerli.Error, domain.ErrChainIDMismatch))
	assert.Contains(t, goerli.Error.Error(), "configured 5, node reports 421613")

	require.Len(t, sink.events, 3)
	assert.Equal(t, 1, sink.events[0].Current)
	assert.Equal(t, 2, sink.events[0].Total)
	assert.True(t, sink.events[0].Spinner)
	assert.Equal(t, "completed", sink.events[2].Stage)

	require.Len(t, sink.errors, 1)
	assert.Contains(t, sink.errors[0], "goerli: ")
	assert.Equal(t, []string{"Checked 2 networks, 1 failed"}, sink.infos)

	prober.AssertExpectations(t)
}

func TestListNetworks_CheckUnreachable(t *testing.T) {
	prober := &MockChainIDProber{}
	prober.On("ChainID", mock.Anything, mock.Anything).Return(uint64(0), errors.New("connection refused"))

	sink := &MockProgressSink{}
	uc := usecase.NewListNetworks(runtimeConfig(t, defaultEnv()), prober, sink)
	result, err := uc.Run(context.Background(), usecase.ListNetworksParams{Check: true})
	require.NoError(t, err)

	for _, n := range result.Networks {
		assert.True(t, n.Checked)
		assert.EqualError(t, n.Error, "connection refused")
	}
	assert.Equal(t, []string{
		"hardhat: connection refused",
		"goerli: connection refused",
	}, sink.errors)
	assert.Equal(t, []string{"Checked 2 networks, 2 failed"}, sink.infos)
}
