package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

func TestRenderNetworksList_Status(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf, false).RenderNetworksList(&usecase.ListNetworksResult{
		DefaultNetwork: "hardhat",
		Networks: []usecase.NetworkStatus{
			{Name: "hardhat", Default: true, Forking: true, Endpoint: "http://node:8545", Checked: true, ReportedChain: 42161},
			{Name: "goerli", Endpoint: "https://goerli-rollup.arbitrum.io/rpc", ChainID: 5, Accounts: 1, Checked: true, Error: errors.New("connection refused")},
		},
	})

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "STATUS")
	assert.Contains(t, out, "✅ chain 42161")
	assert.Contains(t, out, "❌ Connection refused")
	assert.Contains(t, out, "* default network: hardhat")
}

func TestRenderNetworksList_Unchecked(t *testing.T) {
	var buf bytes.Buffer
	err := NewNetworksRenderer(&buf, false).RenderNetworksList(&usecase.ListNetworksResult{
		DefaultNetwork: "hardhat",
		Networks: []usecase.NetworkStatus{
			{Name: "goerli", ChainID: 5, Accounts: 1, Placeholder: true},
		},
	})

	assert.NoError(t, err)
	assert.NotContains(t, buf.String(), "STATUS")
	assert.Contains(t, buf.String(), "1 (placeholder)")
}
