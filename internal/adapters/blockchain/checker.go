package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// DefaultProbeTimeout bounds a single chain id request
const DefaultProbeTimeout = 10 * time.Second

// CheckerAdapter implements the ChainIDProber interface using ethclient
type CheckerAdapter struct {
	timeout time.Duration
}

// NewCheckerAdapter creates a new blockchain checker adapter
func NewCheckerAdapter() *CheckerAdapter {
	return &CheckerAdapter{timeout: DefaultProbeTimeout}
}

// ChainID dials rpcURL and asks the node for its chain id
func (c *CheckerAdapter) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return 0, fmt.Errorf("failed to connect to RPC: %w", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to get chain ID: %w", err)
	}
	return chainID.Uint64(), nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainIDProber = (*CheckerAdapter)(nil)
