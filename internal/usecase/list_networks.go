package usecase

import (
	"context"
	"fmt"

	internalconfig "github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	Check bool // ask each endpoint for its chain id
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	DefaultNetwork string
	Networks       []NetworkStatus
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name          string
	Default       bool
	Forking       bool
	Endpoint      string
	ChainID       uint64 // configured; zero for forks
	Accounts      int
	Placeholder   bool // signs with the public placeholder key
	Checked       bool
	ReportedChain uint64
	Error         error
}

// ListNetworks is a use case for listing configured networks
type ListNetworks struct {
	cfg    *config.RuntimeConfig
	prober ChainIDProber
	sink   ProgressSink
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, prober ChainIDProber, sink ProgressSink) *ListNetworks {
	return &ListNetworks{
		cfg:    cfg,
		prober: prober,
		sink:   sink,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	record := uc.cfg.Record
	names := internalconfig.NetworkNames(record)

	networks := make([]NetworkStatus, 0, len(names))
	for i, name := range names {
		profile := record.Networks[name]
		status := NetworkStatus{
			Name:     name,
			Default:  name == record.DefaultNetwork,
			Forking:  profile.IsForking(),
			Endpoint: profile.Endpoint(),
			ChainID:  profile.ChainID,
			Accounts: len(profile.Accounts),
		}
		for _, key := range profile.Accounts {
			if internalconfig.IsPlaceholderKey(key) {
				status.Placeholder = true
			}
		}

		if params.Check {
			uc.sink.OnProgress(ctx, ProgressEvent{
				Stage:   "probing",
				Current: i + 1,
				Total:   len(names),
				Message: fmt.Sprintf("Checking %s", name),
				Spinner: true,
			})
			uc.check(ctx, &status)
		}

		networks = append(networks, status)
	}

	if params.Check {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "completed"})

		failed := 0
		for _, n := range networks {
			if n.Error != nil {
				failed++
				uc.sink.Error(fmt.Sprintf("%s: %v", n.Name, n.Error))
			}
		}
		uc.sink.Info(fmt.Sprintf("Checked %d networks, %d failed", len(networks), failed))
	}

	return &ListNetworksResult{
		DefaultNetwork: record.DefaultNetwork,
		Networks:       networks,
	}, nil
}

func (uc *ListNetworks) check(ctx context.Context, status *NetworkStatus) {
	status.Checked = true

	chainID, err := uc.prober.ChainID(ctx, status.Endpoint)
	if err != nil {
		status.Error = err
		return
	}
	status.ReportedChain = chainID

	if status.ChainID != 0 && status.ChainID != chainID {
		status.Error = fmt.Errorf("%w: configured %d, node reports %d", domain.ErrChainIDMismatch, status.ChainID, chainID)
	}
}
