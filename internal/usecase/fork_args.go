package usecase

import (
	"context"
	"fmt"

	internalconfig "github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// ForkArgsParams contains parameters for building the fork command
type ForkArgsParams struct {
	Network string // defaults to the record's default network
	Port    string
	Host    string
	ChainID string
}

// ForkArgsResult contains the local node command line
type ForkArgsResult struct {
	Network string
	ForkURL string
	Command string
	Args    []string
}

// ForkArgs is a use case for turning a forking profile into a node command line
type ForkArgs struct {
	cfg     *config.RuntimeConfig
	builder ForkCommandBuilder
}

// NewForkArgs creates a new ForkArgs use case
func NewForkArgs(cfg *config.RuntimeConfig, builder ForkCommandBuilder) *ForkArgs {
	return &ForkArgs{
		cfg:     cfg,
		builder: builder,
	}
}

// Run executes the use case
func (uc *ForkArgs) Run(ctx context.Context, params ForkArgsParams) (*ForkArgsResult, error) {
	name := params.Network
	if name == "" {
		name = uc.cfg.Record.DefaultNetwork
	}

	profile, err := internalconfig.LookupNetwork(uc.cfg.Record, name)
	if err != nil {
		return nil, err
	}
	if !profile.IsForking() {
		return nil, fmt.Errorf("%w: network '%s' is not a forking network", domain.ErrInvalidConfig, name)
	}

	args := uc.builder.BuildForkArgs(ForkSpec{
		ForkURL: profile.Forking.URL,
		Port:    params.Port,
		Host:    params.Host,
		ChainID: params.ChainID,
	})

	return &ForkArgsResult{
		Network: name,
		ForkURL: profile.Forking.URL,
		Command: uc.builder.Command(),
		Args:    args,
	}, nil
}
