package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	internalconfig "github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// ShowConfigParams contains parameters for showing the configuration
type ShowConfigParams struct {
	Format     ExportFormat // empty renders the human summary only
	Network    string       // restrict output to one network
	RevealKeys bool
}

// ShowConfigResult contains the result of showing configuration
type ShowConfigResult struct {
	Record          *config.Record
	Network         string
	Profile         *config.NetworkProfile
	Encoded         []byte
	DeployerAddress common.Address
	KeySource       config.KeySource
	EnvFiles        []string
}

// ShowConfig is a use case for showing the assembled configuration
type ShowConfig struct {
	cfg     *config.RuntimeConfig
	encoder RecordEncoder
}

// NewShowConfig creates a new ShowConfig use case
func NewShowConfig(cfg *config.RuntimeConfig, encoder RecordEncoder) *ShowConfig {
	return &ShowConfig{
		cfg:     cfg,
		encoder: encoder,
	}
}

// Run executes the show config use case
func (uc *ShowConfig) Run(ctx context.Context, params ShowConfigParams) (*ShowConfigResult, error) {
	record := uc.cfg.Record

	result := &ShowConfigResult{
		Record:    record,
		KeySource: record.DeployerKeySource,
		EnvFiles:  uc.cfg.EnvFiles,
	}

	if goerli, ok := record.Networks[config.NetworkGoerli]; ok && len(goerli.Accounts) > 0 {
		addr, err := internalconfig.DeployerAddress(goerli.Accounts[0])
		if err != nil {
			return nil, err
		}
		result.DeployerAddress = addr
	}

	if params.Network != "" {
		profile, err := internalconfig.LookupNetwork(record, params.Network)
		if err != nil {
			return nil, err
		}
		result.Network = params.Network
		result.Profile = &profile
	}

	if params.Format == "" {
		return result, nil
	}

	var err error
	if result.Profile != nil {
		result.Encoded, err = uc.encoder.EncodeProfile(result.Network, *result.Profile, params.Format, params.RevealKeys)
	} else {
		result.Encoded, err = uc.encoder.Encode(record, params.Format, params.RevealKeys)
	}
	if err != nil {
		return nil, err
	}

	return result, nil
}
