package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// ExportConfigParams contains parameters for exporting the configuration
type ExportConfigParams struct {
	Format     ExportFormat
	OutPath    string // empty means the caller prints Data
	RedactKeys bool
	Force      bool
}

// ExportConfigResult contains the result of an export
type ExportConfigResult struct {
	Format  ExportFormat
	Path    string
	Data    []byte
	Written bool
}

// ExportConfig is a use case for emitting the record for an external toolchain
type ExportConfig struct {
	cfg       *config.RuntimeConfig
	encoder   RecordEncoder
	writer    FileWriter
	confirmer Confirmer
	log       *slog.Logger
}

// NewExportConfig creates a new ExportConfig use case
func NewExportConfig(
	cfg *config.RuntimeConfig,
	encoder RecordEncoder,
	writer FileWriter,
	confirmer Confirmer,
	log *slog.Logger,
) *ExportConfig {
	return &ExportConfig{
		cfg:       cfg,
		encoder:   encoder,
		writer:    writer,
		confirmer: confirmer,
		log:       log,
	}
}

// Run executes the export config use case
func (uc *ExportConfig) Run(ctx context.Context, params ExportConfigParams) (*ExportConfigResult, error) {
	if params.Format == "" {
		params.Format = FormatJSON
	}

	// Consumers of the export sign with these accounts, so keys are written as is
	data, err := uc.encoder.Encode(uc.cfg.Record, params.Format, !params.RedactKeys)
	if err != nil {
		return nil, err
	}

	result := &ExportConfigResult{
		Format: params.Format,
		Path:   params.OutPath,
		Data:   data,
	}
	if params.OutPath == "" {
		return result, nil
	}

	exists, err := uc.writer.FileExists(ctx, params.OutPath)
	if err != nil {
		return nil, fmt.Errorf("failed to check %s: %w", params.OutPath, err)
	}
	if exists && !params.Force {
		overwrite, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Overwrite %s", params.OutPath))
		if err != nil {
			return nil, err
		}
		if !overwrite {
			return nil, fmt.Errorf("%s already exists, use --force to overwrite", params.OutPath)
		}
	}

	if err := uc.writer.WriteFile(ctx, params.OutPath, data); err != nil {
		return nil, err
	}
	uc.log.Debug("exported config", "format", params.Format, "path", params.OutPath, "bytes", len(data))
	result.Written = true

	return result, nil
}
