package usecase

import (
	"context"

	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// ExportFormat names an output encoding of the configuration record
type ExportFormat string

const (
	FormatJSON    ExportFormat = "json"
	FormatYAML    ExportFormat = "yaml"
	FormatTOML    ExportFormat = "toml"
	FormatFoundry ExportFormat = "foundry"
)

// RecordEncoder serializes the configuration record
type RecordEncoder interface {
	Encode(record *config.Record, format ExportFormat, revealKeys bool) ([]byte, error)
	EncodeProfile(name string, profile config.NetworkProfile, format ExportFormat, revealKeys bool) ([]byte, error)
}

// ChainIDProber asks a node for its chain id
type ChainIDProber interface {
	ChainID(ctx context.Context, rpcURL string) (uint64, error)
}

// ForkCommandBuilder turns a forking profile into a local node command line
type ForkCommandBuilder interface {
	Command() string
	BuildForkArgs(spec ForkSpec) []string
}

// ForkSpec describes the local simulation node to start
type ForkSpec struct {
	ForkURL string
	Port    string
	Host    string
	ChainID string
}

// FileWriter handles file system operations for exports
type FileWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
	FileExists(ctx context.Context, path string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// Confirmer asks the operator a yes/no question
type Confirmer interface {
	Confirm(ctx context.Context, label string) (bool, error)
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
