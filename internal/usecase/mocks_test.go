package usecase_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	internalconfig "github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

const testDeployerKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

// MockChainIDProber is a mock implementation of ChainIDProber
type MockChainIDProber struct {
	mock.Mock
}

func (m *MockChainIDProber) ChainID(ctx context.Context, rpcURL string) (uint64, error) {
	args := m.Called(ctx, rpcURL)
	return args.Get(0).(uint64), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, data []byte) error {
	args := m.Called(ctx, path, data)
	return args.Error(0)
}

func (m *MockFileWriter) FileExists(ctx context.Context, path string) (bool, error) {
	args := m.Called(ctx, path)
	return args.Bool(0), args.Error(1)
}

// MockRecordEncoder is a mock implementation of RecordEncoder
type MockRecordEncoder struct {
	mock.Mock
}

func (m *MockRecordEncoder) Encode(record *config.Record, format usecase.ExportFormat, revealKeys bool) ([]byte, error) {
	args := m.Called(record, format, revealKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRecordEncoder) EncodeProfile(name string, profile config.NetworkProfile, format usecase.ExportFormat, revealKeys bool) ([]byte, error) {
	args := m.Called(name, profile, format, revealKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, label string) (bool, error) {
	args := m.Called(ctx, label)
	return args.Bool(0), args.Error(1)
}

// MockProgressSink records progress events and messages
type MockProgressSink struct {
	events []usecase.ProgressEvent
	infos  []string
	errors []string
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string) {
	m.infos = append(m.infos, message)
}

func (m *MockProgressSink) Error(message string) {
	m.errors = append(m.errors, message)
}

// runtimeConfig assembles a record from env the same way the provider does
func runtimeConfig(t *testing.T, env map[string]string) *config.RuntimeConfig {
	t.Helper()
	record, err := internalconfig.NewAssembler(internalconfig.MapLookup(env), slog.Default()).Assemble()
	require.NoError(t, err)
	return &config.RuntimeConfig{ProjectRoot: t.TempDir(), Record: record}
}

func defaultEnv() map[string]string {
	return map[string]string{
		config.EnvRPCURL:             "https://arb1.arbitrum.io/rpc",
		config.EnvDeployerPrivateKey: testDeployerKey,
	}
}
