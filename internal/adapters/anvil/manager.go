package anvil

import (
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

const (
	// DefaultAnvilPort is the port anvil listens on unless told otherwise
	DefaultAnvilPort = "8545"
	// DefaultAnvilHost binds the node to every interface
	DefaultAnvilHost = "0.0.0.0"
)

// Manager builds anvil command lines for forking profiles
type Manager struct{}

// NewManager creates a new anvil manager adapter
func NewManager() *Manager {
	return &Manager{}
}

// Command returns the binary name
func (m *Manager) Command() string {
	return "anvil"
}

// BuildForkArgs builds the anvil arguments for a fork of spec.ForkURL
func (m *Manager) BuildForkArgs(spec usecase.ForkSpec) []string {
	return buildAnvilArgs(spec)
}

func buildAnvilArgs(spec usecase.ForkSpec) []string {
	port := spec.Port
	if port == "" {
		port = DefaultAnvilPort
	}
	host := spec.Host
	if host == "" {
		host = DefaultAnvilHost
	}

	args := []string{"--port", port, "--host", host}
	if spec.ChainID != "" {
		args = append(args, "--chain-id", spec.ChainID)
	}
	if spec.ForkURL != "" {
		args = append(args, "--fork-url", spec.ForkURL)
	}
	return args
}

var _ usecase.ForkCommandBuilder = (*Manager)(nil)
