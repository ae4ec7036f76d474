package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// promptRunner is the part of promptui.Prompt the confirmer needs
type promptRunner interface {
	Run() (string, error)
}

// ConfirmAdapter asks yes/no questions on the terminal
type ConfirmAdapter struct {
	config    *config.RuntimeConfig
	newPrompt func(label string) promptRunner
}

// NewConfirmAdapter creates a new confirm adapter
func NewConfirmAdapter(cfg *config.RuntimeConfig) *ConfirmAdapter {
	return &ConfirmAdapter{
		config: cfg,
		newPrompt: func(label string) promptRunner {
			return &promptui.Prompt{
				Label:     label,
				IsConfirm: true,
			}
		},
	}
}

// Confirm asks label and reports whether the operator agreed. Non-interactive runs
// never ask and answer no.
func (c *ConfirmAdapter) Confirm(ctx context.Context, label string) (bool, error) {
	if c.config.NonInteractive || c.config.JSON {
		return false, nil
	}

	_, err := c.newPrompt(label).Run()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, promptui.ErrAbort):
		return false, nil
	default:
		return false, fmt.Errorf("confirmation cancelled: %w", err)
	}
}

var _ usecase.Confirmer = (*ConfirmAdapter)(nil)
