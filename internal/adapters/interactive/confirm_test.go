package interactive

import (
	"context"
	"testing"

	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

type stubPrompt struct {
	err    error
	labels *[]string
	label  string
}

func (p stubPrompt) Run() (string, error) {
	*p.labels = append(*p.labels, p.label)
	return "", p.err
}

func newStubbed(cfg *config.RuntimeConfig, err error) (*ConfirmAdapter, *[]string) {
	var labels []string
	c := NewConfirmAdapter(cfg)
	c.newPrompt = func(label string) promptRunner {
		return stubPrompt{err: err, labels: &labels, label: label}
	}
	return c, &labels
}

func TestConfirmAdapter(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.RuntimeConfig
		promptErr error
		want      bool
		wantErr   bool
		asked     bool
	}{
		{name: "accepted", want: true, asked: true},
		{name: "declined", promptErr: promptui.ErrAbort, want: false, asked: true},
		{name: "interrupted", promptErr: promptui.ErrInterrupt, wantErr: true, asked: true},
		{name: "non-interactive", cfg: config.RuntimeConfig{NonInteractive: true}},
		{name: "json output", cfg: config.RuntimeConfig{JSON: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, labels := newStubbed(&tt.cfg, tt.promptErr)

			got, err := c.Confirm(context.Background(), "Overwrite foundry.toml")
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)

			if tt.asked {
				assert.Equal(t, []string{"Overwrite foundry.toml"}, *labels)
			} else {
				assert.Empty(t, *labels)
			}
		})
	}
}
