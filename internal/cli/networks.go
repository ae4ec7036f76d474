package cli

import (
	"encoding/json"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/hhcfg/internal/cli/render"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// networkJSON is the --json view of a network status
type networkJSON struct {
	Name          string `json:"name"`
	Default       bool   `json:"default"`
	Kind          string `json:"kind"`
	Endpoint      string `json:"endpoint"`
	ChainID       uint64 `json:"chainId,omitempty"`
	Accounts      int    `json:"accounts"`
	Placeholder   bool   `json:"placeholder,omitempty"`
	ReportedChain uint64 `json:"reportedChainId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List configured networks",
		Long: `List the networks in the config, default network first.

With --check each endpoint is asked for its chain id; forking networks are
checked against their upstream node.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Check: check})
			if err != nil {
				return err
			}

			if app.Config.JSON {
				return renderNetworksJSON(cmd, result)
			}

			useColor := !app.Config.NonInteractive && !color.NoColor
			renderer := render.NewNetworksRenderer(cmd.OutOrStdout(), useColor)
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Query each endpoint for its chain id")

	return cmd
}

func renderNetworksJSON(cmd *cobra.Command, result *usecase.ListNetworksResult) error {
	out := make([]networkJSON, 0, len(result.Networks))
	for _, n := range result.Networks {
		item := networkJSON{
			Name:          n.Name,
			Default:       n.Default,
			Kind:          "remote",
			Endpoint:      n.Endpoint,
			ChainID:       n.ChainID,
			Accounts:      n.Accounts,
			Placeholder:   n.Placeholder,
			ReportedChain: n.ReportedChain,
		}
		if n.Forking {
			item.Kind = "fork"
		}
		if n.Error != nil {
			item.Error = n.Error.Error()
		}
		out = append(out, item)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
