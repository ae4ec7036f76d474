package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/hhcfg/internal/cli/render"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	var (
		format     string
		network    string
		revealKeys bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the assembled toolchain config",
		Long: `Show the configuration record assembled from the environment.

Without --format a summary is printed. Signer keys are masked unless
--reveal-keys is given.

Examples:
  hhcfg show
  hhcfg show --format yaml
  hhcfg show --network goerli --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ShowConfigParams{
				Network:    network,
				RevealKeys: revealKeys,
			}
			if format != "" {
				params.Format, err = parseFormat(format, usecase.FormatJSON, usecase.FormatYAML, usecase.FormatTOML)
				if err != nil {
					return err
				}
			} else if app.Config.JSON {
				params.Format = usecase.FormatJSON
			}

			result, err := app.ShowConfig.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewConfigRenderer(cmd.OutOrStdout())
			return renderer.RenderConfig(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (json, yaml, toml)")
	cmd.Flags().StringVarP(&network, "network", "n", "", "Show a single network")
	cmd.Flags().BoolVar(&revealKeys, "reveal-keys", false, "Print signer keys unmasked")

	return cmd
}
