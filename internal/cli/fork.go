package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/hhcfg/internal/cli/render"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// NewForkCmd creates the fork command
func NewForkCmd() *cobra.Command {
	var params usecase.ForkArgsParams

	cmd := &cobra.Command{
		Use:   "fork [network]",
		Short: "Print the anvil command for a forking network",
		Long: `Print the anvil command line that starts a local node forked from the
network's upstream RPC. Defaults to the default network.

Examples:
  hhcfg fork
  eval "$(hhcfg fork --port 9545)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				params.Network = args[0]
			}

			result, err := app.ForkArgs.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewForkRenderer(cmd.OutOrStdout())
			return renderer.RenderForkArgs(result)
		},
	}

	cmd.Flags().StringVar(&params.Port, "port", "", "Port for the local node (default 8545)")
	cmd.Flags().StringVar(&params.Host, "host", "", "Host for the local node (default 0.0.0.0)")
	cmd.Flags().StringVar(&params.ChainID, "chain-id", "", "Chain id override for the local node")

	return cmd
}
