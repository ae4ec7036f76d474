package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/hhcfg/internal/cli/render"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		format     string
		out        string
		redactKeys bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the config for an external toolchain",
		Long: `Export the configuration record to stdout or a file.

Formats:
  json, yaml, toml   the full record
  foundry            a foundry.toml with [profile.default] and [rpc_endpoints]

Signer keys are written as is so the toolchain can sign with them; pass
--redact-keys to mask them. Files are written with mode 0600. An existing
file is only replaced with --force or after confirming the prompt.

Examples:
  hhcfg export --format foundry --out foundry.toml
  hhcfg export --format json --out build/hardhat.json
  hhcfg export --format yaml --redact-keys`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			exportFormat, err := parseFormat(format,
				usecase.FormatJSON, usecase.FormatYAML, usecase.FormatTOML, usecase.FormatFoundry)
			if err != nil {
				return err
			}

			result, err := app.ExportConfig.Run(cmd.Context(), usecase.ExportConfigParams{
				Format:     exportFormat,
				OutPath:    out,
				RedactKeys: redactKeys,
				Force:      force,
			})
			if err != nil {
				return err
			}

			renderer := render.NewExportRenderer(cmd.OutOrStdout())
			return renderer.RenderExport(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(usecase.FormatJSON), "Output format (json, yaml, toml, foundry)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write to this file instead of stdout")
	cmd.Flags().BoolVar(&redactKeys, "redact-keys", false, "Mask signer keys in the output")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing output file")

	return cmd
}
