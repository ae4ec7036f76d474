package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// ConfigRenderer renders the assembled configuration
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderConfig renders either the encoded record or a human summary
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if result.Encoded != nil {
		_, err := r.out.Write(result.Encoded)
		return err
	}

	if result.Profile != nil {
		r.renderProfile(result.Network, *result.Profile, result.Record.DefaultNetwork)
		return nil
	}

	record := result.Record
	bold := color.New(color.Bold)

	bold.Fprintln(r.out, "📋 Toolchain config:")
	fmt.Fprintf(r.out, "Default network: %s\n", record.DefaultNetwork)
	r.renderDeployer(result)
	fmt.Fprintln(r.out)

	r.renderSection("Solidity", table.Row{"version", "optimizer", "runs", "bytecodeHash"}, compilerRows(record.Solidity))
	r.renderSection("Paths", nil, pathRows(record.Paths))
	r.renderSection("ABI Exporter", nil, []table.Row{
		{"path", record.ABIExporter.Path},
		{"clear", record.ABIExporter.Clear},
		{"flat", record.ABIExporter.Flat},
	})
	r.renderSection(title("typechain"), nil, []table.Row{
		{"outDir", record.Typechain.OutDir},
		{"target", record.Typechain.Target},
	})

	if len(result.EnvFiles) > 0 {
		fmt.Fprintln(r.out, "📁 env files:")
		for _, f := range result.EnvFiles {
			fmt.Fprintf(r.out, "  %s\n", getRelativePath(f))
		}
	}
	return nil
}

func (r *ConfigRenderer) renderDeployer(result *usecase.ShowConfigResult) {
	if result.KeySource == config.KeySourcePlaceholder {
		fmt.Fprintf(r.out, "Deployer:        %s %s\n", result.DeployerAddress.Hex(),
			FormatWarning("placeholder key, do not fund"))
		return
	}
	fmt.Fprintf(r.out, "Deployer:        %s\n", result.DeployerAddress.Hex())
}

func (r *ConfigRenderer) renderProfile(name string, profile config.NetworkProfile, defaultNetwork string) {
	heading := name
	if name == defaultNetwork {
		heading += " (default)"
	}
	color.New(color.Bold).Fprintf(r.out, "🌐 %s\n", heading)

	if profile.IsForking() {
		fmt.Fprintf(r.out, "  Kind:      fork\n")
		fmt.Fprintf(r.out, "  Fork from: %s\n", profile.Forking.URL)
		return
	}
	fmt.Fprintf(r.out, "  Kind:      remote\n")
	fmt.Fprintf(r.out, "  URL:       %s\n", profile.URL)
	fmt.Fprintf(r.out, "  Chain ID:  %d\n", profile.ChainID)
	fmt.Fprintf(r.out, "  Accounts:  %d\n", len(profile.Accounts))
}

func compilerRows(solidity config.SoliditySettings) []table.Row {
	var rows []table.Row
	for _, c := range solidity.Compilers {
		rows = append(rows, table.Row{
			c.Version,
			c.Settings.Optimizer.Enabled,
			c.Settings.Optimizer.Runs,
			c.Settings.Metadata.BytecodeHash,
		})
	}
	return rows
}

func pathRows(paths config.PathSettings) []table.Row {
	roles := paths.Roles()
	keys := make([]string, 0, len(roles))
	for role := range roles {
		keys = append(keys, string(role))
	}
	sort.Strings(keys)

	rows := make([]table.Row, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, table.Row{k, roles[config.PathRole(k)]})
	}
	return rows
}

// renderSection prints a heading and a borderless table
func (r *ConfigRenderer) renderSection(heading string, header table.Row, rows []table.Row) {
	if len(rows) == 0 {
		return
	}

	color.New(color.FgCyan, color.Bold).Fprintln(r.out, heading)

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Format.Header = text.FormatDefault
	t.Style().Box = table.BoxStyle{PaddingLeft: "  ", PaddingRight: " "}

	if len(header) > 0 {
		t.AppendHeader(header)
	}
	t.AppendRows(rows)
	t.Render()
	fmt.Fprintln(r.out)
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}
