package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the configured networks and, when checked, their probe results
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	prev := color.NoColor
	color.NoColor = !r.color
	defer func() { color.NoColor = prev }()

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	checked := false
	for _, n := range result.Networks {
		checked = checked || n.Checked
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Box = table.BoxStyle{PaddingLeft: "  ", PaddingRight: " "}

	header := table.Row{"NAME", "KIND", "ENDPOINT", "CHAIN", "ACCOUNTS"}
	if checked {
		header = append(header, "STATUS")
	}
	t.AppendHeader(header)

	for _, n := range result.Networks {
		name := n.Name
		if n.Default {
			name = color.New(color.Bold).Sprint(name + " *")
		}

		kind := "remote"
		chain := fmt.Sprintf("%d", n.ChainID)
		if n.Forking {
			kind = "fork"
			chain = "-"
		}

		accounts := fmt.Sprintf("%d", n.Accounts)
		if n.Placeholder {
			accounts = color.New(color.FgYellow).Sprintf("%d (placeholder)", n.Accounts)
		}

		row := table.Row{name, kind, n.Endpoint, chain, accounts}
		if checked {
			row = append(row, r.status(n))
		}
		t.AppendRow(row)
	}
	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "* default network: %s\n", result.DefaultNetwork)
	return nil
}

func (r *NetworksRenderer) status(n usecase.NetworkStatus) string {
	if !n.Checked {
		return ""
	}
	if n.Error != nil {
		return FormatError(n.Error.Error())
	}
	return FormatSuccess(fmt.Sprintf("chain %d", n.ReportedChain))
}
