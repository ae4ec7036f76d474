package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// ExportRenderer renders export results
type ExportRenderer struct {
	out io.Writer
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer) *ExportRenderer {
	return &ExportRenderer{out: out}
}

// RenderExport prints the data, or a confirmation when it went to a file
func (r *ExportRenderer) RenderExport(result *usecase.ExportConfigResult) error {
	if !result.Written {
		_, err := r.out.Write(result.Data)
		return err
	}
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Exported %s config", result.Format)))
	fmt.Fprintf(r.out, "📁 written to: %s\n", getRelativePath(result.Path))
	return nil
}
