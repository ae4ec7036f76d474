package render

import (
	"fmt"
	"io"

	"github.com/kballard/go-shellquote"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// ForkRenderer renders the local node command line
type ForkRenderer struct {
	out io.Writer
}

// NewForkRenderer creates a new fork renderer
func NewForkRenderer(out io.Writer) *ForkRenderer {
	return &ForkRenderer{out: out}
}

// RenderForkArgs prints a command line that can be pasted into a shell
func (r *ForkRenderer) RenderForkArgs(result *usecase.ForkArgsResult) error {
	words := append([]string{result.Command}, result.Args...)
	_, err := fmt.Fprintln(r.out, shellquote.Join(words...))
	return err
}
