package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

// SpinnerSink shows a spinner while network probes run
type SpinnerSink struct {
	out         io.Writer
	interactive bool
	spinner     *spinner.Spinner
}

// NewSpinnerSink creates a spinner-based progress sink. Non-interactive sinks print
// messages line by line instead.
func NewSpinnerSink(out io.Writer, interactive bool) *SpinnerSink {
	return &SpinnerSink{
		out:         out,
		interactive: interactive,
	}
}

// OnProgress handles progress events
func (s *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if !s.interactive {
		if event.Message != "" {
			fmt.Fprintln(s.out, event.Message)
		}
		return
	}

	// Handle spinner states
	if event.Spinner {
		if s.spinner == nil {
			s.spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
			s.spinner.Writer = s.out
			_ = s.spinner.Color("cyan", "bold")
		}

		if event.Total > 0 {
			s.spinner.Suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
		} else {
			s.spinner.Suffix = " " + event.Message
		}

		if !s.spinner.Active() {
			s.spinner.Start()
		}
	} else {
		s.stop()
	}
}

// Info prints an info message
func (s *SpinnerSink) Info(message string) {
	s.withSpinnerPaused(func() {
		color.New(color.FgCyan).Fprintln(s.out, message)
	})
}

// Error prints an error message
func (s *SpinnerSink) Error(message string) {
	s.withSpinnerPaused(func() {
		color.New(color.FgRed).Fprintln(s.out, message)
	})
}

func (s *SpinnerSink) withSpinnerPaused(fn func()) {
	wasActive := s.spinner != nil && s.spinner.Active()
	if wasActive {
		s.spinner.Stop()
	}
	fn()
	if wasActive {
		s.spinner.Start()
	}
}

func (s *SpinnerSink) stop() {
	if s.spinner != nil && s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
