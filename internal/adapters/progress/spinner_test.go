package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
)

func TestSpinnerSink_NonInteractivePrintsMessages(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSpinnerSink(&buf, false)

	sink.OnProgress(context.Background(), usecase.ProgressEvent{Message: "probing goerli", Spinner: true})
	sink.OnProgress(context.Background(), usecase.ProgressEvent{})

	assert.Equal(t, "probing goerli\n", buf.String())
	assert.Nil(t, sink.spinner)
}

func TestSpinnerSink_InfoAndError(t *testing.T) {
	var buf bytes.Buffer
	sink := NewSpinnerSink(&buf, false)

	sink.Info("checked 2 networks")
	sink.Error("goerli unreachable")

	assert.Contains(t, buf.String(), "checked 2 networks")
	assert.Contains(t, buf.String(), "goerli unreachable")
}
