package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/hhcfg/internal/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// MaxLevel is the highest level NewLogger will filter at
const MaxLevel = slog.LevelWarn

// NewLogger creates a new logger writing to w. The level comes from HHCFG_LOG_LEVEL
// and defaults to info; HHCFG_DEBUG=true lowers it to debug. The level is capped at
// warn so the placeholder key warning always reaches the operator.
func NewLogger(w io.Writer, lookup config.LookupFunc) *slog.Logger {
	level := ParseLevel(lookupLevel(lookup))
	if level > MaxLevel {
		level = MaxLevel
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time for cleaner output
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

func lookupLevel(lookup config.LookupFunc) string {
	if lookup == nil {
		return ""
	}
	if val, ok := lookup("HHCFG_LOG_LEVEL"); ok && val != "" {
		return val
	}
	if val, ok := lookup("HHCFG_DEBUG"); ok && val == "true" {
		return "debug"
	}
	return ""
}

// ParseLevel maps a level name to a slog level, keeping info for unknown values
func ParseLevel(val string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
