package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	EnvFiles    []string // dotenv files that were loaded, in order

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Strict         bool // Refuse the placeholder key on remote networks
	Timeout        time.Duration

	// Resolved configuration
	Record *Record
}
