package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	internalconfig "github.com/trebuchet-org/hhcfg/internal/config"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
	"github.com/trebuchet-org/hhcfg/internal/usecase"
	"gopkg.in/yaml.v3"
)

// Encoder serializes configuration records for external tools
type Encoder struct{}

// NewEncoder creates a new record encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode renders the full record in the requested format
func (e *Encoder) Encode(record *config.Record, format usecase.ExportFormat, revealKeys bool) ([]byte, error) {
	if record == nil {
		return nil, fmt.Errorf("nothing to encode")
	}
	if !revealKeys {
		record = redactRecord(record)
	}

	if format == usecase.FormatFoundry {
		return encodeTOML(NewFoundryFile(record))
	}
	return encodeValue(record, format)
}

// EncodeProfile renders a single network profile
func (e *Encoder) EncodeProfile(name string, profile config.NetworkProfile, format usecase.ExportFormat, revealKeys bool) ([]byte, error) {
	if !revealKeys {
		profile = redactProfile(profile)
	}
	if format == usecase.FormatFoundry {
		return nil, fmt.Errorf("format %s is not available for a single network", format)
	}
	return encodeValue(map[string]config.NetworkProfile{name: profile}, format)
}

func encodeValue(v any, format usecase.ExportFormat) ([]byte, error) {
	switch format {
	case usecase.FormatJSON, "":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to encode json: %w", err)
		}
		return append(data, '\n'), nil
	case usecase.FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("failed to encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case usecase.FormatTOML:
		return encodeTOML(v)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func encodeTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode toml: %w", err)
	}
	return buf.Bytes(), nil
}

// redactRecord returns a copy of record with every signer key masked
func redactRecord(record *config.Record) *config.Record {
	out := *record
	out.Networks = make(map[string]config.NetworkProfile, len(record.Networks))
	for name, profile := range record.Networks {
		out.Networks[name] = redactProfile(profile)
	}
	return &out
}

func redactProfile(profile config.NetworkProfile) config.NetworkProfile {
	if len(profile.Accounts) == 0 {
		return profile
	}
	accounts := make([]string, len(profile.Accounts))
	for i, key := range profile.Accounts {
		accounts[i] = internalconfig.RedactKey(key)
	}
	profile.Accounts = accounts
	return profile
}

var _ usecase.RecordEncoder = (*Encoder)(nil)
