package config

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

var allowedSchemes = []string{"http", "https", "ws", "wss"}

// Validate checks the invariants of an assembled record.
func Validate(record *config.Record) error {
	if record == nil {
		return fmt.Errorf("%w: nil record", domain.ErrInvalidConfig)
	}
	if _, ok := record.Networks[record.DefaultNetwork]; !ok {
		return fmt.Errorf("%w: default network '%s' is not defined", domain.ErrInvalidConfig, record.DefaultNetwork)
	}

	for _, name := range NetworkNames(record) {
		if err := validateProfile(name, record.Networks[name]); err != nil {
			return err
		}
	}

	if len(record.Solidity.Compilers) == 0 {
		return fmt.Errorf("%w: no compilers configured", domain.ErrInvalidConfig)
	}
	return nil
}

func validateProfile(name string, p config.NetworkProfile) error {
	if p.IsForking() == (p.URL != "") {
		return fmt.Errorf("%w: network '%s' must set exactly one of forking or url", domain.ErrInvalidConfig, name)
	}
	if err := validateURL(p.Endpoint()); err != nil {
		return fmt.Errorf("%w: network '%s': %v", domain.ErrInvalidConfig, name, err)
	}
	if p.IsForking() {
		return nil
	}

	if p.ChainID == 0 {
		return fmt.Errorf("%w: network '%s' has no chain id", domain.ErrInvalidConfig, name)
	}
	for i, key := range p.Accounts {
		if _, err := NormalizePrivateKey(key); err != nil {
			return fmt.Errorf("network '%s' account %d: %w", name, i, err)
		}
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !lo.Contains(allowedSchemes, u.Scheme) {
		return fmt.Errorf("unsupported url scheme '%s'", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url '%s' has no host", raw)
	}
	return nil
}

// RequireFundedSafe refuses to hand the placeholder key to a remote network.
// Forking profiles are local simulations and always pass.
func RequireFundedSafe(record *config.Record, network string) error {
	profile, err := LookupNetwork(record, network)
	if err != nil {
		return err
	}
	if profile.IsForking() {
		return nil
	}
	for _, key := range profile.Accounts {
		if IsPlaceholderKey(key) {
			return fmt.Errorf("%w: network '%s' would sign with the public placeholder key, set %s",
				domain.ErrPlaceholderKey, network, config.EnvDeployerPrivateKey)
		}
	}
	return nil
}

// RequireFundedSafeAll runs RequireFundedSafe for every network in the record.
func RequireFundedSafeAll(record *config.Record) error {
	for _, name := range NetworkNames(record) {
		if err := RequireFundedSafe(record, name); err != nil {
			return err
		}
	}
	return nil
}

// LookupNetwork returns the named profile, suggesting close names when it is missing.
func LookupNetwork(record *config.Record, name string) (config.NetworkProfile, error) {
	if profile, ok := record.Networks[name]; ok {
		return profile, nil
	}

	matches := fuzzy.Find(name, NetworkNames(record))
	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return config.NetworkProfile{}, domain.UnknownNetworkErr{Name: name, Suggestions: suggestions}
}

// NetworkNames returns the network names with the default network first, then alphabetical.
func NetworkNames(record *config.Record) []string {
	names := lo.Keys(record.Networks)
	sort.Slice(names, func(i, j int) bool {
		if names[i] == record.DefaultNetwork {
			return true
		}
		if names[j] == record.DefaultNetwork {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
