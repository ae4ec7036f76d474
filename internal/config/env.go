package config

import (
	"os"
	"strings"

	"github.com/trebuchet-org/hhcfg/internal/domain"
)

// LookupFunc reads an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(name string) (string, bool)

// OSLookup reads from the process environment.
var OSLookup LookupFunc = os.LookupEnv

// MapLookup returns a LookupFunc backed by a fixed map.
func MapLookup(env map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := env[name]
		return v, ok
	}
}

// ResolvedEnv is the outcome of reading a variable that may fall back to a default.
type ResolvedEnv struct {
	Name     string
	Value    string
	Fallback bool // true when Value is the substituted default
}

// lookupNonEmpty treats empty and whitespace-only values as unset.
func lookupNonEmpty(lookup LookupFunc, name string) (string, bool) {
	v, ok := lookup(name)
	if !ok {
		return "", false
	}
	v = strings.TrimSpace(v)
	return v, v != ""
}

// RequireEnv returns the value of name or a *domain.MissingEnvError.
func RequireEnv(lookup LookupFunc, name string) (string, error) {
	v, ok := lookupNonEmpty(lookup, name)
	if !ok {
		return "", &domain.MissingEnvError{Name: name}
	}
	return v, nil
}

// ResolveEnv returns the value of name, or fallback tagged as such when it is unset.
func ResolveEnv(lookup LookupFunc, name, fallback string) ResolvedEnv {
	if v, ok := lookupNonEmpty(lookup, name); ok {
		return ResolvedEnv{Name: name, Value: v}
	}
	return ResolvedEnv{Name: name, Value: fallback, Fallback: true}
}
