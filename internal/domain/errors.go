package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for configuration assembly
var (
	// ErrMissingEnv is returned when a required environment variable is unset
	ErrMissingEnv = errors.New("missing env variable")

	// ErrInvalidPrivateKey is returned when a signing key is not a valid secp256k1 key
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrInvalidConfig is returned when an assembled record breaks an invariant
	ErrInvalidConfig = errors.New("invalid config")

	// ErrPlaceholderKey is returned when the public placeholder key would sign on a remote network
	ErrPlaceholderKey = errors.New("placeholder key not allowed")

	// ErrUnknownNetwork is returned when a network name is not in the network table
	ErrUnknownNetwork = errors.New("unknown network")

	// ErrChainIDMismatch is returned when a node reports a chain id other than the configured one
	ErrChainIDMismatch = errors.New("chain ID mismatch")
)

// MissingEnvError names the required variable that was not set.
type MissingEnvError struct {
	Name string
}

func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("missing env variable `%s`", e.Name)
}

func (e *MissingEnvError) Is(target error) bool {
	return target == ErrMissingEnv
}

// UnknownNetworkErr carries close matches for a network name that does not exist.
type UnknownNetworkErr struct {
	Name        string
	Suggestions []string
}

func (e UnknownNetworkErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("network '%s' not found", e.Name)
	}
	return fmt.Sprintf("network '%s' not found, did you mean: %s?", e.Name, strings.Join(e.Suggestions, ", "))
}

func (e UnknownNetworkErr) Is(target error) bool {
	return target == ErrUnknownNetwork
}
