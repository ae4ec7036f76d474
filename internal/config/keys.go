package config

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

// NormalizePrivateKey validates a hex secp256k1 key and returns it as lower-case 0x-prefixed hex.
func NormalizePrivateKey(key string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(key))
	trimmed = strings.TrimPrefix(trimmed, "0x")

	if _, err := crypto.HexToECDSA(trimmed); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}
	return "0x" + trimmed, nil
}

// DeployerAddress derives the account address controlled by key.
func DeployerAddress(key string) (common.Address, error) {
	normalized, err := NormalizePrivateKey(key)
	if err != nil {
		return common.Address{}, err
	}

	pk, err := crypto.HexToECDSA(strings.TrimPrefix(normalized, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", domain.ErrInvalidPrivateKey, err)
	}
	return crypto.PubkeyToAddress(pk.PublicKey), nil
}

// IsPlaceholderKey reports whether key is the public Hardhat account #0 key.
func IsPlaceholderKey(key string) bool {
	normalized := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(key)), "0x")
	return "0x"+normalized == config.PlaceholderPrivateKey
}

// RedactKey masks all but the first and last four hex digits of a key.
func RedactKey(key string) string {
	body := strings.TrimPrefix(key, "0x")
	if len(body) <= 8 {
		return "0x****"
	}
	return "0x" + body[:4] + "…" + body[len(body)-4:]
}
