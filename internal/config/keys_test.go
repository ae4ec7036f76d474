package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/hhcfg/internal/domain"
	"github.com/trebuchet-org/hhcfg/internal/domain/config"
)

func TestNormalizePrivateKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		want    string
		wantErr bool
	}{
		{name: "prefixed", key: testDeployerKey, want: testDeployerKey},
		{name: "no prefix", key: testDeployerKey[2:], want: testDeployerKey},
		{name: "upper case prefix", key: "0X" + testDeployerKey[2:], want: testDeployerKey},
		{name: "too short", key: "0x1234", wantErr: true},
		{name: "not hex", key: "0xzz0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", wantErr: true},
		{name: "empty", key: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePrivateKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidPrivateKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeployerAddress(t *testing.T) {
	addr, err := DeployerAddress(config.PlaceholderPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, config.PlaceholderAddress, addr.Hex())

	addr, err = DeployerAddress(testDeployerKey)
	require.NoError(t, err)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", addr.Hex())
}

func TestIsPlaceholderKey(t *testing.T) {
	assert.True(t, IsPlaceholderKey(config.PlaceholderPrivateKey))
	assert.True(t, IsPlaceholderKey("AC0974BEC39A17E36BA4A6B4D238FF944BACB478CBED5EFCAE784D7BF4F2FF80"))
	assert.False(t, IsPlaceholderKey(testDeployerKey))
	assert.False(t, IsPlaceholderKey(""))
}

func TestRedactKey(t *testing.T) {
	assert.Equal(t, "0xac09…ff80", RedactKey(config.PlaceholderPrivateKey))
	assert.Equal(t, "0x****", RedactKey("0x1234"))
}
