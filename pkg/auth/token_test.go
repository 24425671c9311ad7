package auth

import (
	"testing"
	"time"

	"github.com/angelmondragon/mercado-backend/pkg/config"
	"github.com/angelmondragon/mercado-backend/pkg/enums"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "mercado-test",
		ExpirationMinutes: 15,
	}
}

func TestMintAndParseRoundtrip(t *testing.T) {
	cfg := testJWTConfig()
	supplierID := uuid.New()
	payload := AccessTokenPayload{
		AccountID:  uuid.New(),
		SupplierID: &supplierID,
		Role:       enums.AccountRoleSupplier,
	}

	token, err := MintAccessToken(cfg, time.Now(), payload)
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, payload.AccountID, claims.AccountID)
	require.NotNil(t, claims.SupplierID)
	assert.Equal(t, supplierID, *claims.SupplierID)
	assert.Equal(t, enums.AccountRoleSupplier, claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now(), AccessTokenPayload{AccountID: uuid.New(), Role: enums.AccountRoleAdmin})
	require.NoError(t, err)

	other := cfg
	other.Secret = "different"
	_, err = ParseAccessToken(other, token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	cfg := testJWTConfig()
	token, err := MintAccessToken(cfg, time.Now().Add(-time.Hour), AccessTokenPayload{AccountID: uuid.New(), Role: enums.AccountRoleAdmin})
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.Error(t, err)
}

func TestMintRejectsInvalidRole(t *testing.T) {
	_, err := MintAccessToken(testJWTConfig(), time.Now(), AccessTokenPayload{AccountID: uuid.New(), Role: "customer"})
	assert.Error(t, err)
}
