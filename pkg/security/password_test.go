package security

import (
	"testing"

	"github.com/angelmondragon/mercado-backend/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPasswordConfig() config.PasswordConfig {
	// low-cost parameters keep the test fast
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashAndVerifyRoundtrip(t *testing.T) {
	encoded, err := HashPassword("correct horse", testPasswordConfig())
	require.NoError(t, err)
	assert.Contains(t, encoded, "$argon2id$")

	ok, err := VerifyPassword("correct horse", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("wrong horse", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	_, err := HashPassword("", testPasswordConfig())
	assert.Error(t, err)
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	_, err := VerifyPassword("anything", "not-a-hash")
	assert.ErrorIs(t, err, ErrInvalidHash)
}
