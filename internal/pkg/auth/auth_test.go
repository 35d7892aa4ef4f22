package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novagallery/gallery-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "Nova Gallery Backend"
	cfg.JWT.Secret = "test-secret-key-with-enough-length-for-hs256"
	cfg.JWT.AccessTokenExpiry = time.Hour
	cfg.Security.BcryptCost = 4 // minimal cost keeps the test fast
	return cfg
}

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("admin@nova.local")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, "admin@nova.local", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, "admin:admin@nova.local", claims.Subject)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken("admin@nova.local")
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "a-completely-different-secret-key-material"
	_, err = NewJWTManager(other).ValidateToken(token)
	assert.Error(t, err)
}

func TestExtractTokenFromHeader(t *testing.T) {
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("Bearer abc.def.ghi"))
	assert.Equal(t, "abc.def.ghi", ExtractTokenFromHeader("bearer abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader("abc.def.ghi"))
	assert.Equal(t, "", ExtractTokenFromHeader(""))
}

func TestPasswordHashAndVerify(t *testing.T) {
	passwords := NewPasswordManager(testConfig())

	hash, err := passwords.HashPassword("Nova@123")
	require.NoError(t, err)
	require.NotEqual(t, "Nova@123", hash)

	assert.NoError(t, passwords.VerifyPassword("Nova@123", hash))
	assert.Error(t, passwords.VerifyPassword("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	passwords := NewPasswordManager(testConfig())

	assert.Error(t, passwords.ValidatePassword("short"))
	assert.NoError(t, passwords.ValidatePassword("Nova@123"))
}
