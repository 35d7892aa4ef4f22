package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)

	assert.Equal(t, 1500*time.Millisecond, cfg.Checkout.VerificationDelay)
	assert.Equal(t, 24*time.Hour, cfg.Checkout.SessionTTL)

	assert.Equal(t, "Narayani's Nova Gallery", cfg.Invoice.BrandName)
	assert.Equal(t, "CURATED JEWELS - STYLED FOR YOU", cfg.Invoice.Tagline)

	assert.Equal(t, "admin@nova.local", cfg.Admin.Email)
	assert.Equal(t, "Nova@123", cfg.Admin.Password)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("CHECKOUT_VERIFICATION_DELAY", "2s")
	t.Setenv("ADMIN_EMAIL", "owner@example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 2*time.Second, cfg.Checkout.VerificationDelay)
	assert.Equal(t, "owner@example.com", cfg.Admin.Email)
}

func TestValidate_RejectsShortJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	dsn := cfg.GetDatabaseDSN()
	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=nova_gallery")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestGetRedisAddr(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
