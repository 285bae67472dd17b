package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SEED_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.App.CorsOrigins)
	assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("RAILWAY_ENVIRONMENT", "test")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidateSeedPassword(t *testing.T) {
	cfg := Config{
		App:  AppConfig{Port: "3000"},
		Auth: AuthConfig{JWTSecret: "x", TokenTTL: time.Hour},
		Seed: SeedConfig{Enabled: true, AdminEmail: "admin@example.com", AdminPassword: "short"},
	}
	assert.Error(t, cfg.Validate())

	cfg.Seed.AdminPassword = "long-enough-password"
	assert.NoError(t, cfg.Validate())
}

func TestDSN(t *testing.T) {
	d := DatabaseConfig{User: "u", Password: "p", Host: "h", Port: "5432", Name: "frontdesk", SSLMode: "disable"}
	assert.Equal(t,
		"postgres://u:p@h:5432/frontdesk?sslmode=disable&application_name=frontdesk&options=-c statement_timeout=3000",
		d.DSN("frontdesk"))
}
