package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnvVars(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_ACCESS_SECRET_KEY", "access_secret")
	t.Setenv("JWT_REFRESH_SECRET_KEY", "refresh_secret")
}

func TestLoad(t *testing.T) {
	t.Run("uses defaults when only required vars are set", func(t *testing.T) {
		setRequiredEnvVars(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
		assert.Equal(t, "books_store", cfg.DBName)
		assert.Equal(t, "HS256", cfg.JWTAlgorithm)
		assert.Equal(t, 15, cfg.JWTAccessExpiryMinutes)
		assert.Equal(t, 7, cfg.JWTRefreshExpiryDays)
		assert.Equal(t, 30, cfg.SessionExpiryMinutes)
		assert.Equal(t, "http://localhost:3000", cfg.FrontendHost)
		assert.False(t, cfg.IsProduction())
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		setRequiredEnvVars(t)
		t.Setenv("ENV", "production")
		t.Setenv("PORT", "9090")
		t.Setenv("JWT_ACCESS_EXPIRY_MINUTES", "5")
		t.Setenv("JWT_REFRESH_EXPIRY_DAYS", "30")
		t.Setenv("MAIL_SERVER", "mail.internal")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, 5, cfg.JWTAccessExpiryMinutes)
		assert.Equal(t, 30, cfg.JWTRefreshExpiryDays)
		assert.Equal(t, "mail.internal", cfg.MailServer)
		assert.True(t, cfg.IsProduction())
	})

	t.Run("fails when a required secret is missing", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET_KEY", "access_secret")
		t.Setenv("JWT_REFRESH_SECRET_KEY", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects identical access and refresh secrets", func(t *testing.T) {
		t.Setenv("JWT_ACCESS_SECRET_KEY", "same_secret")
		t.Setenv("JWT_REFRESH_SECRET_KEY", "same_secret")

		_, err := Load()
		assert.Error(t, err)
	})
}
