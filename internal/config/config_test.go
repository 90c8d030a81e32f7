package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:          "8390",
		DBHost:        "localhost",
		DBPort:        "5432",
		DBUser:        "user",
		DBPassword:    "password",
		DBName:        "photogram",
		DBSSLMode:     "disable",
		MediaRoot:     "media",
		Env:           "development",
		TokenTTLHours: 0,
	}
}

func TestValidate(t *testing.T) {
	t.Run("development defaults pass", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("port is required", func(t *testing.T) {
		cfg := validConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("media root is required", func(t *testing.T) {
		cfg := validConfig()
		cfg.MediaRoot = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("negative token ttl is rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.TokenTTLHours = -1
		assert.Error(t, cfg.Validate())
	})

	t.Run("production refuses the default password", func(t *testing.T) {
		cfg := validConfig()
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())

		cfg.DBPassword = "4-strong-password!"
		assert.NoError(t, cfg.Validate())
	})
}

func TestTokenTTL(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, time.Duration(0), cfg.TokenTTL())

	cfg.TokenTTLHours = 48
	assert.Equal(t, 48*time.Hour, cfg.TokenTTL())
}
