package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	base := Config{
		Port:            "8390",
		DBPassword:      "password",
		DBSSLMode:       "disable",
		SessionTTLHours: 168,
		Env:             "development",
	}

	t.Run("valid development config", func(t *testing.T) {
		cfg := base
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := base
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive session ttl", func(t *testing.T) {
		cfg := base
		cfg.SessionTTLHours = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("default db password rejected in production", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("strong db password accepted in production", func(t *testing.T) {
		cfg := base
		cfg.Env = "production"
		cfg.DBPassword = "s3cure-and-unique"
		assert.NoError(t, cfg.Validate())
	})
}
