package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     5433,
		User:     "svc",
		Password: "hunter2",
		Database: "omni",
		SSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=hunter2 dbname=omni sslmode=require",
		cfg.DSN())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults apply when unset", func(t *testing.T) {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE"} {
			t.Setenv(key, "")
		}

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "omniintelligence", cfg.User)
		assert.Equal(t, "omniintelligence", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 20, cfg.PoolSize)
		assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "pg.prod")
		t.Setenv("DB_PORT", "6432")
		t.Setenv("DB_PASSWORD", "s3cret")
		t.Setenv("DB_POOL_SIZE", "50")

		cfg, err := LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "pg.prod", cfg.Host)
		assert.Equal(t, 6432, cfg.Port)
		assert.Equal(t, "s3cret", cfg.Password)
		assert.Equal(t, 50, cfg.PoolSize)
	})

	t.Run("non-numeric port rejected", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")
		_, err := LoadConfigFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PORT")
	})
}
