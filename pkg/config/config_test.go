package config_test

import (
	"testing"
	"time"

	"github.com/SeaCloudHub/enquiry/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("it should apply defaults", func(t *testing.T) {
		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, 5432, cfg.DB.Port)
		assert.Equal(t, "customer.events", cfg.Redis.EventChannel)
		assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL)
	})

	t.Run("it should read nested variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("REDIS_ADDR", "cache:6379")
		t.Setenv("REDIS_CACHE_TTL", "30s")
		t.Setenv("NOTIFICATION_HUB_ENDPOINT", "http://hub:8080")

		cfg, err := config.LoadConfig()

		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "db.internal", cfg.DB.Host)
		assert.Equal(t, "cache:6379", cfg.Redis.Addr)
		assert.Equal(t, 30*time.Second, cfg.Redis.CacheTTL)
		assert.Equal(t, "http://hub:8080", cfg.NotificationHub.Endpoint)
	})
}
