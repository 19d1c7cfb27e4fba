//go:build unit

package config_test

import (
	"testing"

	"room-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("BOOKING_TIMEZONE", "Europe/Moscow")
	t.Setenv("ADMIN_EMAILS", "ops@example.com,lead@example.com")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, config.StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, "booking.events", cfg.AMQP.Exchange)
	assert.Equal(t, "5m0s", cfg.Telegram.LinkCodeTTL.String())
	assert.Equal(t, []string{"ops@example.com", "lead@example.com"}, cfg.Auth.AdminEmails)

	loc, err := cfg.Booking.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestValidate(t *testing.T) {
	t.Run("postgres requires credentials", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Storage.Driver = config.StoragePostgres
		cfg.DB.User = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Storage.Driver = "sqlite"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad timezone", func(t *testing.T) {
		cfg := config.NewTestConfig()
		cfg.Booking.Timezone = "Mars/Olympus"
		assert.Error(t, cfg.Validate())
	})

	t.Run("test config is valid", func(t *testing.T) {
		cfg := config.NewTestConfig()
		assert.NoError(t, cfg.Validate())
	})
}
