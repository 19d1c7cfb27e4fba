package bootstrap

import (
	"time"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var ClockModule = fx.Module("clock",
	fx.Provide(
		NewBookingLocation,
		clock.NewRealClock,
	),
)

// NewBookingLocation is the zone calendar days are cut in for listings and the bot.
func NewBookingLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Booking.Location()
}
