package bootstrap

import (
	"room-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	AppModule,
)

// AppModule is everything except configuration loading. Tests supply their own config.Config.
var AppModule = fx.Options(
	ClockModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MessagingModule,
	components.UseCaseModule,
	components.HandlerModule,
	BotModule,
)
