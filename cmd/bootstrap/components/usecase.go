package components

import (
	"log/slog"

	"room-booking/internal/pkg/clock"
	"room-booking/internal/pkg/config"
	"room-booking/internal/pkg/jwt"
	"room-booking/internal/usecase"
	"room-booking/internal/usecase/commands"
	"room-booking/internal/usecase/queries"
	"room-booking/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	shared.NewOwnerOrAdminPolicy,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		newAuthCommands,
		commands.NewBookingCommands,
		commands.NewRoomCommands,
		newTelegramLinkCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func newTelegramLinkCommands(uow shared.UnitOfWork, clk clock.Clock, cfg config.Config, logger *slog.Logger) commands.TelegramLinkCommands {
	return commands.NewTelegramLinkCommands(uow, clk, cfg.Telegram.LinkCodeTTL, logger)
}

func newAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, cfg config.Config, logger *slog.Logger) commands.AuthCommands {
	return commands.NewAuthCommands(uow, jwtService, logger, commands.WithAdminEmails(cfg.Auth.AdminEmails...))
}
