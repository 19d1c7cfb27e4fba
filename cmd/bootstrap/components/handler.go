package components

import (
	"room-booking/internal/handler"
	"room-booking/internal/handler/api"
	"room-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewRoomHandler,
		api.NewBookingHandler,
		api.NewUserHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth    *api.AuthHandler
	Room    *api.RoomHandler
	Booking *api.BookingHandler
	User    *api.UserHandler
}

func newHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{Auth: p.Auth, Room: p.Room, Booking: p.Booking, User: p.User}
}
