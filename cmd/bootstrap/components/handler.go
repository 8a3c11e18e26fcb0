package components

import (
	"travel-booking/internal/handler"
	"travel-booking/internal/handler/api"
	"travel-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewAvailabilityHandler,
		api.NewCustomTourHandler,
		middleware.NewAuthMiddleware,
		newHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func newHandlers(
	booking *api.BookingHandler,
	room *api.RoomHandler,
	availability *api.AvailabilityHandler,
	customTour *api.CustomTourHandler,
) handler.Handlers {
	return handler.Handlers{
		Booking:      booking,
		Room:         room,
		Availability: availability,
		CustomTour:   customTour,
	}
}
