package services

import (
	"github.com/redis/go-redis/v9"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/ports"
)

// Dependencies bundles everything the handlers need.
type Dependencies struct {
	Bookings  ports.BookingRepository
	Clients   ports.ClientRepository
	ReadModel ports.BookingReadModel
	Events    bus.EventBus
	Cache     *redis.Client
}

// CommandNames lists every command this core declares. Registration and the
// registry test iterate over it so a new command cannot ship without a
// handler.
func CommandNames() []string {
	return []string{
		CreateBookingName,
		ConfirmBookingName,
		CancelBookingName,
		CompleteBookingName,
		MarkBookingNoShowName,
		CreateClientName,
	}
}

// QueryNames lists every query this core declares.
func QueryNames() []string {
	return []string{
		GetBookingByIDName,
		IndexBookingsName,
		GetBookingsByRestaurantName,
		GetClientByIDName,
	}
}

// RegisterHandlers wires every declared command and query to its single
// handler. Any error here is a configuration fault and should abort
// startup.
func RegisterHandlers(commands *bus.CommandBus, queries *bus.QueryBus, deps Dependencies) error {
	commandHandlers := map[string]bus.CommandHandler{
		CreateBookingName:     NewCreateBookingHandler(deps.Bookings, deps.Events, deps.Cache),
		ConfirmBookingName:    NewConfirmBookingHandler(deps.Bookings, deps.Events, deps.Cache),
		CancelBookingName:     NewCancelBookingHandler(deps.Bookings, deps.Events, deps.Cache),
		CompleteBookingName:   NewCompleteBookingHandler(deps.Bookings, deps.Events, deps.Cache),
		MarkBookingNoShowName: NewMarkBookingNoShowHandler(deps.Bookings, deps.Events, deps.Cache),
		CreateClientName:      NewCreateClientHandler(deps.Clients, deps.Events),
	}

	for name, handler := range commandHandlers {
		if err := commands.Register(name, handler); err != nil {
			return err
		}
	}

	queryHandlers := map[string]bus.QueryHandler{
		GetBookingByIDName:          NewGetBookingByIDHandler(deps.Bookings, deps.Cache),
		IndexBookingsName:           NewIndexBookingsHandler(deps.ReadModel),
		GetBookingsByRestaurantName: NewGetBookingsByRestaurantHandler(deps.Bookings),
		GetClientByIDName:           NewGetClientByIDHandler(deps.Clients),
	}

	for name, handler := range queryHandlers {
		if err := queries.Register(name, handler); err != nil {
			return err
		}
	}

	return nil
}
