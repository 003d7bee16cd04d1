package services_test

import (
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/ports/mocks"
	"github.com/jortega87/restaurant-booking/internal/core/services"
)

func TestRegisterHandlers_CoversEveryDeclaredName(t *testing.T) {
	db, _ := redismock.NewClientMock()
	deps := services.Dependencies{
		Bookings:  mocks.NewBookingRepository(t),
		Clients:   mocks.NewClientRepository(t),
		ReadModel: mocks.NewBookingReadModel(t),
		Events:    &capturingEventBus{},
		Cache:     db,
	}

	commands := bus.NewCommandBus()
	queries := bus.NewQueryBus()
	require.NoError(t, services.RegisterHandlers(commands, queries, deps))

	for _, name := range services.CommandNames() {
		assert.True(t, commands.Has(name), "command %q has no handler", name)
	}
	for _, name := range services.QueryNames() {
		assert.True(t, queries.Has(name), "query %q has no handler", name)
	}
}

func TestRegisterHandlers_SecondRegistrationFails(t *testing.T) {
	db, _ := redismock.NewClientMock()
	deps := services.Dependencies{
		Bookings:  mocks.NewBookingRepository(t),
		Clients:   mocks.NewClientRepository(t),
		ReadModel: mocks.NewBookingReadModel(t),
		Events:    &capturingEventBus{},
		Cache:     db,
	}

	commands := bus.NewCommandBus()
	queries := bus.NewQueryBus()
	require.NoError(t, services.RegisterHandlers(commands, queries, deps))

	err := services.RegisterHandlers(commands, queries, deps)
	assert.ErrorIs(t, err, bus.ErrDuplicateHandler)
}
