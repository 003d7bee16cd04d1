package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/ports/mocks"
	"github.com/jortega87/restaurant-booking/internal/core/services"
)

func TestCreateClient_Success(t *testing.T) {
	mockClientRepo := mocks.NewClientRepository(t)
	events := &capturingEventBus{}

	handler := services.NewCreateClientHandler(mockClientRepo, events)

	ctx := context.Background()
	mockClientRepo.On("Store", ctx, mock.AnythingOfType("*domain.Client")).Return(nil)

	err := handler.Handle(ctx, services.CreateClient{ID: uuid.New(), Name: "Ana"})

	assert.NoError(t, err)
	if assert.Len(t, events.events, 1) {
		assert.Equal(t, "client.created", events.events[0].EventName())
	}
}

func TestCreateClient_EmptyName(t *testing.T) {
	mockClientRepo := mocks.NewClientRepository(t)
	events := &capturingEventBus{}

	handler := services.NewCreateClientHandler(mockClientRepo, events)

	err := handler.Handle(context.Background(), services.CreateClient{ID: uuid.New(), Name: ""})

	assert.ErrorIs(t, err, domain.ErrEmptyClientName)
	assert.Empty(t, events.events)
	mockClientRepo.AssertNotCalled(t, "Store")
}

func TestGetClientByID_Success(t *testing.T) {
	mockClientRepo := mocks.NewClientRepository(t)
	handler := services.NewGetClientByIDHandler(mockClientRepo)

	ctx := context.Background()
	client := domain.ReconstituteClient(uuid.New(), "Ana", nil, nil, time.Now())
	mockClientRepo.On("GetByID", ctx, client.ID()).Return(client, nil)

	result, err := handler.Handle(ctx, services.GetClientByID{ClientID: client.ID()})
	require.NoError(t, err)

	dto, ok := result.(services.ClientDTO)
	require.True(t, ok)
	assert.Equal(t, client.ID().String(), dto.ID)
	assert.Equal(t, "Ana", dto.Name)
}

func TestGetClientByID_NotFound(t *testing.T) {
	mockClientRepo := mocks.NewClientRepository(t)
	handler := services.NewGetClientByIDHandler(mockClientRepo)

	ctx := context.Background()
	clientID := uuid.New()
	mockClientRepo.On("GetByID", ctx, clientID).Return(nil, domain.ErrClientNotFound)

	_, err := handler.Handle(ctx, services.GetClientByID{ClientID: clientID})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
