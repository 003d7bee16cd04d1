package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/ports"
)

type CreateClient struct {
	ID    uuid.UUID
	Name  string
	Email *string
	Phone *string
}

func (CreateClient) CommandName() string { return CreateClientName }

type GetClientByID struct {
	ClientID uuid.UUID
}

func (GetClientByID) QueryName() string { return GetClientByIDName }

type CreateClientHandler struct {
	clients ports.ClientRepository
	events  bus.EventBus
}

func NewCreateClientHandler(clients ports.ClientRepository, events bus.EventBus) *CreateClientHandler {
	return &CreateClientHandler{clients: clients, events: events}
}

func (h *CreateClientHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(CreateClient)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, cmd)
	}

	client, err := domain.NewClient(c.ID, c.Name, c.Email, c.Phone)
	if err != nil {
		return err
	}

	if err := h.clients.Store(ctx, client); err != nil {
		return err
	}

	h.events.Publish(ctx, client.ReleaseEvents())

	return nil
}

type GetClientByIDHandler struct {
	clients ports.ClientRepository
}

func NewGetClientByIDHandler(clients ports.ClientRepository) *GetClientByIDHandler {
	return &GetClientByIDHandler{clients: clients}
}

func (h *GetClientByIDHandler) Handle(ctx context.Context, query bus.Query) (any, error) {
	q, ok := query.(GetClientByID)
	if !ok {
		return nil, fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, query)
	}

	client, err := h.clients.GetByID(ctx, q.ClientID)
	if err != nil {
		return nil, err
	}

	return newClientDTO(client), nil
}
