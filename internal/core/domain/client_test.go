package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

func TestNewClient(t *testing.T) {
	email := "ana@example.com"
	client, err := domain.NewClient(uuid.New(), "Ana", &email, nil)
	require.NoError(t, err)

	assert.Equal(t, "Ana", client.Name())
	require.NotNil(t, client.Email())
	assert.Equal(t, email, *client.Email())
	assert.Nil(t, client.Phone())

	events := client.ReleaseEvents()
	require.Len(t, events, 1)
	created, ok := events[0].(domain.ClientCreated)
	require.True(t, ok)
	assert.Equal(t, "client.created", created.EventName())
	assert.Equal(t, client.ID().String(), created.ClientID)
	assert.Equal(t, "Ana", created.Name)
}

func TestNewClient_EmptyName(t *testing.T) {
	_, err := domain.NewClient(uuid.New(), "", nil, nil)
	assert.ErrorIs(t, err, domain.ErrEmptyClientName)
}

func TestReconstituteClient_NoEvents(t *testing.T) {
	createdAt := time.Now().Add(-time.Hour)
	client := domain.ReconstituteClient(uuid.New(), "Ana", nil, nil, createdAt)

	assert.Empty(t, client.ReleaseEvents())
	assert.Equal(t, createdAt, client.CreatedAt())
}
