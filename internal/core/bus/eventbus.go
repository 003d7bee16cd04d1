package bus

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

// EventBus publishes already-recorded domain events, in list order, to a
// downstream sink. Publication carries no retry or persistence guarantee;
// handlers call it only after a successful store.
type EventBus interface {
	Publish(ctx context.Context, events []domain.DomainEvent)
}

// ConsoleEventBus logs each event with its name and JSON payload. It is the
// only sink this core ships.
type ConsoleEventBus struct{}

func NewConsoleEventBus() *ConsoleEventBus {
	return &ConsoleEventBus{}
}

func (b *ConsoleEventBus) Publish(_ context.Context, events []domain.DomainEvent) {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			log.Printf("event %s: failed to encode payload: %v", event.EventName(), err)
			continue
		}
		log.Printf("event %s: %s", event.EventName(), payload)
	}
}
