package domain

import "time"

// timestampLayout is the format used for timestamps carried inside event
// payloads.
const timestampLayout = "2006-01-02 15:04:05"

// DomainEvent is an immutable record of a state change. Aggregates queue
// events as they mutate; the caller releases them for publication after a
// successful store.
type DomainEvent interface {
	EventName() string
	OccurredOn() int64
}

// occurrence stamps an event with the unix time it happened.
type occurrence struct {
	At int64 `json:"occurred_on"`
}

func newOccurrence() occurrence {
	return occurrence{At: time.Now().Unix()}
}

func (o occurrence) OccurredOn() int64 {
	return o.At
}

// recorder is the event accumulator embedded in each aggregate root.
type recorder struct {
	events []DomainEvent
}

func (r *recorder) record(e DomainEvent) {
	r.events = append(r.events, e)
}

// ReleaseEvents returns the accumulated events in recording order and
// clears the queue.
func (r *recorder) ReleaseEvents() []DomainEvent {
	events := r.events
	r.events = nil
	return events
}

type BookingCreated struct {
	occurrence
	BookingID    string `json:"booking_id"`
	ClientID     string `json:"client_id"`
	RestaurantID string `json:"restaurant_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	PartySize    int    `json:"party_size"`
	Status       string `json:"status"`
}

func (BookingCreated) EventName() string { return "booking.created" }

type BookingConfirmed struct {
	occurrence
	BookingID   string `json:"booking_id"`
	ConfirmedAt string `json:"confirmed_at"`
}

func (BookingConfirmed) EventName() string { return "booking.confirmed" }

type BookingCancelled struct {
	occurrence
	BookingID   string  `json:"booking_id"`
	Reason      *string `json:"reason"`
	CancelledAt string  `json:"cancelled_at"`
}

func (BookingCancelled) EventName() string { return "booking.cancelled" }

type BookingCompleted struct {
	occurrence
	BookingID   string `json:"booking_id"`
	CompletedAt string `json:"completed_at"`
}

func (BookingCompleted) EventName() string { return "booking.completed" }

type BookingMarkedAsNoShow struct {
	occurrence
	BookingID string `json:"booking_id"`
	MarkedAt  string `json:"marked_at"`
}

func (BookingMarkedAsNoShow) EventName() string { return "booking.marked_as_no_show" }

type ClientCreated struct {
	occurrence
	ClientID string `json:"client_id"`
	Name     string `json:"name"`
}

func (ClientCreated) EventName() string { return "client.created" }
