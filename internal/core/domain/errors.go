// Package domain holds the booking and client aggregates, their value
// objects and the domain events they emit. Sentinel errors defined here let
// callers distinguish failure kinds with errors.Is without inspecting
// messages.
package domain

import (
	"errors"
	"fmt"
)

// Not-found errors. Repositories wrap these with the missing id.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrClientNotFound  = errors.New("client not found")
)

// Validation errors raised by value-object and child-entity construction.
var (
	ErrNegativeAmount     = errors.New("money amount cannot be negative")
	ErrCurrencyMismatch   = errors.New("cannot operate on different currencies")
	ErrInvalidPartySize   = errors.New("invalid party size")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrUnknownProductType = errors.New("unknown product type")
	ErrEmptyClientName    = errors.New("client name is required")
)

// Cancellation has two distinct failure variants so callers can tell them
// apart.
var (
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingAlreadyCompleted = errors.New("booking cannot be cancelled: it has already been completed")
)

// TransitionError reports an illegal state transition. The offending
// current status is embedded so callers can surface it.
type TransitionError struct {
	Op      string
	Current BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("booking cannot be %s: current status is '%s'", e.Op, e.Current)
}
