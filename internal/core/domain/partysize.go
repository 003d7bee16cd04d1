package domain

import "fmt"

const (
	MinPartySize = 1
	MaxPartySize = 20
)

// PartySize is the number of guests on a booking, bounded to [1, 20].
type PartySize struct {
	value int
}

func NewPartySize(value int) (PartySize, error) {
	if value < MinPartySize {
		return PartySize{}, fmt.Errorf("%w: %d is too small, minimum is %d", ErrInvalidPartySize, value, MinPartySize)
	}
	if value > MaxPartySize {
		return PartySize{}, fmt.Errorf("%w: %d is too large, maximum is %d", ErrInvalidPartySize, value, MaxPartySize)
	}
	return PartySize{value: value}, nil
}

func (p PartySize) Value() int {
	return p.value
}
