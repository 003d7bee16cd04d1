package domain

import (
	"fmt"
)

// DefaultCurrency is the currency the product catalog is priced in.
const DefaultCurrency = "EUR"

// Money is an amount in minor currency units (cents). It is immutable and
// never negative.
type Money struct {
	cents    int64
	currency string
}

func NewMoney(cents int64, currency string) (Money, error) {
	if cents < 0 {
		return Money{}, fmt.Errorf("%w: %d", ErrNegativeAmount, cents)
	}
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{cents: cents, currency: currency}, nil
}

func MoneyFromCents(cents int64) (Money, error) {
	return NewMoney(cents, DefaultCurrency)
}

func ZeroMoney() Money {
	return Money{cents: 0, currency: DefaultCurrency}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of both amounts. Mixing currencies is an error.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}
	return Money{cents: m.cents + other.cents, currency: m.currency}, nil
}

// Multiply scales the amount by a non-negative factor.
func (m Money) Multiply(factor int64) (Money, error) {
	if factor < 0 {
		return Money{}, fmt.Errorf("%w: factor %d", ErrNegativeAmount, factor)
	}
	return Money{cents: m.cents * factor, currency: m.currency}, nil
}

func (m Money) Equal(other Money) bool {
	return m.cents == other.cents && m.currency == other.currency
}

// Format renders the amount in major units, e.g. "35.00 EUR".
func (m Money) Format() string {
	return fmt.Sprintf("%d.%02d %s", m.cents/100, m.cents%100, m.currency)
}
