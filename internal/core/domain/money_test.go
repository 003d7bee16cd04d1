package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

func mustMoney(t *testing.T, cents int64) domain.Money {
	t.Helper()
	amount, err := domain.MoneyFromCents(cents)
	require.NoError(t, err)
	return amount
}

func TestNewMoney(t *testing.T) {
	amount, err := domain.NewMoney(3500, "EUR")
	require.NoError(t, err)
	assert.Equal(t, int64(3500), amount.Cents())
	assert.Equal(t, "EUR", amount.Currency())

	defaulted, err := domain.NewMoney(100, "")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, defaulted.Currency())

	_, err = domain.NewMoney(-1, "EUR")
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestMoney_Add(t *testing.T) {
	sum, err := mustMoney(t, 3500).Add(mustMoney(t, 4500))
	require.NoError(t, err)
	assert.Equal(t, int64(8000), sum.Cents())

	usd, err := domain.NewMoney(100, "USD")
	require.NoError(t, err)
	_, err = mustMoney(t, 100).Add(usd)
	assert.ErrorIs(t, err, domain.ErrCurrencyMismatch)
}

func TestMoney_Multiply(t *testing.T) {
	total, err := mustMoney(t, 3500).Multiply(2)
	require.NoError(t, err)
	assert.Equal(t, int64(7000), total.Cents())

	zero, err := mustMoney(t, 3500).Multiply(0)
	require.NoError(t, err)
	assert.True(t, zero.Equal(domain.ZeroMoney()))

	_, err = mustMoney(t, 3500).Multiply(-1)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}

func TestMoney_Format(t *testing.T) {
	assert.Equal(t, "35.00 EUR", mustMoney(t, 3500).Format())
	assert.Equal(t, "0.05 EUR", mustMoney(t, 5).Format())
	assert.Equal(t, "115.00 EUR", mustMoney(t, 11500).Format())
}

func TestProductType_Catalog(t *testing.T) {
	cases := []struct {
		productType domain.ProductType
		cents       int64
	}{
		{domain.ProductTableReservation, 0},
		{domain.ProductMenu, 3500},
		{domain.ProductBottleOfWine, 4500},
		{domain.ProductEvent, 7500},
	}
	for _, tc := range cases {
		assert.True(t, tc.productType.Valid())
		assert.Equal(t, tc.cents, tc.productType.UnitPriceCents(), string(tc.productType))
	}

	assert.False(t, domain.ProductType("dessert").Valid())
}
