package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

func TestTimeSlotFromStrings(t *testing.T) {
	slot, err := domain.TimeSlotFromStrings("2026-10-01", "19:30")
	require.NoError(t, err)
	assert.Equal(t, "2026-10-01", slot.DateString())
	assert.Equal(t, "19:30", slot.TimeString())

	withSeconds, err := domain.TimeSlotFromStrings("2026-10-01", "19:30:00")
	require.NoError(t, err)
	assert.True(t, slot.Equal(withSeconds))

	_, err = domain.TimeSlotFromStrings("01/10/2026", "19:30")
	assert.Error(t, err)

	_, err = domain.TimeSlotFromStrings("2026-10-01", "7pm")
	assert.Error(t, err)
}
