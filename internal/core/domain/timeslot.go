package domain

import (
	"fmt"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// TimeSlot is a reservation slot: a calendar date plus a time of day.
type TimeSlot struct {
	date time.Time
	tod  time.Time
}

func NewTimeSlot(date, timeOfDay time.Time) TimeSlot {
	return TimeSlot{date: date, tod: timeOfDay}
}

// TimeSlotFromStrings parses "2006-01-02" and "15:04". Seconds in the time
// part are tolerated since database TIME columns carry them.
func TimeSlotFromStrings(date, timeOfDay string) (TimeSlot, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return TimeSlot{}, fmt.Errorf("invalid slot date %q: %w", date, err)
	}
	t, err := time.Parse(TimeLayout, timeOfDay)
	if err != nil {
		t, err = time.Parse("15:04:05", timeOfDay)
		if err != nil {
			return TimeSlot{}, fmt.Errorf("invalid slot time %q: %w", timeOfDay, err)
		}
	}
	return TimeSlot{date: d, tod: t}, nil
}

func (s TimeSlot) Date() time.Time {
	return s.date
}

func (s TimeSlot) Time() time.Time {
	return s.tod
}

func (s TimeSlot) DateString() string {
	return s.date.Format(DateLayout)
}

func (s TimeSlot) TimeString() string {
	return s.tod.Format(TimeLayout)
}

func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.DateString() == other.DateString() && s.TimeString() == other.TimeString()
}
