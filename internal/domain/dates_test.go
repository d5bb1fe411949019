package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 2, NightsBetween(day(10), day(12)))
	assert.Equal(t, 0, NightsBetween(day(10), day(10)))
	assert.Equal(t, -2, NightsBetween(day(12), day(10)))

	// Время суток не учитывается
	assert.Equal(t, 1, NightsBetween(day(10).Add(23*time.Hour), day(11).Add(time.Hour)))
}

func TestRangesOverlap(t *testing.T) {
	tests := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo time.Time
		want                   bool
	}{
		{"inside", day(11), day(13), day(10), day(12), true},
		{"same range", day(10), day(12), day(10), day(12), true},
		{"touching after", day(12), day(14), day(10), day(12), false},
		{"touching before", day(8), day(10), day(10), day(12), false},
		{"covering", day(9), day(15), day(10), day(12), true},
		{"disjoint", day(1), day(3), day(10), day(12), false},
		{"time of day ignored", day(12).Add(20 * time.Hour), day(14), day(10), day(12).Add(10 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesOverlap(tt.aFrom, tt.aTo, tt.bFrom, tt.bTo))
			assert.Equal(t, tt.want, RangesOverlap(tt.bFrom, tt.bTo, tt.aFrom, tt.aTo))
		})
	}
}

func TestNightsOf(t *testing.T) {
	assert.Equal(t, []time.Time{day(10), day(11)}, NightsOf(day(10).Add(15*time.Hour), day(12)))
	assert.Nil(t, NightsOf(day(12), day(12)))
}

func TestBooking_HasCheckInPassed(t *testing.T) {
	b := &Booking{FromDate: day(10), ToDate: day(12)}

	assert.False(t, b.HasCheckInPassed(day(9)))
	assert.False(t, b.HasCheckInPassed(day(10).Add(18*time.Hour)))
	assert.True(t, b.HasCheckInPassed(day(11)))
}

func TestBooking_HasCheckInPassed_NonUTCClock(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	b := &Booking{FromDate: day(10), ToDate: day(12)}

	// 02:00 EST 10-го это 07:00 UTC того же дня
	assert.False(t, b.HasCheckInPassed(time.Date(2025, 1, 10, 2, 0, 0, 0, est)))
	// 22:00 EST 9-го уже 10-е по UTC
	assert.False(t, b.HasCheckInPassed(time.Date(2025, 1, 9, 22, 0, 0, 0, est)))
	assert.True(t, (&Booking{FromDate: day(9), ToDate: day(10)}).
		HasCheckInPassed(time.Date(2025, 1, 9, 22, 0, 0, 0, est)))
}

func TestDayFloor(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)

	assert.Equal(t, day(10), DayFloor(day(10).Add(23*time.Hour)))
	assert.Equal(t, day(10), DayFloor(time.Date(2025, 1, 10, 2, 0, 0, 0, est)))
	assert.Equal(t, day(10), DayFloor(time.Date(2025, 1, 9, 22, 0, 0, 0, est)))
	assert.Equal(t, time.UTC, DayFloor(time.Date(2025, 1, 10, 2, 0, 0, 0, est)).Location())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-10")
	assert.NoError(t, err)
	assert.Equal(t, day(10), d)

	_, err = ParseDate("10.01.2025")
	assert.Error(t, err)
}
