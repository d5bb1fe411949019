package domain

import (
	"math"
	"time"
)

// DayFloor отбрасывает время суток
// Календарный день берётся в UTC: в UTC разбираются и хранятся даты бронирований.
func DayFloor(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// NightsBetween количество ночей между датами заезда и выезда
// Может быть нулевым или отрицательным для некорректного диапазона.
func NightsBetween(from, to time.Time) int {
	diff := DayFloor(to).Sub(DayFloor(from))
	return int(math.Round(diff.Hours() / 24))
}

// RangesOverlap проверяет пересечение полуинтервалов [aFrom, aTo) и [bFrom, bTo) по дням
// Диапазоны, касающиеся границей (выезд в день заезда), не пересекаются.
func RangesOverlap(aFrom, aTo, bFrom, bTo time.Time) bool {
	return DayFloor(aFrom).Before(DayFloor(bTo)) && DayFloor(aTo).After(DayFloor(bFrom))
}

// NightsOf перечисляет ночи диапазона [from, to)
func NightsOf(from, to time.Time) []time.Time {
	n := NightsBetween(from, to)
	if n <= 0 {
		return nil
	}

	start := DayFloor(from)
	nights := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		nights = append(nights, start.AddDate(0, 0, i))
	}
	return nights
}

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC)
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}
