package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatIDs(t *testing.T) {
	assert.Equal(t, "12C", FlightSeatID(12, 2))
	assert.Equal(t, "1A", FlightSeatID(1, 0))
	assert.Equal(t, "2-3B", BusSeatID(2, 3, 1))
}

func TestColumnPosition_SixAbreast(t *testing.T) {
	want := []SeatPosition{
		PositionWindow, PositionMiddle, PositionAisle,
		PositionAisle, PositionMiddle, PositionWindow,
	}
	for col, pos := range want {
		assert.Equal(t, pos, ColumnPosition(col, 6), "column %s", ColumnLetter(col))
	}
}

func TestColumnPosition_FourAbreast(t *testing.T) {
	assert.Equal(t, PositionWindow, ColumnPosition(0, 4))
	assert.Equal(t, PositionAisle, ColumnPosition(1, 4))
	assert.Equal(t, PositionAisle, ColumnPosition(2, 4))
	assert.Equal(t, PositionWindow, ColumnPosition(3, 4))
}

func TestParseFareTier(t *testing.T) {
	tier, ok := ParseFareTier("")
	assert.True(t, ok)
	assert.Equal(t, FareBasic, tier)

	tier, ok = ParseFareTier("business")
	assert.True(t, ok)
	assert.Equal(t, FareBusiness, tier)

	_, ok = ParseFareTier("first")
	assert.False(t, ok)
}

func TestFlight_IsSeatSold(t *testing.T) {
	f := &Flight{SoldSeats: []string{"1A", "12C"}}
	assert.True(t, f.IsSeatSold("12C"))
	assert.False(t, f.IsSeatSold("12D"))
}
