package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

func TestNewBookingCreated_PlainDates(t *testing.T) {
	b := &domain.Booking{
		ID:         "b1",
		UserID:     "u1",
		Kind:       domain.KindHotel,
		RoomID:     "r1",
		HotelID:    "h1",
		FromDate:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice: 200,
	}

	raw, err := json.Marshal(NewBookingCreated(b))
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "2025-01-10", got["fromDate"])
	assert.Equal(t, "2025-01-12", got["toDate"])
	assert.Equal(t, "hotel", got["kind"])
	assert.NotContains(t, got, "tripId")
}
