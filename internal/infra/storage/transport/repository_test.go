package transport

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore/memory"
)

func TestRepository_Bus(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memory.NewStore())
	departure := time.Date(2025, 2, 1, 8, 30, 0, 0, time.UTC)

	bus, err := repo.CreateBus(ctx, &domain.Bus{
		Name:        "Night Express",
		From:        "Porto",
		To:          "Lisbon",
		DepartureAt: departure,
		Fare:        30,
		Decks:       1,
		Rows:        1,
		Columns:     2,
		Seats: []domain.Seat{
			{ID: "1-1A", Price: 30, Status: domain.SeatAvailable, Deck: 1, Row: 1, Column: 0},
			{ID: "1-1B", Price: 30, Status: domain.SeatAvailable, Deck: 1, Row: 1, Column: 1},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, bus.ID)

	got, err := repo.GetBus(ctx, bus.ID)
	require.NoError(t, err)
	assert.True(t, departure.Equal(got.DepartureAt))
	require.Len(t, got.Seats, 2)
	assert.Equal(t, 30.0, got.Seats[1].Price)

	got.Seats[1].Status = domain.SeatSold
	require.NoError(t, repo.UpdateBusSeats(ctx, bus.ID, got.Seats))

	got, err = repo.GetBus(ctx, bus.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SeatSold, got.Seats[1].Status)
	assert.Equal(t, domain.SeatAvailable, got.Seats[0].Status)

	buses, err := repo.ListBuses(ctx)
	require.NoError(t, err)
	assert.Len(t, buses, 1)

	_, err = repo.GetBus(ctx, "missing")
	assert.ErrorIs(t, err, ErrBusNotFound)
	assert.ErrorIs(t, repo.UpdateBusSeats(ctx, "missing", nil), ErrBusNotFound)
}

func TestRepository_Flight(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository(memory.NewStore())

	flight, err := repo.CreateFlight(ctx, &domain.Flight{
		ID:           "tp-100",
		FlightNumber: "TP100",
		From:         "LIS",
		To:           "OPO",
		DepartureAt:  time.Date(2025, 3, 1, 6, 0, 0, 0, time.UTC),
		Rows:         20,
		Columns:      6,
	})
	require.NoError(t, err)
	assert.Equal(t, "tp-100", flight.ID)

	got, err := repo.GetFlight(ctx, "tp-100")
	require.NoError(t, err)
	assert.Empty(t, got.SoldSeats)

	require.NoError(t, repo.UpdateSoldSeats(ctx, "tp-100", []string{"12C"}))
	got, err = repo.GetFlight(ctx, "tp-100")
	require.NoError(t, err)
	assert.Equal(t, []string{"12C"}, got.SoldSeats)
	assert.True(t, got.IsSeatSold("12C"))

	flights, err := repo.ListFlights(ctx)
	require.NoError(t, err)
	assert.Len(t, flights, 1)

	_, err = repo.GetFlight(ctx, "missing")
	assert.ErrorIs(t, err, ErrFlightNotFound)
}
