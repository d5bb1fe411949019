package seat_map

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	transportRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/transport"
	"github.com/m04kA/SMC-TravelBooking/internal/service/pricing"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore/memory"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

func setup(t *testing.T) (*UseCase, *domain.Bus, *domain.Flight) {
	t.Helper()
	ctx := context.Background()
	repo := transportRepo.NewRepository(memory.NewStore())

	seats := pricing.BuildBusSeats(12.5, 1, 2, 4)
	seats[0].Status = domain.SeatSold
	bus, err := repo.CreateBus(ctx, &domain.Bus{
		Name:        "Coast Line",
		From:        "Faro",
		To:          "Lagos",
		DepartureAt: time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
		Fare:        12.5,
		Decks:       1,
		Rows:        2,
		Columns:     4,
		Seats:       seats,
	})
	require.NoError(t, err)

	flight, err := repo.CreateFlight(ctx, &domain.Flight{
		FlightNumber: "TP200",
		From:         "LIS",
		To:           "FNC",
		DepartureAt:  time.Date(2025, 3, 2, 7, 0, 0, 0, time.UTC),
		Rows:         12,
		Columns:      6,
		SoldSeats:    []string{"10A"},
	})
	require.NoError(t, err)

	return NewUseCase(repo, domain.DefaultFlightPriceTable(), logger.NewDiscard()), bus, flight
}

func TestBusSeats(t *testing.T) {
	uc, bus, _ := setup(t)

	m, err := uc.BusSeats(context.Background(), bus.ID)
	require.NoError(t, err)
	assert.Equal(t, "bus", m.Kind)
	assert.Len(t, m.Seats, 8)
	assert.Equal(t, 7, m.Available)
	assert.Nil(t, m.FareTier)

	_, err = uc.BusSeats(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrBusNotFound)
}

func TestFlightSeats(t *testing.T) {
	uc, _, flight := setup(t)
	ctx := context.Background()

	m, err := uc.FlightSeats(ctx, flight.ID, "")
	require.NoError(t, err)
	require.NotNil(t, m.FareTier)
	assert.Equal(t, "basic", *m.FareTier)
	assert.Len(t, m.Seats, 72)
	assert.Equal(t, 71, m.Available)

	business, err := uc.FlightSeats(ctx, flight.ID, domain.FareBusiness)
	require.NoError(t, err)
	for _, s := range business.Seats {
		assert.Zero(t, s.Price)
	}

	_, err = uc.FlightSeats(ctx, flight.ID, "economy")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.FlightSeats(ctx, "missing", domain.FareBasic)
	assert.ErrorIs(t, err, ErrFlightNotFound)
}

func TestQuoteBus(t *testing.T) {
	uc, bus, _ := setup(t)

	q, err := uc.QuoteBus(context.Background(), &QuoteRequest{TripID: bus.ID, SeatIDs: []string{"1-1B", "1-2A", "9-9Z"}})
	require.NoError(t, err)
	assert.Equal(t, 25.0, q.TotalPrice)
	assert.Equal(t, []string{"9-9Z"}, q.UnknownSeats)
	assert.Empty(t, q.SoldSeats)

	sold, err := uc.QuoteBus(context.Background(), &QuoteRequest{TripID: bus.ID, SeatIDs: []string{"1-1A"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1-1A"}, sold.SoldSeats)

	empty, err := uc.QuoteBus(context.Background(), &QuoteRequest{TripID: bus.ID})
	require.NoError(t, err)
	assert.Zero(t, empty.TotalPrice)
	assert.Empty(t, empty.UnknownSeats)
}

func TestQuoteFlight(t *testing.T) {
	uc, _, flight := setup(t)
	ctx := context.Background()

	// 45 (premium) + 25 (window) + 20 (aisle)
	q, err := uc.QuoteFlight(ctx, &QuoteRequest{TripID: flight.ID, SeatIDs: []string{"1C", "5F", "7D"}})
	require.NoError(t, err)
	assert.Equal(t, 90.0, q.TotalPrice)

	plus, err := uc.QuoteFlight(ctx, &QuoteRequest{TripID: flight.ID, SeatIDs: []string{"1C", "11B"}, Tier: domain.FarePlus})
	require.NoError(t, err)
	assert.Equal(t, 45.0, plus.TotalPrice)

	_, err = uc.QuoteFlight(ctx, &QuoteRequest{TripID: flight.ID, SeatIDs: []string{"1C"}, Tier: "vip"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
