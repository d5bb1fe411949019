package seed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	listingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/listing"
	transportRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/transport"
	userRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/user"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore/memory"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type failingListings struct {
	ListingRepository
}

func (failingListings) CountHotels(ctx context.Context) (int, error) {
	return 0, errors.New("store is down")
}

func TestSeedIfEmpty(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	listings := listingRepo.NewRepository(store)
	transport := transportRepo.NewRepository(store)
	users := userRepo.NewRepository(store)
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	uc := NewUseCase(listings, transport, users, logger.NewDiscard()).WithTimeProvider(fixedTime{now: now})

	seeded, err := uc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)

	count, err := listings.CountHotels(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	rooms, err := listings.ListRooms(ctx, "hotel-grand-lisbon", nil)
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	owner, err := users.GetByID(ctx, UserOwnerID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleOwner, owner.Role)

	bus, err := transport.GetBus(ctx, "bus-porto-lisbon")
	require.NoError(t, err)
	assert.Len(t, bus.Seats, 80)
	assert.True(t, bus.DepartureAt.After(now))

	flight, err := transport.GetFlight(ctx, "flight-tp1940")
	require.NoError(t, err)
	assert.True(t, flight.IsSeatSold("14C"))

	// Повторный запуск ничего не меняет
	seeded, err = uc.SeedIfEmpty(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	count, err = listings.CountHotels(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestSeedIfEmpty_CountError(t *testing.T) {
	store := memory.NewStore()
	uc := NewUseCase(failingListings{}, transportRepo.NewRepository(store), userRepo.NewRepository(store), logger.NewDiscard())

	seeded, err := uc.SeedIfEmpty(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, seeded)
}
