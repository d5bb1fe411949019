package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/booking"
	listingRepo "github.com/m04kA/SMC-TravelBooking/internal/infra/storage/listing"
	"github.com/m04kA/SMC-TravelBooking/pkg/docstore/memory"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

func day(d int) time.Time {
	return time.Date(2025, 1, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	uc       *UseCase
	bookings *bookingRepo.Repository
	roomID   string
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	listings := listingRepo.NewRepository(store)
	room, err := listings.CreateRoom(ctx, &domain.Room{HotelID: "h1", Title: "Suite", Price: 100, Status: domain.ListingApproved})
	require.NoError(t, err)

	bookings := bookingRepo.NewRepository(store)
	_, err = bookings.Create(ctx, &domain.Booking{
		UserID:   "u1",
		Kind:     domain.KindHotel,
		RoomID:   room.ID,
		HotelID:  "h1",
		FromDate: day(10),
		ToDate:   day(12),
		Status:   domain.StatusConfirmed,
	})
	require.NoError(t, err)

	cancelled, err := bookings.Create(ctx, &domain.Booking{
		UserID:   "u2",
		Kind:     domain.KindHotel,
		RoomID:   room.ID,
		HotelID:  "h1",
		FromDate: day(20),
		ToDate:   day(25),
		Status:   domain.StatusConfirmed,
	})
	require.NoError(t, err)
	require.NoError(t, bookings.Cancel(ctx, cancelled.ID, day(2)))

	return &fixture{
		uc:       NewUseCase(bookings, listings, logger.NewDiscard()),
		bookings: bookings,
		roomID:   room.ID,
	}
}

func TestCheckOverlap(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to time.Time
		want     bool
	}{
		{"same range", day(10), day(12), true},
		{"starts inside", day(11), day(13), true},
		{"checkout equals checkin", day(12), day(14), false},
		{"checkin equals checkout", day(8), day(10), false},
		{"covers", day(9), day(13), true},
		{"cancelled booking ignored", day(21), day(23), false},
		{"time of day ignored", day(12).Add(9 * time.Hour), day(13), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.uc.CheckOverlap(ctx, f.roomID, tt.from, tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	other, err := f.uc.CheckOverlap(ctx, "other-room", day(10), day(12))
	require.NoError(t, err)
	assert.False(t, other)
}

func TestExecute(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, &Request{RoomID: f.roomID, From: day(12), To: day(14)})
	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, day(12), resp.From)

	resp, err = f.uc.Execute(ctx, &Request{RoomID: f.roomID, From: day(11), To: day(13)})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_Errors(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{RoomID: f.roomID, From: day(12), To: day(12)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{RoomID: f.roomID, From: day(14), To: day(12)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{RoomID: "", From: day(10), To: day(12)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{RoomID: "missing", From: day(10), To: day(12)})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
