package booking

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// bookingRecord документ коллекции bookings
type bookingRecord struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Kind        string     `json:"kind"`
	RoomID      string     `json:"roomId,omitempty"`
	HotelID     string     `json:"hotelId,omitempty"`
	TripID      string     `json:"tripId,omitempty"`
	SeatIDs     []string   `json:"seatIds,omitempty"`
	Deck        *int       `json:"deck,omitempty"`
	FareTier    *string    `json:"fareTier,omitempty"`
	FromDate    time.Time  `json:"fromDate"`
	ToDate      time.Time  `json:"toDate"`
	TotalPrice  float64    `json:"totalPrice"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`

	HotelName     string `json:"hotelName,omitempty"`
	HotelLocation string `json:"hotelLocation,omitempty"`
	RoomTitle     string `json:"roomTitle,omitempty"`
	CoverImage    string `json:"coverImage,omitempty"`
	UserName      string `json:"userName,omitempty"`
	HotelOwnerID  string `json:"hotelOwnerId,omitempty"`
}

func fromDomainBooking(b *domain.Booking) *bookingRecord {
	rec := &bookingRecord{
		ID:            b.ID,
		UserID:        b.UserID,
		Kind:          string(b.Kind),
		RoomID:        b.RoomID,
		HotelID:       b.HotelID,
		TripID:        b.TripID,
		SeatIDs:       b.SeatIDs,
		Deck:          b.Deck,
		FromDate:      b.FromDate,
		ToDate:        b.ToDate,
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		CreatedAt:     b.CreatedAt,
		CancelledAt:   b.CancelledAt,
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		RoomTitle:     b.RoomTitle,
		CoverImage:    b.CoverImage,
		UserName:      b.UserName,
		HotelOwnerID:  b.HotelOwnerID,
	}
	if b.FareTier != nil {
		tier := string(*b.FareTier)
		rec.FareTier = &tier
	}
	return rec
}

func (r *bookingRecord) toDomain() *domain.Booking {
	b := &domain.Booking{
		ID:            r.ID,
		UserID:        r.UserID,
		Kind:          domain.BookingKind(r.Kind),
		RoomID:        r.RoomID,
		HotelID:       r.HotelID,
		TripID:        r.TripID,
		SeatIDs:       r.SeatIDs,
		Deck:          r.Deck,
		FromDate:      r.FromDate,
		ToDate:        r.ToDate,
		TotalPrice:    r.TotalPrice,
		Status:        domain.BookingStatus(r.Status),
		CreatedAt:     r.CreatedAt,
		CancelledAt:   r.CancelledAt,
		HotelName:     r.HotelName,
		HotelLocation: r.HotelLocation,
		RoomTitle:     r.RoomTitle,
		CoverImage:    r.CoverImage,
		UserName:      r.UserName,
		HotelOwnerID:  r.HotelOwnerID,
	}
	if b.Kind == "" {
		b.Kind = domain.KindHotel
	}
	if r.FareTier != nil {
		tier := domain.FareTier(*r.FareTier)
		b.FareTier = &tier
	}
	return b
}

// roomNightRecord документ коллекции room_nights
type roomNightRecord struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Night     time.Time `json:"night"`
	BookingID string    `json:"bookingId"`
}

func (r *roomNightRecord) toDomain() *domain.RoomNight {
	return &domain.RoomNight{
		ID:        r.ID,
		RoomID:    r.RoomID,
		Night:     r.Night,
		BookingID: r.BookingID,
	}
}
