// Package events описывает сообщения жизненного цикла бронирований,
// которые публикуются в брокер после фиксации транзакции
package events

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// Routing keys
const (
	TopicBookingCreated   = "booking.created"
	TopicBookingCancelled = "booking.cancelled"
)

// BookingCreated сообщение о новом бронировании
type BookingCreated struct {
	BookingID  string    `json:"bookingId"`
	UserID     string    `json:"userId"`
	Kind       string    `json:"kind"`
	RoomID     string    `json:"roomId,omitempty"`
	HotelID    string    `json:"hotelId,omitempty"`
	TripID     string    `json:"tripId,omitempty"`
	SeatIDs    []string  `json:"seatIds,omitempty"`
	FromDate   string    `json:"fromDate"`
	ToDate     string    `json:"toDate"`
	TotalPrice float64   `json:"totalPrice"`
	CreatedAt  time.Time `json:"createdAt"`
}

// BookingCancelled сообщение об отмене бронирования
type BookingCancelled struct {
	BookingID   string    `json:"bookingId"`
	UserID      string    `json:"userId"`
	Kind        string    `json:"kind"`
	CancelledBy string    `json:"cancelledBy"`
	CancelledAt time.Time `json:"cancelledAt"`
}

// NewBookingCreated собирает сообщение из бронирования
func NewBookingCreated(b *domain.Booking) BookingCreated {
	return BookingCreated{
		BookingID:  b.ID,
		UserID:     b.UserID,
		Kind:       string(b.Kind),
		RoomID:     b.RoomID,
		HotelID:    b.HotelID,
		TripID:     b.TripID,
		SeatIDs:    b.SeatIDs,
		FromDate:   b.FromDate.Format(domain.DateFormat),
		ToDate:     b.ToDate.Format(domain.DateFormat),
		TotalPrice: b.TotalPrice,
		CreatedAt:  b.CreatedAt,
	}
}

// NewBookingCancelled собирает сообщение об отмене
func NewBookingCancelled(b *domain.Booking, cancelledBy string, at time.Time) BookingCancelled {
	return BookingCancelled{
		BookingID:   b.ID,
		UserID:      b.UserID,
		Kind:        string(b.Kind),
		CancelledBy: cancelledBy,
		CancelledAt: at,
	}
}
