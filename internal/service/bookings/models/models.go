package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID string `json:"userId"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetOwnerBookingsRequest запрос на получение бронирований отелей владельца
type GetOwnerBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Kind   string `json:"kind"`

	RoomID  string `json:"roomId,omitempty"`
	HotelID string `json:"hotelId,omitempty"`
	Nights  int    `json:"nights,omitempty"`

	TripID      string   `json:"tripId,omitempty"`
	SeatIDs     []string `json:"seatIds,omitempty"`
	Deck        *int     `json:"deck,omitempty"`
	FareTier    *string  `json:"fareTier,omitempty"`
	DepartureAt *string  `json:"departureAt,omitempty"` // RFC 3339

	FromDate   string  `json:"fromDate"` // "2025-01-10"
	ToDate     string  `json:"toDate"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`

	// Денормализованные данные
	HotelName     string `json:"hotelName"`
	HotelLocation string `json:"hotelLocation"`
	RoomTitle     string `json:"roomTitle,omitempty"`
	CoverImage    string `json:"coverImage,omitempty"`
	UserName      string `json:"userName"`
	HotelOwnerID  string `json:"hotelOwnerId,omitempty"`

	CreatedAt   time.Time `json:"createdAt"`
	CancelledAt *string   `json:"cancelledAt,omitempty"` // RFC 3339
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		Kind:          string(b.Kind),
		RoomID:        b.RoomID,
		HotelID:       b.HotelID,
		TripID:        b.TripID,
		SeatIDs:       b.SeatIDs,
		Deck:          b.Deck,
		FromDate:      b.FromDate.Format(domain.DateFormat),
		ToDate:        b.ToDate.Format(domain.DateFormat),
		TotalPrice:    b.TotalPrice,
		Status:        string(b.Status),
		HotelName:     b.HotelName,
		HotelLocation: b.HotelLocation,
		RoomTitle:     b.RoomTitle,
		CoverImage:    b.CoverImage,
		UserName:      b.UserName,
		HotelOwnerID:  b.HotelOwnerID,
		CreatedAt:     b.CreatedAt,
	}

	if b.Kind == domain.KindHotel {
		resp.Nights = b.Nights()
	} else {
		departure := b.FromDate.Format(time.RFC3339)
		resp.DepartureAt = &departure
	}

	if b.FareTier != nil {
		tier := string(*b.FareTier)
		resp.FareTier = &tier
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
