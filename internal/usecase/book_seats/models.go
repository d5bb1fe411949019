package book_seats

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// BusRequest модель запроса на бронирование мест в автобусе
type BusRequest struct {
	UserID  string
	BusID   string
	SeatIDs []string
}

// FlightRequest модель запроса на бронирование мест на рейс
type FlightRequest struct {
	UserID   string
	FlightID string
	SeatIDs  []string
	Tier     domain.FareTier
}

// Response модель ответа с созданным бронированием мест
type Response struct {
	ID          string
	UserID      string
	Kind        string
	TripID      string
	SeatIDs     []string
	Deck        *int
	FareTier    *string
	DepartureAt time.Time
	TotalPrice  float64
	Status      string

	// Денормализованные данные
	TripName  string
	Route     string
	UserName  string
	CreatedAt time.Time
}
