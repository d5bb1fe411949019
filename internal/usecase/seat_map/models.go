package seat_map

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// SeatMap карта мест рейса
type SeatMap struct {
	TripID      string
	Kind        string
	Name        string // Название автобуса или номер рейса
	From        string
	To          string
	DepartureAt time.Time
	FareTier    *string // Только для авиарейсов
	Decks       int
	Rows        int
	Columns     int
	Available   int
	Seats       []domain.Seat
}

// QuoteRequest модель запроса расчёта стоимости выбранных мест
type QuoteRequest struct {
	TripID  string
	SeatIDs []string
	Tier    domain.FareTier // Только для авиарейсов
}

// Quote стоимость выбора
// Неизвестные места не учитываются в сумме и перечисляются отдельно.
type Quote struct {
	TripID       string
	SeatIDs      []string
	TotalPrice   float64
	UnknownSeats []string
	SoldSeats    []string
}
