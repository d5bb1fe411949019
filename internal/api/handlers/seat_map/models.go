package seat_map

import (
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	seatMap "github.com/m04kA/SMC-TravelBooking/internal/usecase/seat_map"
)

// SeatResponse HTTP модель места
type SeatResponse struct {
	ID       string  `json:"id"`
	Price    float64 `json:"price"`
	Status   string  `json:"status"`
	Deck     int     `json:"deck,omitempty"`
	Row      int     `json:"row"`
	Column   int     `json:"column"`
	Position string  `json:"position"`
}

// SeatMapResponse HTTP модель карты мест
type SeatMapResponse struct {
	TripID      string         `json:"tripId"`
	Kind        string         `json:"kind"`
	Name        string         `json:"name"`
	From        string         `json:"from"`
	To          string         `json:"to"`
	DepartureAt string         `json:"departureAt"`
	FareTier    *string        `json:"fareTier,omitempty"`
	Decks       int            `json:"decks,omitempty"`
	Rows        int            `json:"rows"`
	Columns     int            `json:"columns"`
	Available   int            `json:"available"`
	Seats       []SeatResponse `json:"seats"`
}

// QuoteRequest HTTP модель запроса расчёта стоимости
type QuoteRequest struct {
	SeatIDs []string `json:"seatIds"`
	Tier    string   `json:"tier,omitempty"`
}

// QuoteResponse HTTP модель расчёта стоимости
type QuoteResponse struct {
	TripID       string   `json:"tripId"`
	SeatIDs      []string `json:"seatIds"`
	TotalPrice   float64  `json:"totalPrice"`
	UnknownSeats []string `json:"unknownSeats"`
	SoldSeats    []string `json:"soldSeats"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest(tripID string) *seatMap.QuoteRequest {
	return &seatMap.QuoteRequest{
		TripID:  tripID,
		SeatIDs: r.SeatIDs,
		Tier:    domain.FareTier(r.Tier),
	}
}

// FromSeatMap конвертирует карту мест use case в HTTP response
func FromSeatMap(m *seatMap.SeatMap) *SeatMapResponse {
	seats := make([]SeatResponse, 0, len(m.Seats))
	for _, s := range m.Seats {
		seats = append(seats, SeatResponse{
			ID:       s.ID,
			Price:    s.Price,
			Status:   string(s.Status),
			Deck:     s.Deck,
			Row:      s.Row,
			Column:   s.Column,
			Position: string(domain.ColumnPosition(s.Column, m.Columns)),
		})
	}

	return &SeatMapResponse{
		TripID:      m.TripID,
		Kind:        m.Kind,
		Name:        m.Name,
		From:        m.From,
		To:          m.To,
		DepartureAt: m.DepartureAt.UTC().Format(time.RFC3339),
		FareTier:    m.FareTier,
		Decks:       m.Decks,
		Rows:        m.Rows,
		Columns:     m.Columns,
		Available:   m.Available,
		Seats:       seats,
	}
}

// FromQuote конвертирует расчёт стоимости в HTTP response
func FromQuote(q *seatMap.Quote) *QuoteResponse {
	return &QuoteResponse{
		TripID:       q.TripID,
		SeatIDs:      nonNil(q.SeatIDs),
		TotalPrice:   q.TotalPrice,
		UnknownSeats: nonNil(q.UnknownSeats),
		SoldSeats:    nonNil(q.SoldSeats),
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
